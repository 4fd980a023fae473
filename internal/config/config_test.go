package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levertools/leverlab/internal/lever"
	"github.com/levertools/leverlab/internal/tug"
)

func TestDefaultMatchesEngines(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultFrameRate, cfg.FrameRate)
	assert.Equal(t, tug.DefaultWeight, cfg.Tug.Weight)
	assert.Equal(t, tug.DefaultSurface.Name, cfg.Tug.Surface)
	assert.Equal(t, tug.DefaultHandleArm, cfg.Tug.HandleArm)
	assert.Equal(t, lever.DefaultEffort, cfg.Lever.Effort)
	assert.Equal(t, lever.DefaultArm1, cfg.Lever.Arm1)
	assert.Equal(t, lever.DefaultArm2, cfg.Lever.Arm2)
	assert.Positive(t, cfg.Lever.Dt)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.FrameRate = 30
	cfg.Tug.Weight = 7500
	cfg.Tug.Surface = "Gravel"
	cfg.Lever.Effort = 120
	cfg.Lever.Arm1 = 4.5

	path := filepath.Join(t.TempDir(), "leverlab.yaml")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tug:\n  weight: 9000\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Only the given key moves; the rest stay at their defaults.
	assert.Equal(t, 9000.0, cfg.Tug.Weight)
	assert.Equal(t, tug.DefaultSurface.Name, cfg.Tug.Surface)
	assert.Equal(t, lever.DefaultEffort, cfg.Lever.Effort)
	assert.Equal(t, DefaultFrameRate, cfg.FrameRate)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tug: [not a map"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyTug(t *testing.T) {
	cfg := GetPreset("grass-heavy")
	require.NotNil(t, cfg)

	calc := tug.NewCalculator()
	cfg.ApplyTug(calc)

	assert.Equal(t, 8000.0, calc.Load.Weight)
	assert.Equal(t, "Grass", calc.Load.Surface.Name)
}

func TestApplyLeverClamps(t *testing.T) {
	cfg := Default()
	cfg.Lever.Effort = 9999
	cfg.Lever.Arm1 = 0

	rig := lever.NewRig()
	cfg.ApplyLever(rig)

	assert.Equal(t, lever.MaxEffort, rig.Effort())
	assert.Equal(t, lever.MinArm1, rig.Arm1())
}

func TestPresetsAreValid(t *testing.T) {
	require.NotEmpty(t, Presets)
	for name, cfg := range Presets {
		assert.NotNil(t, cfg, name)
		_, found := tug.SurfaceByName(cfg.Tug.Surface)
		assert.True(t, found, "%s: unknown surface %q", name, cfg.Tug.Surface)
		assert.Positive(t, cfg.Lever.Dt, name)
		assert.Positive(t, cfg.Lever.Duration, name)
		assert.GreaterOrEqual(t, cfg.Tug.Weight, tug.MinWeight, name)
		assert.LessOrEqual(t, cfg.Tug.Weight, tug.MaxWeight, name)
	}
}

func TestGetPresetUnknown(t *testing.T) {
	assert.Nil(t, GetPreset("no-such-preset"))
	assert.Contains(t, ListPresets(), "hangar")
}
