// Package config loads and saves leverlab configuration files and carries
// the named scenario presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/levertools/leverlab/internal/lever"
	"github.com/levertools/leverlab/internal/tug"
)

const (
	DefaultFrameRate = 60
	DefaultDt        = 1.0 / DefaultFrameRate
	DefaultDuration  = 10.0
)

// Config is the full configuration for both engines.
type Config struct {
	FrameRate int         `yaml:"frame_rate"`
	Tug       TugConfig   `yaml:"tug"`
	Lever     LeverConfig `yaml:"lever"`
}

// TugConfig holds the static calculator's shared parameters.
type TugConfig struct {
	Weight      float64 `yaml:"weight"`
	Incline     float64 `yaml:"incline"`
	Surface     string  `yaml:"surface"`
	HandleArm   float64 `yaml:"handle_arm"`
	AircraftArm float64 `yaml:"aircraft_arm"`
}

// LeverConfig holds the dynamic simulator's shared parameters and headless
// run settings.
type LeverConfig struct {
	Effort   float64 `yaml:"effort"`
	Arm1     float64 `yaml:"arm1"`
	Arm2     float64 `yaml:"arm2"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
}

// Default returns the documented default configuration.
func Default() *Config {
	return &Config{
		FrameRate: DefaultFrameRate,
		Tug: TugConfig{
			Weight:      tug.DefaultWeight,
			Incline:     tug.DefaultIncline,
			Surface:     tug.DefaultSurface.Name,
			HandleArm:   tug.DefaultHandleArm,
			AircraftArm: tug.DefaultAircraftArm,
		},
		Lever: LeverConfig{
			Effort:   lever.DefaultEffort,
			Arm1:     lever.DefaultArm1,
			Arm2:     lever.DefaultArm2,
			Dt:       DefaultDt,
			Duration: DefaultDuration,
		},
	}
}

// Load reads a config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a config file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyTug pushes the tug parameters into a calculator. Values out of range
// are clamped by the engine.
func (c *Config) ApplyTug(calc *tug.Calculator) {
	calc.SetWeight(c.Tug.Weight)
	calc.SetIncline(c.Tug.Incline)
	if c.Tug.Surface != "" {
		calc.SelectSurface(c.Tug.Surface)
	}
	calc.SetArms(c.Tug.HandleArm, c.Tug.AircraftArm)
}

// ApplyLever pushes the lever parameters into a rig.
func (c *Config) ApplyLever(rig *lever.Rig) {
	rig.SetEffort(c.Lever.Effort)
	rig.SetArms(c.Lever.Arm1, c.Lever.Arm2)
}
