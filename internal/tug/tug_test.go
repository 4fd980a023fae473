package tug

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levertools/leverlab/internal/geometry"
	"github.com/levertools/leverlab/internal/units"
)

func TestLoadStateForces(t *testing.T) {
	cases := []struct {
		weight, incline, mu float64
	}{
		{3000, 0, 0.015},
		{3000, 1.0, 0.020},
		{8000, -2.0, 0.070},
		{0, 2.0, 0.045},
	}

	for _, tc := range cases {
		l := LoadState{
			Weight:     tc.weight,
			InclineDeg: tc.incline,
			Surface:    Surface{Name: "test", Mu: tc.mu},
		}
		rad := tc.incline * math.Pi / 180
		assert.InDelta(t, tc.mu*tc.weight*math.Cos(rad), l.RollingResistance(), 1e-9)
		assert.InDelta(t, tc.weight*math.Sin(rad), l.GradeResistance(), 1e-9)
		assert.InDelta(t, l.RollingResistance()+l.GradeResistance(), l.TotalPull(), 1e-9)
	}
}

func TestDownhillAssistGoesNegative(t *testing.T) {
	l := LoadState{Weight: 5000, InclineDeg: -2.0, Surface: Surface{Mu: 0.015}}
	// Grade assist on a 2 degree downhill exceeds rolling resistance.
	assert.Negative(t, l.TotalPull())
}

func TestHandleForceFormula(t *testing.T) {
	d := newDiagram(geometry.D2)
	d.SetArms(3.0, 1.5)
	d.ComputeForces(100)

	// F_handle = 100 * 1.5 / 3.0
	assert.InDelta(t, 50.0, d.HandleForce, 1e-12)
}

func TestDegenerateHandleArmReportsZero(t *testing.T) {
	d := newDiagram(geometry.D2)
	d.SetArms(0, 1.5)
	d.ComputeForces(100)
	assert.Equal(t, 0.0, d.HandleForce)

	_, ok := newDiagram(geometry.D2).MechanicalAdvantage()
	assert.False(t, ok)
}

func TestMotorConversions(t *testing.T) {
	// Arrange a handle force of exactly 100 lb: D2 with a 2:1 arm ratio.
	d := newDiagram(geometry.D2)
	d.SetArms(3.0, 1.5)
	d.ComputeForces(200)
	require.InDelta(t, 100.0, d.HandleForce, 1e-9)

	assert.InDelta(t, 41.67, d.MotorTorque, 0.01)
	assert.InDelta(t, d.MotorTorque*1.35582, d.TorqueNm(), 1e-9)
	assert.InDelta(t, d.TorqueNm()*10.1972, d.TorqueKgfCm(), 1e-9)

	omega := units.TargetSpeedFps() / units.TireRadiusFt
	assert.InDelta(t, d.MotorTorque*omega/550, d.PowerHP, 1e-9)
	assert.InDelta(t, d.PowerHP*745.7, d.PowerW, 1e-9)
}

func TestCalculatorClampsInputs(t *testing.T) {
	c := NewCalculator()

	c.SetWeight(0)
	assert.Equal(t, MinWeight, c.Load.Weight)
	c.SetWeight(1e9)
	assert.Equal(t, MaxWeight, c.Load.Weight)

	c.SetIncline(-90)
	assert.Equal(t, MinIncline, c.Load.InclineDeg)

	c.SetArms(0, 99)
	assert.Equal(t, MinHandleArm, c.HandleArm())
	assert.Equal(t, MaxAircraftArm, c.AircraftArm())
}

func TestCalculatorPropagation(t *testing.T) {
	c := NewCalculator()
	c.SetWeight(6000)
	require.True(t, c.SelectSurface("Grass"))
	c.SetArms(4.0, 2.0)

	pull := c.Load.TotalPull()
	for _, d := range c.Diagrams {
		assert.Equal(t, pull, d.PullForce, d.Name)
	}

	// The extended variant carries fixed offsets on both arms.
	var extended *Diagram
	for _, d := range c.Diagrams {
		if d.Kind == geometry.D4 {
			extended = d
		}
	}
	require.NotNil(t, extended)
	assert.InDelta(t, 5.0, extended.Geom.PrimaryArm, 1e-9)
	assert.InDelta(t, 2.5, extended.Geom.MomentArm, 1e-9)
}

func TestSelectSurfaceUnknown(t *testing.T) {
	c := NewCalculator()
	before := c.Load.Surface
	assert.False(t, c.SelectSurface("Ice Rink"))
	assert.Equal(t, before, c.Load.Surface)
}

func TestCalculatorReset(t *testing.T) {
	c := NewCalculator()
	c.SetWeight(9000)
	c.SetIncline(1.5)
	c.SelectSurface("Gravel")
	c.SetArms(5.0, 3.5)
	c.Select(4)

	c.Reset()

	assert.Equal(t, DefaultWeight, c.Load.Weight)
	assert.Equal(t, DefaultIncline, c.Load.InclineDeg)
	assert.Equal(t, DefaultSurface, c.Load.Surface)
	assert.Equal(t, DefaultHandleArm, c.HandleArm())
	assert.Equal(t, DefaultAircraftArm, c.AircraftArm())
	assert.Equal(t, 0, c.Selected)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCalculator()
	snap := c.Snapshot()
	snap.Diagrams[0].HandleForce = -1
	assert.NotEqual(t, -1.0, c.Diagrams[0].HandleForce)
}
