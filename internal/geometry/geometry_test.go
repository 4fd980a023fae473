package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectModeProjection(t *testing.T) {
	spec := D1a.Spec()
	cosBend := math.Cos(Radians(BendAngle))

	for _, arm := range []float64{0.5, 1.0, 1.5, 2.5, 4.0} {
		g := Derive(spec, 3.0, arm)
		assert.InDelta(t, arm*cosBend, g.MomentArm, 1e-9)
		assert.InDelta(t, arm, g.SecondaryArm, 1e-9)
	}
}

func TestConstrainedRoundTrip(t *testing.T) {
	constrained := D1b.Spec()
	direct := D1a.Spec()

	for _, target := range []float64{0.5, 1.0, 1.5, 3.0} {
		g := Derive(constrained, 3.0, target)
		assert.InDelta(t, target, g.MomentArm, 1e-9)

		// Feeding the back-solved arm length through the direct rule
		// must return the original target.
		back := Derive(direct, 3.0, g.SecondaryArm)
		assert.InDelta(t, target, back.MomentArm, 1e-6)
	}
}

func TestHorizontalArm(t *testing.T) {
	g := Derive(D2.Spec(), 3.0, 1.5)
	assert.Equal(t, 1.5, g.MomentArm)
	assert.Equal(t, 1.5, g.SecondaryArm)
	assert.Equal(t, 0.0, g.BendAngle)
	assert.Equal(t, 0.0, g.Elevation)
}

func TestExtendedVariantOffsets(t *testing.T) {
	g := Derive(D4.Spec(), 3.0, 1.5)
	assert.InDelta(t, 4.0, g.PrimaryArm, 1e-9)
	assert.InDelta(t, 2.0, g.MomentArm, 1e-9)
}

func TestElevation(t *testing.T) {
	g := Derive(D3a.Spec(), 3.0, 1.5)
	assert.InDelta(t, 1.5*math.Sin(Radians(BendAngle)), g.Elevation, 1e-9)

	flat := Derive(D1a.Spec(), 3.0, 1.5)
	assert.Equal(t, 0.0, flat.Elevation)
}

func TestConstrainedAndDirectAgreeAtRestLength(t *testing.T) {
	// A constrained variant dialed to X1=1.5 must produce a longer
	// physical arm than the direct variant set to 1.5 ft.
	direct := Derive(D3a.Spec(), 3.0, 1.5)
	constrained := Derive(D3b.Spec(), 3.0, 1.5)
	assert.Less(t, direct.MomentArm, constrained.MomentArm)
	assert.Greater(t, constrained.SecondaryArm, direct.SecondaryArm)
}

func TestProjectAt(t *testing.T) {
	assert.InDelta(t, 1.5, ProjectAt(1.5, 0, 0.1), 1e-9)
	assert.InDelta(t, 1.5*math.Cos(Radians(30)), ProjectAt(1.5, 30, 0.1), 1e-9)
	// Projection never drops below the floor.
	assert.Equal(t, 0.1, ProjectAt(1.5, 89.9, 0.1))
	// Negative rotation projects the same as positive.
	assert.InDelta(t, ProjectAt(1.5, 30, 0.1), ProjectAt(1.5, -30, 0.1), 1e-9)
}

func TestEffortArmLength(t *testing.T) {
	assert.InDelta(t, 3.0/math.Cos(Radians(GrayArmAngle)), EffortArmLength(3.0), 1e-9)
}
