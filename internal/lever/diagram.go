// Package lever implements the dynamic lever engine: a fixed set of lever
// variants sharing effort-force and arm-length inputs, each integrating its
// own rotational state toward equilibrium.
package lever

import (
	"math"

	"github.com/levertools/leverlab/internal/geometry"
)

// Fixed physical constants of the assembly.
const (
	// LoadWeight hangs from the load point, lb.
	LoadWeight = 300.0
	// MomentOfInertia of the assembly. Fixed, not derived from geometry.
	MomentOfInertia = 35.0
	// AngularDamping is the per-second velocity decay coefficient.
	AngularDamping = 0.25
	// MaxRotation bounds the rotation angle, degrees. Hitting the bound
	// stops position only; velocity is left alone, so a pegged diagram can
	// still carry a nonzero angular velocity. A display simplification,
	// not physics.
	MaxRotation = 60.0

	// Floors keeping the force and torque divisions defined.
	minMomentArm = 0.1
	minEffortArm = 0.1
)

// Vec is a point velocity decomposed for display. Y follows the screen
// convention (positive down), which is a presentation-boundary contract, not
// a physics one.
type Vec struct {
	X, Y, Mag float64
}

// Diagram is one lever variant with its geometry, forces, and rotation state.
// Each diagram exclusively owns its rotation state even though the variants
// share the same effort and arm-length inputs.
type Diagram struct {
	Kind geometry.Kind
	Name string

	Geom geometry.Geometry

	// X1Initial is the at-rest moment arm; X1Current is its horizontal
	// projection at the current rotation, floor-clamped.
	X1Initial float64
	X1Current float64

	Effort float64 // F1 applied at the effort point, lb
	Result float64 // F2 at the load point from the lever relation, lb

	NetTorque       float64
	Rotation        float64 // degrees
	AngularVelocity float64 // degrees/s

	V1 Vec // effort-point velocity, ft/s
	V2 Vec // load-point velocity, ft/s
}

func newDiagram(kind geometry.Kind) *Diagram {
	return &Diagram{Kind: kind, Name: kind.String()}
}

// SetArms rederives at-rest geometry from the shared arm-length inputs.
func (d *Diagram) SetArms(arm1, arm2 float64) {
	d.Geom = geometry.Derive(d.Kind.Spec(), arm1, arm2)
	d.X1Initial = d.Geom.MomentArm
	d.X1Current = d.X1Initial
}

// SetEffort applies the shared effort force.
func (d *Diagram) SetEffort(f float64) {
	d.Effort = f
}

// Reset zeroes the rotation state. Arm lengths and effort are owned by the
// shared inputs and reapplied separately.
func (d *Diagram) Reset() {
	d.Rotation = 0
	d.AngularVelocity = 0
	d.NetTorque = 0
	d.X1Current = d.X1Initial
	d.V1 = Vec{}
	d.V2 = Vec{}
}

// Update advances the diagram by dt seconds. When not simulating it still
// recomputes geometry and the resultant force so slider drags stay live, but
// reports zero net torque and leaves the last point velocities on display.
func (d *Diagram) Update(dt float64, simulating bool) {
	d.X1Current = geometry.ProjectAt(d.X1Initial, d.Rotation, minMomentArm)
	d.Result = d.Effort * d.Geom.PrimaryArm / d.X1Current

	if !simulating {
		d.NetTorque = 0
		return
	}

	// Effort torque lifts the load side (positive, toward increasing
	// rotation); the hanging weight resists it.
	effortArm := geometry.ProjectAt(d.Geom.PrimaryArm, d.Rotation, minEffortArm)
	d.NetTorque = d.Effort*effortArm - LoadWeight*d.X1Current

	// Semi-implicit Euler with exponential-style damping.
	accel := d.NetTorque / MomentOfInertia
	d.AngularVelocity += accel * dt
	d.AngularVelocity *= 1 - AngularDamping*dt
	d.Rotation += d.AngularVelocity * dt
	if d.Rotation > MaxRotation {
		d.Rotation = MaxRotation
	} else if d.Rotation < -MaxRotation {
		d.Rotation = -MaxRotation
	}

	// Geometry and forces follow the new rotation.
	d.X1Current = geometry.ProjectAt(d.X1Initial, d.Rotation, minMomentArm)
	d.Result = d.Effort * d.Geom.PrimaryArm / d.X1Current

	d.deriveVelocities()
}

// deriveVelocities computes the point velocities v = omega x r at the effort
// and load points, perpendicular to each arm.
func (d *Diagram) deriveVelocities() {
	omega := geometry.Radians(d.AngularVelocity)
	rot := geometry.Radians(d.Rotation)

	effortAngle := geometry.Radians(180-geometry.GrayArmAngle) + rot
	d.V1 = pointVelocity(omega, geometry.EffortArmLength(d.Geom.PrimaryArm), effortAngle)

	loadAngle := geometry.Radians(d.Geom.BendAngle) + rot
	d.V2 = pointVelocity(omega, d.Geom.SecondaryArm, loadAngle)
}

// pointVelocity returns the velocity of a point at the given radius on an arm
// at armAngle (radians, math convention). Direction is the arm rotated +90°
// for positive angular velocity, -90° for negative, then decomposed with the
// screen-Y sign flip.
func pointVelocity(omega, radius, armAngle float64) Vec {
	mag := math.Abs(omega * radius)
	perp := armAngle + math.Pi/2
	if omega < 0 {
		perp = armAngle - math.Pi/2
	}
	return Vec{
		Mag: mag,
		X:   mag * math.Cos(perp),
		Y:   -mag * math.Sin(perp),
	}
}
