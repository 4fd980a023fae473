// Package tug implements the static handle-force engine: given a shared load
// state and a lever variant's geometry, it computes the handle force required
// to move the aircraft and the motor specs equivalent to that force.
package tug

import (
	"math"

	"github.com/levertools/leverlab/internal/geometry"
	"github.com/levertools/leverlab/internal/units"
)

// Below this handle-arm length the lever relation is considered degenerate
// and the handle force reports zero instead of blowing up mid-drag.
const minHandleArm = 0.01

// Diagram is one lever variant with its derived geometry and forces.
type Diagram struct {
	Kind geometry.Kind
	Name string

	Geom geometry.Geometry

	PullForce   float64 // applied at the load point, lb
	HandleForce float64 // required at the effort point, lb

	// Motor equivalents for HandleForce at the design towing speed.
	MotorTorque float64 // lb·ft
	PowerHP     float64
	PowerW      float64
}

func newDiagram(kind geometry.Kind) *Diagram {
	return &Diagram{Kind: kind, Name: kind.String()}
}

// SetArms rederives geometry from the shared arm-length inputs. Variant
// offsets are applied inside Derive.
func (d *Diagram) SetArms(handleArm, aircraftArm float64) {
	d.Geom = geometry.Derive(d.Kind.Spec(), handleArm, aircraftArm)
}

// ComputeForces derives the handle force and motor specs for the given total
// pull force. The handle force follows the lever relation
// F_handle = F_pull * X1 / C, guarded against a degenerate handle arm.
func (d *Diagram) ComputeForces(pull float64) {
	d.PullForce = pull

	if d.Geom.PrimaryArm > minHandleArm {
		d.HandleForce = pull * d.Geom.MomentArm / d.Geom.PrimaryArm
	} else {
		d.HandleForce = 0
	}

	d.MotorTorque = math.Abs(d.HandleForce) * units.TireRadiusFt
	omega := units.TargetSpeedFps() / units.TireRadiusFt
	d.PowerHP = d.MotorTorque * omega / units.FootPoundsPerSecondPerHP
	d.PowerW = d.PowerHP * units.HorsepowerToWatt
}

// TorqueNm returns the motor torque in N·m.
func (d *Diagram) TorqueNm() float64 {
	return d.MotorTorque * units.PoundFootToNewtonMetre
}

// TorqueKgfCm returns the motor torque in kgf·cm.
func (d *Diagram) TorqueKgfCm() float64 {
	return d.TorqueNm() * units.NewtonMetreToKgfCm
}

// MechanicalAdvantage returns X / X1 and whether it is defined.
func (d *Diagram) MechanicalAdvantage() (float64, bool) {
	if d.Geom.MomentArm <= minHandleArm {
		return 0, false
	}
	return d.Geom.PrimaryArm / d.Geom.MomentArm, true
}
