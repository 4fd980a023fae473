// Package geometry derives the moment-arm geometry for the fixed set of
// lever variants. Each variant is described by a Spec record; one shared
// Derive function consumes the record, so adding a variant is a table entry
// rather than new branching.
package geometry

import "math"

// Kind identifies one of the fixed lever variants.
type Kind int

const (
	// D1a is the L-shaped arm; the slider sets the first-segment length.
	D1a Kind = iota
	// D1b is the L-shaped arm; the slider sets the target moment arm and
	// the segment length is back-solved.
	D1b
	// D2 is the horizontal arm.
	D2
	// D3a is the straight angled arm with an elevated load point.
	D3a
	// D3b is the straight angled arm with the moment arm set directly.
	D3b
	// D4 is the extended horizontal arm; it adds fixed offsets to the
	// shared arm-length inputs.
	D4
)

// Form selects which projection rule maps the secondary arm input to the
// moment-arm distance.
type Form int

const (
	// Horizontal arms project one-to-one: the moment arm equals the
	// secondary arm length.
	Horizontal Form = iota
	// Bent arms are L-shaped: the moment arm is the horizontal projection
	// of the first segment, with the drop segment ending at pivot level.
	Bent
	// Angled arms are straight at the bend angle with no drop, so the
	// load point stays elevated.
	Angled
)

const (
	// GrayArmAngle is the fixed angle of the effort arm above horizontal,
	// in degrees.
	GrayArmAngle = 40.0
	// BendAngle is the load arm's base angle from horizontal for bent and
	// angled forms, in degrees: (180 - GrayArmAngle) - 90.
	BendAngle = (180 - GrayArmAngle) - 90
)

// Bend angles are compile-time constants well away from 90°, so the
// constrained-mode division below is always defined. The epsilon guard keeps
// the no-panic invariant if that ever changes.
const cosEpsilon = 1e-9

// Spec describes how one variant derives its geometry.
type Spec struct {
	Name        string
	Form        Form
	Constrained bool // secondary input is the target moment arm, not a length
	Elevated    bool // load point sits above the pivot line

	// Fixed offsets added to the shared arm-length inputs before
	// derivation. Only D4 uses them.
	PrimaryOffset   float64
	SecondaryOffset float64
}

var specs = map[Kind]Spec{
	D1a: {Name: "D1a: L-Shape", Form: Bent},
	D1b: {Name: "D1b: L-Shape (X1)", Form: Bent, Constrained: true},
	D2:  {Name: "D2: Horizontal", Form: Horizontal},
	D3a: {Name: "D3a: Angled", Form: Angled, Elevated: true},
	D3b: {Name: "D3b: Angled (X1)", Form: Angled, Elevated: true, Constrained: true},
	D4:  {Name: "D4: Extended", Form: Horizontal, PrimaryOffset: 1.0, SecondaryOffset: 0.5},
}

// Spec returns the variant's derivation record.
func (k Kind) Spec() Spec { return specs[k] }

// String returns the variant's display name.
func (k Kind) String() string { return specs[k].Name }

// BendAngleDeg returns the load arm's angle from horizontal in degrees.
func (s Spec) BendAngleDeg() float64 {
	if s.Form == Horizontal {
		return 0
	}
	return BendAngle
}

// Geometry holds the derived at-rest quantities for one variant.
type Geometry struct {
	// PrimaryArm is the effective horizontal pivot-to-effort distance
	// after the variant offset, in feet.
	PrimaryArm float64
	// SecondaryArm is the physical load-arm length in feet. For
	// constrained variants it is back-solved from the target moment arm.
	SecondaryArm float64
	// MomentArm is X1, the horizontal pivot-to-load distance in feet.
	MomentArm float64
	// BendAngle is the load arm's angle from horizontal in degrees.
	BendAngle float64
	// Elevation is Y1, the load point's height above the pivot line in
	// feet. Zero unless the variant is elevated.
	Elevation float64
}

// Derive computes the dependent geometry from the shared arm-length inputs.
// primary is the horizontal pivot-to-effort distance; secondary is either the
// load-arm length or, for constrained variants, the target moment arm.
func Derive(s Spec, primary, secondary float64) Geometry {
	primary += s.PrimaryOffset
	secondary += s.SecondaryOffset

	bend := s.BendAngleDeg()
	cosBend := math.Cos(Radians(bend))

	g := Geometry{PrimaryArm: primary, BendAngle: bend}
	switch {
	case s.Form == Horizontal:
		g.MomentArm = secondary
		g.SecondaryArm = secondary
	case s.Constrained:
		g.MomentArm = secondary
		if math.Abs(cosBend) < cosEpsilon {
			g.SecondaryArm = secondary
		} else {
			g.SecondaryArm = secondary / cosBend
		}
	default:
		g.MomentArm = secondary * cosBend
		g.SecondaryArm = secondary
	}

	if s.Elevated {
		g.Elevation = g.SecondaryArm * math.Sin(Radians(bend))
	}
	return g
}

// ProjectAt returns the horizontal projection of a rest-length distance at
// the given rotation, floor-clamped to keep force derivation defined.
func ProjectAt(rest, rotationDeg, floor float64) float64 {
	v := math.Abs(rest * math.Cos(Radians(rotationDeg)))
	if v < floor {
		return floor
	}
	return v
}

// EffortArmLength returns the physical effort-arm length for a horizontal
// projection, accounting for the fixed gray-arm angle.
func EffortArmLength(primary float64) float64 {
	return primary / math.Cos(Radians(GrayArmAngle))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
