package lever

import "github.com/levertools/leverlab/internal/geometry"

// Input bounds and defaults. Out-of-range inputs are clamped at acceptance.
const (
	MinEffort     = 10.0
	MaxEffort     = 300.0
	DefaultEffort = 200.0

	MinArm1     = 1.0
	MaxArm1     = 6.0
	DefaultArm1 = 3.0

	MinArm2     = 0.5
	MaxArm2     = 4.0
	DefaultArm2 = 1.5
)

// ForceMatchTolerance groups diagrams whose resultant forces differ by no
// more than this many lb. Display aid only.
const ForceMatchTolerance = 5.0

// Kinds is the fixed ordered set of lever variants.
var Kinds = []geometry.Kind{
	geometry.D1a, geometry.D1b, geometry.D2,
	geometry.D3a, geometry.D3b,
}

// Rig owns the fixed set of lever diagrams and the shared inputs, and drives
// one integration step per tick. States are Idle and Simulating; the toggle
// is external, with no autonomous transitions.
type Rig struct {
	Diagrams   []*Diagram
	Simulating bool
	Selected   int

	effort float64
	arm1   float64
	arm2   float64
}

// NewRig builds the rig with default parameters.
func NewRig() *Rig {
	r := &Rig{Diagrams: make([]*Diagram, 0, len(Kinds))}
	for _, k := range Kinds {
		r.Diagrams = append(r.Diagrams, newDiagram(k))
	}
	r.Reset()
	return r
}

// SetEffort clamps and propagates the shared effort force.
func (r *Rig) SetEffort(f float64) {
	r.effort = clamp(f, MinEffort, MaxEffort)
	for _, d := range r.Diagrams {
		d.SetEffort(r.effort)
	}
}

// SetArms clamps and propagates the shared arm-length inputs.
func (r *Rig) SetArms(arm1, arm2 float64) {
	r.arm1 = clamp(arm1, MinArm1, MaxArm1)
	r.arm2 = clamp(arm2, MinArm2, MaxArm2)
	for _, d := range r.Diagrams {
		d.SetArms(r.arm1, r.arm2)
	}
}

// Effort returns the shared effort force.
func (r *Rig) Effort() float64 { return r.effort }

// Arm1 returns the shared primary arm length.
func (r *Rig) Arm1() float64 { return r.arm1 }

// Arm2 returns the shared secondary arm input.
func (r *Rig) Arm2() float64 { return r.arm2 }

// Select picks the active diagram. Out-of-range indexes are ignored.
func (r *Rig) Select(i int) {
	if i >= 0 && i < len(r.Diagrams) {
		r.Selected = i
	}
}

// ToggleSimulation flips between Idle and Simulating.
func (r *Rig) ToggleSimulation() {
	r.Simulating = !r.Simulating
}

// Step advances every diagram by dt seconds. Exactly one Step runs per frame;
// parameter changes are applied before it, never during.
func (r *Rig) Step(dt float64) {
	for _, d := range r.Diagrams {
		d.Update(dt, r.Simulating)
	}
}

// Reset returns to Idle with default parameters and zeroed rotation state,
// regardless of the prior state.
func (r *Rig) Reset() {
	r.Simulating = false
	r.Selected = 0
	r.SetEffort(DefaultEffort)
	r.SetArms(DefaultArm1, DefaultArm2)
	for _, d := range r.Diagrams {
		d.Reset()
	}
	r.Step(0)
}

// Groups partitions the diagrams by resultant force within the fixed
// tolerance, for display grouping.
func (r *Rig) Groups() []int {
	forces := make([]float64, len(r.Diagrams))
	for i, d := range r.Diagrams {
		forces[i] = d.Result
	}
	return GroupByForce(forces, ForceMatchTolerance)
}

// Snapshot is the per-tick read-only view consumed by the presentation layer.
type Snapshot struct {
	Simulating bool
	Effort     float64
	Arm1       float64
	Arm2       float64
	Selected   int
	Diagrams   []Diagram
	Groups     []int
}

// Snapshot copies the current state for display.
func (r *Rig) Snapshot() Snapshot {
	s := Snapshot{
		Simulating: r.Simulating,
		Effort:     r.effort,
		Arm1:       r.arm1,
		Arm2:       r.arm2,
		Selected:   r.Selected,
		Diagrams:   make([]Diagram, len(r.Diagrams)),
		Groups:     r.Groups(),
	}
	for i, d := range r.Diagrams {
		s.Diagrams[i] = *d
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
