package tug

import "github.com/levertools/leverlab/internal/geometry"

// Input bounds and defaults. Out-of-range inputs are clamped at acceptance,
// never reported as errors.
const (
	MinWeight     = 500.0
	MaxWeight     = 10000.0
	DefaultWeight = 3000.0

	MinIncline     = -2.0
	MaxIncline     = 2.0
	DefaultIncline = 0.0

	MinHandleArm     = 1.0
	MaxHandleArm     = 6.0
	DefaultHandleArm = 3.0

	MinAircraftArm     = 0.5
	MaxAircraftArm     = 4.0
	DefaultAircraftArm = 1.5
)

// DefaultSurface is the friction preset selected at startup and on reset.
var DefaultSurface = Surfaces[0]

// Kinds is the fixed ordered set of tug variants.
var Kinds = []geometry.Kind{
	geometry.D1a, geometry.D1b, geometry.D2,
	geometry.D3a, geometry.D3b, geometry.D4,
}

// Calculator owns the shared load state and the fixed set of diagrams, and
// keeps every diagram's forces consistent with the current parameters.
type Calculator struct {
	Load     LoadState
	Diagrams []*Diagram
	Selected int

	handleArm   float64
	aircraftArm float64
}

// NewCalculator builds the calculator with default parameters and all
// diagrams computed.
func NewCalculator() *Calculator {
	c := &Calculator{
		Diagrams: make([]*Diagram, 0, len(Kinds)),
	}
	for _, k := range Kinds {
		c.Diagrams = append(c.Diagrams, newDiagram(k))
	}
	c.Reset()
	return c
}

// SetWeight clamps and applies the aircraft weight.
func (c *Calculator) SetWeight(lb float64) {
	c.Load.Weight = clamp(lb, MinWeight, MaxWeight)
	c.recompute()
}

// SetIncline clamps and applies the ramp incline in degrees.
func (c *Calculator) SetIncline(deg float64) {
	c.Load.InclineDeg = clamp(deg, MinIncline, MaxIncline)
	c.recompute()
}

// SelectSurface switches the friction preset. Unknown names are ignored and
// reported false.
func (c *Calculator) SelectSurface(name string) bool {
	s, ok := SurfaceByName(name)
	if !ok {
		return false
	}
	c.Load.Surface = s
	c.recompute()
	return true
}

// SetArms clamps and applies the shared arm-length inputs.
func (c *Calculator) SetArms(handleArm, aircraftArm float64) {
	c.handleArm = clamp(handleArm, MinHandleArm, MaxHandleArm)
	c.aircraftArm = clamp(aircraftArm, MinAircraftArm, MaxAircraftArm)
	c.recompute()
}

// HandleArm returns the shared handle-arm input (before variant offsets).
func (c *Calculator) HandleArm() float64 { return c.handleArm }

// AircraftArm returns the shared aircraft-arm input.
func (c *Calculator) AircraftArm() float64 { return c.aircraftArm }

// Select picks the active diagram. Out-of-range indexes are ignored.
func (c *Calculator) Select(i int) {
	if i >= 0 && i < len(c.Diagrams) {
		c.Selected = i
	}
}

// Reset restores every parameter to its documented default.
func (c *Calculator) Reset() {
	c.Load = LoadState{
		Weight:     DefaultWeight,
		InclineDeg: DefaultIncline,
		Surface:    DefaultSurface,
	}
	c.handleArm = DefaultHandleArm
	c.aircraftArm = DefaultAircraftArm
	c.Selected = 0
	c.recompute()
}

func (c *Calculator) recompute() {
	pull := c.Load.TotalPull()
	for _, d := range c.Diagrams {
		d.SetArms(c.handleArm, c.aircraftArm)
		d.ComputeForces(pull)
	}
}

// Snapshot is the per-tick read-only view consumed by the presentation layer.
type Snapshot struct {
	Weight      float64
	InclineDeg  float64
	Surface     Surface
	Rolling     float64
	Grade       float64
	TotalPull   float64
	HandleArm   float64
	AircraftArm float64
	Selected    int
	Diagrams    []Diagram
}

// Snapshot copies the current state for display.
func (c *Calculator) Snapshot() Snapshot {
	s := Snapshot{
		Weight:      c.Load.Weight,
		InclineDeg:  c.Load.InclineDeg,
		Surface:     c.Load.Surface,
		Rolling:     c.Load.RollingResistance(),
		Grade:       c.Load.GradeResistance(),
		TotalPull:   c.Load.TotalPull(),
		HandleArm:   c.handleArm,
		AircraftArm: c.aircraftArm,
		Selected:    c.Selected,
		Diagrams:    make([]Diagram, len(c.Diagrams)),
	}
	for i, d := range c.Diagrams {
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
