package tug

import (
	"math"

	"github.com/levertools/leverlab/internal/geometry"
)

// Surface is a named rolling-friction preset.
type Surface struct {
	Name string
	Mu   float64
}

// Surfaces is the fixed, ordered set of friction presets.
var Surfaces = []Surface{
	{"Clean Concrete", 0.015},
	{"Asphalt", 0.020},
	{"Gravel", 0.035},
	{"Dirt Road", 0.045},
	{"Grass", 0.070},
}

// SurfaceByName looks up a friction preset by its display name.
func SurfaceByName(name string) (Surface, bool) {
	for _, s := range Surfaces {
		if s.Name == name {
			return s, true
		}
	}
	return Surface{}, false
}

// LoadState is the shared pull-force state: what it takes to get the
// aircraft rolling, before any lever geometry is applied.
type LoadState struct {
	Weight     float64 // lb
	InclineDeg float64 // positive is uphill
	Surface    Surface
}

// RollingResistance is mu * W * cos(theta), in lb.
func (l LoadState) RollingResistance() float64 {
	return l.Surface.Mu * l.Weight * math.Cos(geometry.Radians(l.InclineDeg))
}

// GradeResistance is W * sin(theta), in lb. Negative downhill.
func (l LoadState) GradeResistance() float64 {
	return l.Weight * math.Sin(geometry.Radians(l.InclineDeg))
}

// TotalPull is the pull force needed at the tire contact point. It can go
// negative when downhill assist exceeds rolling resistance; it is reported
// as-is, not clamped.
func (l LoadState) TotalPull() float64 {
	return l.RollingResistance() + l.GradeResistance()
}
