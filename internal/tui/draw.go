package tui

import (
	"math"

	"github.com/levertools/leverlab/internal/geometry"
	"github.com/levertools/leverlab/internal/lever"
)

// drawLever renders one lever diagram on the canvas: effort arm up-left,
// load arm per variant form, moment-arm dimension line under the pivot.
func drawLever(c *Canvas, d lever.Diagram) {
	c.Clear()
	w, h := c.Width*2, c.Height*4
	px, py := w/2, h/2
	scale := float64(h) / 14.0 // sub-pixels per foot

	rot := geometry.Radians(d.Rotation)

	grayAngle := geometry.Radians(180-geometry.GrayArmAngle) + rot
	grayLen := geometry.EffortArmLength(d.Geom.PrimaryArm) * scale
	p1x := px + int(grayLen*math.Cos(grayAngle))
	p1y := py - int(grayLen*math.Sin(grayAngle))
	c.DrawLine(px, py, p1x, p1y)
	c.DrawCircle(p1x, p1y, 1)

	bend := geometry.Radians(d.Geom.BendAngle)
	switch d.Kind.Spec().Form {
	case geometry.Bent:
		// Bend point and drop segment rotate as one rigid body.
		rbx := d.Geom.SecondaryArm * math.Cos(bend) * scale
		rby := d.Geom.SecondaryArm * math.Sin(bend) * scale
		bx, by := rotatePoint(rbx, rby, rot)
		p2x, p2y := rotatePoint(rbx, 0, rot)
		c.DrawLine(px, py, px+int(bx), py-int(by))
		c.DrawLine(px+int(bx), py-int(by), px+int(p2x), py-int(p2y))
		c.DrawCircle(px+int(p2x), py-int(p2y), 1)
	default:
		angle := bend + rot
		l := d.Geom.SecondaryArm * scale
		p2x := px + int(l*math.Cos(angle))
		p2y := py - int(l*math.Sin(angle))
		c.DrawLine(px, py, p2x, p2y)
		c.DrawCircle(p2x, p2y, 1)
	}

	// Moment-arm dimension line.
	x1 := int(d.X1Current * scale)
	c.DrawLine(px, py+6, px+x1, py+6)
	c.DrawLine(px, py+4, px, py+8)
	c.DrawLine(px+x1, py+4, px+x1, py+8)

	c.DrawCircle(px, py, 2)
}

func rotatePoint(x, y, angle float64) (float64, float64) {
	cs, sn := math.Cos(angle), math.Sin(angle)
	return x*cs - y*sn, x*sn + y*cs
}
