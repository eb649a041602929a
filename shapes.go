package decor

import "math"

// RoundedRect adds a closed rectangle from (x0, y0) to (x1, y1) with
// quarter-circle corners of the given radius. The corners are emitted
// top-left, top-right, bottom-right, bottom-left.
func RoundedRect(p PathBuilder, x0, y0, x1, y1, radius float64) {
	p.MoveTo(x0, y0+radius)
	p.DrawArc(x0+radius, y0+radius, radius, math.Pi, 3*math.Pi/2)
	p.LineTo(x1-radius, y0)
	p.DrawArc(x1-radius, y0+radius, radius, 3*math.Pi/2, 2*math.Pi)
	p.LineTo(x1, y1-radius)
	p.DrawArc(x1-radius, y1-radius, radius, 0, math.Pi/2)
	p.LineTo(x0+radius, y1)
	p.DrawArc(x0+radius, y1-radius, radius, math.Pi/2, math.Pi)
	p.ClosePath()
}
