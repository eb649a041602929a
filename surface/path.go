// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Verb identifies a path element.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath at one point.
	VerbMoveTo Verb = iota
	// VerbLineTo adds a line to one point.
	VerbLineTo
	// VerbQuadTo adds a quadratic Bézier: control, end.
	VerbQuadTo
	// VerbCubicTo adds a cubic Bézier: control 1, control 2, end.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// pointCount is the number of points each verb consumes.
var pointCount = [...]int{
	VerbMoveTo:  1,
	VerbLineTo:  1,
	VerbQuadTo:  2,
	VerbCubicTo: 3,
	VerbClose:   0,
}

// Point is a 2D point in user space.
type Point struct {
	X, Y float64
}

// Path is a sequence of subpaths. The zero value is an empty path.
type Path struct {
	verbs   []Verb
	points  []Point
	start   Point
	current Point
	hasCur  bool
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Point{x, y}
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, pt)
	p.start = pt
	p.current = pt
	p.hasCur = true
}

// LineTo adds a line to (x, y). Without a current point it behaves as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasCur {
		p.MoveTo(x, y)
		return
	}
	pt := Point{x, y}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, pt)
	p.current = pt
}

// QuadTo adds a quadratic Bézier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.hasCur {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{cx, cy}, Point{x, y})
	p.current = Point{x, y}
}

// CubicTo adds a cubic Bézier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.hasCur {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
	p.current = Point{x, y}
}

// ClosePath closes the current subpath. The current point returns to the
// subpath's start.
func (p *Path) ClosePath() {
	if !p.hasCur {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.current = p.start
}

// Rectangle adds a closed rectangular subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Arc adds a circular arc centered at (xc, yc) from angle1 to angle2,
// increasing angle (clockwise on screen). If the path has a current point
// a line joins it to the start of the arc. The arc is split into Bézier
// segments of at most 90 degrees.
func (p *Path) Arc(xc, yc, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	x0 := xc + r*math.Cos(angle1)
	y0 := yc + r*math.Sin(angle1)
	if p.hasCur {
		p.LineTo(x0, y0)
	} else {
		p.MoveTo(x0, y0)
	}
	if r <= 0 || angle2 == angle1 {
		return
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil((angle2 - angle1) / maxAngle))
	step := (angle2 - angle1) / float64(n)
	for i := 0; i < n; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(xc, yc, r, a1, a1+step)
	}
}

// arcSegment adds one Bézier approximating an arc of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	k := 4.0 / 3.0 * math.Tan((a2-a1)/4)

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	p.CubicTo(
		x1-k*r*sin1, y1+k*r*cos1,
		x2+k*r*sin2, y2-k*r*cos2,
		x2, y2,
	)
}

// Reset removes all elements and the current point.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasCur = false
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.verbs) == 0
}

// CurrentPoint returns the current point and whether there is one.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.hasCur
}

// Walk calls fn for every element with the points it consumes.
func (p *Path) Walk(fn func(v Verb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := pointCount[v]
		fn(v, p.points[i:i+n])
		i += n
	}
}

// finite reports whether every coordinate is a finite number.
func (p *Path) finite() bool {
	for _, pt := range p.points {
		if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
			return false
		}
	}
	return true
}

// pixelBounds returns the pixels touched by the control-point hull.
func (p *Path) pixelBounds() image.Rectangle {
	if len(p.points) == 0 {
		return image.Rectangle{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range p.points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// rasterize feeds the path into z with origin moved to (ox, oy).
// Every subpath is closed, as filling requires.
func (p *Path) rasterize(z *vector.Rasterizer, ox, oy float64) {
	f := func(pt Point) (float32, float32) {
		return float32(pt.X - ox), float32(pt.Y - oy)
	}
	open := false
	p.Walk(func(v Verb, pts []Point) {
		switch v {
		case VerbMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f(pts[0]))
			open = true
		case VerbLineTo:
			z.LineTo(f(pts[0]))
			open = true
		case VerbQuadTo:
			bx, by := f(pts[0])
			cx, cy := f(pts[1])
			z.QuadTo(bx, by, cx, cy)
			open = true
		case VerbCubicTo:
			bx, by := f(pts[0])
			cx, cy := f(pts[1])
			dx, dy := f(pts[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			open = true
		case VerbClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	})
	if open {
		z.ClosePath()
	}
}
