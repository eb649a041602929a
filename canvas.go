package decor

import (
	"github.com/gogpu/decor/surface"
	"github.com/gogpu/decor/text"
)

// PathBuilder is the path construction subset of Canvas.
type PathBuilder interface {
	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// DrawArc adds an arc around (xc, yc) from angle1 to angle2 in radians,
	// joined to the current point by a line if there is one.
	DrawArc(xc, yc, r, angle1, angle2 float64)
	ClosePath()
}

// Canvas is the 2D drawing context frames are rendered into.
//
// Coordinates are pixels with the origin at the top-left corner. All
// drawing composites with the OVER operator except Clear, which replaces
// pixels inside the clip with transparency.
type Canvas interface {
	PathBuilder

	// Clear makes every pixel inside the clip transparent.
	Clear()

	SetRGBA(r, g, b, a float64)
	SetBrush(b surface.Brush)

	DrawRectangle(x, y, w, h float64)

	// Fill fills the current path with the brush and clears the path.
	Fill() error

	// Mask composites the brush through the alpha of p over the clip.
	Mask(p *surface.Pattern) error

	// ClipRect replaces the clip with a rectangle.
	ClipRect(x, y, w, h float64)
	ResetClip()

	SetFontFace(f *text.Face)
	FontExtents() text.Metrics
	TextExtents(s string) text.Extents

	// ShowText draws s with its baseline origin at (x, y).
	ShowText(s string, x, y float64) error
}

var _ Canvas = (*surface.Context)(nil)
