// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/decor/text"
)

// Context draws into a Pixmap.
//
// User space equals device space: one unit is one pixel and (0, 0) is the
// top-left corner of the pixmap. Every drawing operation composites with
// the OVER operator, restricted to the clip rectangle.
type Context struct {
	pm    *Pixmap
	path  Path
	brush Brush

	clip    image.Rectangle
	hasClip bool

	face *text.Face

	raster   vector.Rasterizer
	coverBuf []uint8
	textPath Path
}

// NewContext creates a context drawing into pm with an opaque black brush
// and no clip.
func NewContext(pm *Pixmap) *Context {
	return &Context{
		pm:    pm,
		brush: SolidBrush{Color: color.RGBA{A: 0xff}},
	}
}

// Pixmap returns the target pixmap.
func (c *Context) Pixmap() *Pixmap {
	return c.pm
}

// Width returns the target width.
func (c *Context) Width() int {
	return c.pm.width
}

// Height returns the target height.
func (c *Context) Height() int {
	return c.pm.height
}

// SetBrush sets the source for subsequent drawing.
func (c *Context) SetBrush(b Brush) {
	if b == nil {
		b = SolidBrush{}
	}
	c.brush = b
}

// Brush returns the current source.
func (c *Context) Brush() Brush {
	return c.brush
}

// SetRGBA sets a solid source from straight components in [0, 1].
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.brush = NewSolidBrush(r, g, b, a)
}

// SetRGB sets an opaque solid source.
func (c *Context) SetRGB(r, g, b float64) {
	c.SetRGBA(r, g, b, 1)
}

// NewPath discards the current path.
func (c *Context) NewPath() {
	c.path.Reset()
}

// MoveTo starts a new subpath.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

// QuadTo adds a quadratic Bézier to the current path.
func (c *Context) QuadTo(cx, cy, x, y float64) {
	c.path.QuadTo(cx, cy, x, y)
}

// CubicTo adds a cubic Bézier to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.ClosePath()
}

// DrawArc adds an arc from angle1 to angle2 (radians, increasing
// clockwise on screen) to the current path.
func (c *Context) DrawArc(x, y, r, angle1, angle2 float64) {
	c.path.Arc(x, y, r, angle1, angle2)
}

// DrawRectangle adds a closed rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.path.Rectangle(x, y, w, h)
}

// Fill fills the current path with the brush and clears the path.
func (c *Context) Fill() error {
	err := c.fillPath(&c.path)
	c.path.Reset()
	return err
}

// FillPreserve fills the current path with the brush and keeps the path.
func (c *Context) FillPreserve() error {
	return c.fillPath(&c.path)
}

// Paint composites the brush over the whole clip region.
func (c *Context) Paint() error {
	r := c.clipBounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.blend(x, y, 0xff)
		}
	}
	return nil
}

// Mask composites the brush through the alpha channel of pattern over the
// clip region. The current path is not used.
func (c *Context) Mask(pattern *Pattern) error {
	if pattern == nil {
		return ErrNilPattern
	}
	r := c.clipBounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := pattern.ColorAt(float64(x)+0.5, float64(y)+0.5).A
			c.blend(x, y, m)
		}
	}
	return nil
}

// Clear sets every pixel inside the clip to transparent.
func (c *Context) Clear() {
	r := c.clipBounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := c.pm.data[c.pm.PixOffset(r.Min.X, y):c.pm.PixOffset(r.Max.X, y)]
		clear(row)
	}
}

// ClipRect replaces the clip with a rectangle. A pixel is inside the clip
// when its center is.
func (c *Context) ClipRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	c.clip = image.Rect(
		pixelEdge(x), pixelEdge(y),
		pixelEdge(x+w), pixelEdge(y+h),
	)
	c.hasClip = true
}

// ResetClip removes the clip.
func (c *Context) ResetClip() {
	c.clip = image.Rectangle{}
	c.hasClip = false
}

// ClipBounds returns the pixels drawing is currently restricted to.
func (c *Context) ClipBounds() image.Rectangle {
	return c.clipBounds()
}

func (c *Context) clipBounds() image.Rectangle {
	b := c.pm.Bounds()
	if c.hasClip {
		return b.Intersect(c.clip)
	}
	return b
}

// pixelEdge converts a user-space edge to the index of the first pixel
// whose center lies at or after it.
func pixelEdge(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(math.Min(v, MaxDimension+1), -MaxDimension-1)
	return int(math.Ceil(v - 0.5))
}

// fillPath rasterizes p into coverage and composites the brush through it.
// Only the part of the path inside the clip is rasterized.
func (c *Context) fillPath(p *Path) error {
	if p.Empty() {
		return nil
	}
	if !p.finite() {
		return ErrInvalidPath
	}

	r := p.pixelBounds().Intersect(c.clipBounds())
	if r.Empty() {
		return nil
	}

	w, h := r.Dx(), r.Dy()
	c.raster.Reset(w, h)
	c.raster.DrawOp = draw.Src
	p.rasterize(&c.raster, float64(r.Min.X), float64(r.Min.Y))

	cover := c.coverage(w, h)
	c.raster.Draw(cover, cover.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := cover.Pix[y*cover.Stride : y*cover.Stride+w]
		for x, m := range row {
			c.blend(r.Min.X+x, r.Min.Y+y, m)
		}
	}
	return nil
}

// coverage returns a packed w×h alpha mask backed by a buffer reused
// between fills. The rasterizer writes packed rows when the mask bounds
// equal its own, so the stride must be exactly w.
func (c *Context) coverage(w, h int) *image.Alpha {
	n := w * h
	if cap(c.coverBuf) < n {
		c.coverBuf = make([]uint8, n)
	}
	return &image.Alpha{
		Pix:    c.coverBuf[:n],
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// blend composites the brush sample at pixel (x, y), scaled by coverage m,
// over the destination.
func (c *Context) blend(x, y int, m uint8) {
	if m == 0 {
		return
	}
	s := c.brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
	if m != 0xff {
		s.R = mul255(s.R, m)
		s.G = mul255(s.G, m)
		s.B = mul255(s.B, m)
		s.A = mul255(s.A, m)
	}
	if s == (color.RGBA{}) {
		return
	}

	d := c.pm.data[c.pm.PixOffset(x, y):]
	if s.A == 0xff {
		d[0], d[1], d[2], d[3] = s.B, s.G, s.R, 0xff
		return
	}
	ia := 0xff - uint32(s.A)
	d[0] = s.B + div255(uint32(d[0])*ia)
	d[1] = s.G + div255(uint32(d[1])*ia)
	d[2] = s.R + div255(uint32(d[2])*ia)
	d[3] = s.A + div255(uint32(d[3])*ia)
}

// div255 returns v/255 rounded to nearest, for v <= 255*255.
func div255(v uint32) uint8 {
	v += 0x80
	return uint8((v + (v >> 8)) >> 8)
}

func mul255(a, b uint8) uint8 {
	return div255(uint32(a) * uint32(b))
}
