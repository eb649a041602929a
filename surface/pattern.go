// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"math"
)

// Filter selects how a Pattern samples its pixmap.
type Filter uint8

const (
	// FilterNearest picks the pixel containing the sample point.
	FilterNearest Filter = iota

	// FilterBilinear interpolates between the four nearest pixels.
	FilterBilinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// Extend determines what a Pattern returns outside its pixmap.
type Extend uint8

const (
	// ExtendNone is transparent outside the pixmap.
	ExtendNone Extend = iota

	// ExtendPad repeats the nearest edge pixel.
	ExtendPad
)

// String returns a string representation of the extend mode.
func (e Extend) String() string {
	switch e {
	case ExtendNone:
		return "None"
	case ExtendPad:
		return "Pad"
	default:
		return "Unknown"
	}
}

// Pattern is a Brush that samples a Pixmap.
//
// The pattern matrix maps user space to pixmap space, as cairo's pattern
// matrix does: a user-space point (x, y) samples the pixmap at
// Matrix.TransformPoint(x, y).
//
// The pattern reads the pixmap on every sample and does not copy it.
type Pattern struct {
	pixmap *Pixmap
	matrix Matrix
	filter Filter
	extend Extend
}

// NewPattern creates a pattern over pm with the identity matrix,
// FilterNearest and ExtendNone.
func NewPattern(pm *Pixmap) *Pattern {
	return &Pattern{
		pixmap: pm,
		matrix: Identity(),
		filter: FilterNearest,
		extend: ExtendNone,
	}
}

// Pixmap returns the sampled pixmap.
func (p *Pattern) Pixmap() *Pixmap {
	return p.pixmap
}

// SetMatrix sets the user-to-pixmap matrix.
func (p *Pattern) SetMatrix(m Matrix) {
	p.matrix = m
}

// Matrix returns the user-to-pixmap matrix.
func (p *Pattern) Matrix() Matrix {
	return p.matrix
}

// SetFilter sets the sampling filter.
func (p *Pattern) SetFilter(f Filter) {
	p.filter = f
}

// Filter returns the sampling filter.
func (p *Pattern) Filter() Filter {
	return p.filter
}

// SetExtend sets the extend mode.
func (p *Pattern) SetExtend(e Extend) {
	p.extend = e
}

// Extend returns the extend mode.
func (p *Pattern) Extend() Extend {
	return p.extend
}

// ColorAt implements Brush.
func (p *Pattern) ColorAt(x, y float64) color.RGBA {
	if p.pixmap == nil {
		return color.RGBA{}
	}
	u, v := p.matrix.TransformPoint(x, y)
	if p.filter == FilterBilinear {
		return p.sampleBilinear(u, v)
	}
	return p.texel(int(math.Floor(u)), int(math.Floor(v)))
}

// texel returns pixmap pixel (x, y) with the extend mode applied.
func (p *Pattern) texel(x, y int) color.RGBA {
	w, h := p.pixmap.width, p.pixmap.height
	if x < 0 || x >= w || y < 0 || y >= h {
		if p.extend == ExtendNone {
			return color.RGBA{}
		}
		x = clampInt(x, 0, w-1)
		y = clampInt(y, 0, h-1)
	}
	return p.pixmap.RGBAAt(x, y)
}

// sampleBilinear interpolates between the four pixels around (u, v),
// treating pixel centers as lying at half-integer coordinates.
func (p *Pattern) sampleBilinear(u, v float64) color.RGBA {
	u -= 0.5
	v -= 0.5
	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	fx := u - float64(x0)
	fy := v - float64(y0)

	c00 := p.texel(x0, y0)
	c10 := p.texel(x0+1, y0)
	c01 := p.texel(x0, y0+1)
	c11 := p.texel(x0+1, y0+1)

	mix := func(a, b, c, d uint8) uint8 {
		top := lerp(float64(a), float64(b), fx)
		bottom := lerp(float64(c), float64(d), fx)
		return uint8(math.Round(lerp(top, bottom, fy)))
	}
	return color.RGBA{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
		A: mix(c00.A, c10.A, c01.A, c11.A),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
