// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"math"
	"sort"
)

// Brush supplies the source color for fills, paints, masks and text.
type Brush interface {
	// ColorAt returns the premultiplied color at user-space point (x, y).
	// Contexts sample at pixel centers.
	ColorAt(x, y float64) color.RGBA
}

// SolidBrush is a single premultiplied color.
type SolidBrush struct {
	Color color.RGBA
}

// NewSolidBrush creates a solid brush from straight (non-premultiplied)
// components in [0, 1].
func NewSolidBrush(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: premultiply(r, g, b, a)}
}

// ColorAt implements Brush.
func (s SolidBrush) ColorAt(_, _ float64) color.RGBA {
	return s.Color
}

// ColorStop is a gradient color at an offset in [0, 1].
// Components are straight alpha.
type ColorStop struct {
	Offset     float64
	R, G, B, A float64
}

// LinearGradientBrush represents a linear color transition between two
// points. Outside the stop range the nearest end color is used.
type LinearGradientBrush struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []ColorStop
}

// NewLinearGradientBrush creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds an opaque color stop.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStop(offset, r, gr, b float64) *LinearGradientBrush {
	return g.AddColorStopRGBA(offset, r, gr, b, 1)
}

// AddColorStopRGBA adds a color stop. Stops are kept sorted by offset;
// stops with equal offsets keep their insertion order.
// Returns the gradient for method chaining.
func (g *LinearGradientBrush) AddColorStopRGBA(offset, r, gr, b, a float64) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: clamp01(offset), R: r, G: gr, B: b, A: a})
	sort.SliceStable(g.Stops, func(i, j int) bool { return g.Stops[i].Offset < g.Stops[j].Offset })
	return g
}

// ColorAt implements Brush.
func (g *LinearGradientBrush) ColorAt(x, y float64) color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}

	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		s := g.Stops[0]
		return premultiply(s.R, s.G, s.B, s.A)
	}

	// t = dot(P - Start, End - Start) / |End - Start|^2
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return premultiply(first.R, first.G, first.B, first.A)
	}
	if t >= last.Offset {
		return premultiply(last.R, last.G, last.B, last.A)
	}

	for i := 1; i < len(g.Stops); i++ {
		s1 := g.Stops[i]
		if t > s1.Offset {
			continue
		}
		s0 := g.Stops[i-1]
		span := s1.Offset - s0.Offset
		if span <= 0 {
			return premultiply(s1.R, s1.G, s1.B, s1.A)
		}
		f := (t - s0.Offset) / span
		return premultiply(
			lerp(s0.R, s1.R, f),
			lerp(s0.G, s1.G, f),
			lerp(s0.B, s1.B, f),
			lerp(s0.A, s1.A, f),
		)
	}
	return premultiply(last.R, last.G, last.B, last.A)
}

// premultiply converts straight components in [0, 1] to a premultiplied
// 8-bit color.
func premultiply(r, g, b, a float64) color.RGBA {
	a = clamp01(a)
	return color.RGBA{
		R: to8(clamp01(r) * a),
		G: to8(clamp01(g) * a),
		B: to8(clamp01(b) * a),
		A: to8(a),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
