// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"testing"
)

func newQuadPixmap(t *testing.T) *Pixmap {
	t.Helper()
	pm, err := NewPixmap(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	pm.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	pm.SetRGBA(1, 0, color.RGBA{G: 200, A: 200})
	pm.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	pm.SetRGBA(1, 1, color.RGBA{A: 100})
	return pm
}

func TestPatternNearest(t *testing.T) {
	pm := newQuadPixmap(t)
	p := NewPattern(pm)

	tests := []struct {
		x, y float64
		want color.RGBA
	}{
		{0.5, 0.5, pm.RGBAAt(0, 0)},
		{1.5, 0.5, pm.RGBAAt(1, 0)},
		{0.1, 1.9, pm.RGBAAt(0, 1)},
		{1.99, 1.99, pm.RGBAAt(1, 1)},
		{-0.5, 0.5, color.RGBA{}},
		{2.5, 0.5, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := p.ColorAt(tt.x, tt.y); got != tt.want {
			t.Errorf("ColorAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPatternExtendPad(t *testing.T) {
	pm := newQuadPixmap(t)
	p := NewPattern(pm)
	p.SetExtend(ExtendPad)

	if got := p.ColorAt(-5, 0.5); got != pm.RGBAAt(0, 0) {
		t.Errorf("left of pixmap = %v, want %v", got, pm.RGBAAt(0, 0))
	}
	if got := p.ColorAt(10, 10); got != pm.RGBAAt(1, 1) {
		t.Errorf("below right = %v, want %v", got, pm.RGBAAt(1, 1))
	}
}

func TestPatternMatrix(t *testing.T) {
	pm := newQuadPixmap(t)
	p := NewPattern(pm)
	p.SetMatrix(Translate(-10, -20))

	if got := p.ColorAt(11.5, 20.5); got != pm.RGBAAt(1, 0) {
		t.Errorf("ColorAt = %v, want %v", got, pm.RGBAAt(1, 0))
	}

	// A matrix squeezing 8 user units onto one pixmap column.
	p.SetMatrix(Scale(1.0/8, 1))
	for x := 0.5; x < 8; x++ {
		if got := p.ColorAt(x, 0.5); got != pm.RGBAAt(0, 0) {
			t.Fatalf("ColorAt(%v, 0.5) = %v, want %v", x, got, pm.RGBAAt(0, 0))
		}
	}
}

func TestPatternBilinear(t *testing.T) {
	pm := newQuadPixmap(t)
	p := NewPattern(pm)
	p.SetFilter(FilterBilinear)

	if got := p.ColorAt(0.5, 0.5); got != pm.RGBAAt(0, 0) {
		t.Errorf("at pixel center = %v, want %v", got, pm.RGBAAt(0, 0))
	}
	got := p.ColorAt(1, 0.5)
	if got.A != 228 {
		t.Errorf("between pixels A = %d, want 228", got.A)
	}
}

func TestPatternNilPixmap(t *testing.T) {
	p := NewPattern(nil)
	if got := p.ColorAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("ColorAt = %v, want transparent", got)
	}
}

func TestFilterExtendString(t *testing.T) {
	if FilterNearest.String() != "Nearest" || FilterBilinear.String() != "Bilinear" {
		t.Error("unexpected Filter names")
	}
	if ExtendNone.String() != "None" || ExtendPad.String() != "Pad" {
		t.Error("unexpected Extend names")
	}
	if Filter(9).String() != "Unknown" || Extend(9).String() != "Unknown" {
		t.Error("unknown values should print Unknown")
	}
}
