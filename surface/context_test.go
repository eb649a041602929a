// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/decor/text"
)

func newTestContext(t *testing.T, w, h int) *Context {
	t.Helper()
	pm, err := NewPixmap(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return NewContext(pm)
}

func TestContextFillRectangleExact(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetRGB(1, 0, 0)
	c.DrawRectangle(2, 3, 4, 5)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	in := image.Rect(2, 3, 6, 8)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			got := c.Pixmap().ARGB(x, y)
			want := uint32(0)
			if image.Pt(x, y).In(in) {
				want = 0xffff0000
			}
			if got != want {
				t.Fatalf("pixel (%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestContextFillClearsPath(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.DrawRectangle(0, 0, 4, 4)
	if err := c.FillPreserve(); err != nil {
		t.Fatal(err)
	}
	if c.path.Empty() {
		t.Error("FillPreserve cleared the path")
	}
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	if !c.path.Empty() {
		t.Error("Fill kept the path")
	}
}

func TestContextFillOver(t *testing.T) {
	c := newTestContext(t, 2, 2)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, 2, 2)
	_ = c.Fill()

	c.SetRGBA(0, 0, 0, 0.5)
	c.DrawRectangle(0, 0, 1, 1)
	_ = c.Fill()

	if got := c.Pixmap().ARGB(0, 0); got != 0xff7f7f7f {
		t.Errorf("blended pixel = %#08x, want 0xff7f7f7f", got)
	}
	if got := c.Pixmap().ARGB(1, 1); got != 0xffffffff {
		t.Errorf("untouched pixel = %#08x, want 0xffffffff", got)
	}
}

func TestContextFillAntialiased(t *testing.T) {
	c := newTestContext(t, 4, 1)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0.5, 0, 2, 1)
	_ = c.Fill()

	if a := c.Pixmap().RGBAAt(0, 0).A; a < 126 || a > 129 {
		t.Errorf("half-covered alpha = %d, want about 128", a)
	}
	if a := c.Pixmap().RGBAAt(1, 0).A; a != 255 {
		t.Errorf("covered alpha = %d, want 255", a)
	}
}

func TestContextFillInvalidPath(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.MoveTo(0, 0)
	c.LineTo(math.Inf(1), 2)
	c.LineTo(0, 4)
	if err := c.Fill(); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("err = %v, want ErrInvalidPath", err)
	}
}

func TestContextClipRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       image.Rectangle
	}{
		{"integral", 1, 2, 3, 4, image.Rect(1, 2, 4, 6)},
		{"pixel centers", 0.4, 0, 1.2, 1, image.Rect(0, 0, 2, 1)},
		{"excludes center", 0.6, 0, 0.8, 1, image.Rectangle{}},
		{"negative size", 4, 4, -2, -2, image.Rect(2, 2, 4, 4)},
		{"clamped to pixmap", -5, -5, 100, 100, image.Rect(0, 0, 8, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, 8, 8)
			c.ClipRect(tt.x, tt.y, tt.w, tt.h)
			if got := c.ClipBounds(); got != tt.want {
				t.Errorf("ClipBounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContextClipReplaces(t *testing.T) {
	c := newTestContext(t, 8, 8)
	c.ClipRect(0, 0, 2, 2)
	c.ClipRect(4, 4, 2, 2)
	if got := c.ClipBounds(); got != image.Rect(4, 4, 6, 6) {
		t.Errorf("ClipBounds = %v, want second rectangle", got)
	}
	c.ResetClip()
	if got := c.ClipBounds(); got != image.Rect(0, 0, 8, 8) {
		t.Errorf("ClipBounds after reset = %v", got)
	}
}

func TestContextFillClipped(t *testing.T) {
	c := newTestContext(t, 8, 8)
	c.ClipRect(0, 0, 4, 8)
	c.SetRGB(0, 0, 1)
	c.DrawRectangle(0, 0, 8, 8)
	_ = c.Fill()

	if got := c.Pixmap().ARGB(3, 7); got != 0xff0000ff {
		t.Errorf("inside clip = %#08x, want 0xff0000ff", got)
	}
	if got := c.Pixmap().ARGB(4, 0); got != 0 {
		t.Errorf("outside clip = %#08x, want 0", got)
	}
}

func TestContextClear(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.SetRGB(1, 1, 1)
	_ = c.Paint()

	c.ClipRect(0, 0, 2, 2)
	c.Clear()
	if got := c.Pixmap().ARGB(1, 1); got != 0 {
		t.Errorf("cleared pixel = %#08x, want 0", got)
	}
	if got := c.Pixmap().ARGB(3, 3); got != 0xffffffff {
		t.Errorf("pixel outside clip = %#08x, want 0xffffffff", got)
	}
}

func TestContextMask(t *testing.T) {
	tmpl, _ := NewPixmap(4, 4)
	tmpl.SetARGB(1, 1, 0x80000000)

	c := newTestContext(t, 4, 4)
	c.SetRGB(1, 1, 1)
	if err := c.Mask(NewPattern(tmpl)); err != nil {
		t.Fatalf("Mask: %v", err)
	}

	if got := c.Pixmap().ARGB(1, 1); got != 0x80808080 {
		t.Errorf("masked pixel = %#08x, want 0x80808080", got)
	}
	if got := c.Pixmap().ARGB(2, 2); got != 0 {
		t.Errorf("unmasked pixel = %#08x, want 0", got)
	}

	if err := c.Mask(nil); !errors.Is(err, ErrNilPattern) {
		t.Errorf("Mask(nil) err = %v, want ErrNilPattern", err)
	}
}

func TestContextMaskClipped(t *testing.T) {
	tmpl, _ := NewPixmap(1, 1)
	tmpl.SetARGB(0, 0, 0xff000000)
	p := NewPattern(tmpl)
	p.SetExtend(ExtendPad)

	c := newTestContext(t, 6, 6)
	c.ClipRect(2, 2, 2, 2)
	_ = c.Mask(p)

	n := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if c.Pixmap().ARGB(x, y) != 0 {
				n++
			}
		}
	}
	if n != 4 {
		t.Errorf("painted pixels = %d, want 4", n)
	}
}

func TestContextKeepsStridePadding(t *testing.T) {
	pm, _ := NewPixmapWithStride(3, 3, 16)
	for i := range pm.Data() {
		pm.Data()[i] = 0x5a
	}
	c := NewContext(pm)
	c.Clear()
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(-1, -1, 10, 10)
	_ = c.Fill()

	for y := 0; y < 3; y++ {
		for i := 12; i < 16; i++ {
			if b := pm.Data()[y*16+i]; b != 0x5a {
				t.Fatalf("padding byte row %d index %d = %#x", y, i, b)
			}
		}
	}
}

func TestContextFillGradient(t *testing.T) {
	c := newTestContext(t, 1, 100)
	c.SetBrush(NewLinearGradientBrush(0, 0, 0, 100).AddColorStop(0, 1, 1, 1).AddColorStop(1, 0, 0, 0))
	c.DrawRectangle(0, 0, 1, 100)
	_ = c.Fill()

	top := c.Pixmap().RGBAAt(0, 0).R
	bottom := c.Pixmap().RGBAAt(0, 99).R
	if top <= bottom {
		t.Errorf("top %d should be lighter than bottom %d", top, bottom)
	}
}

func TestContextShowTextWithoutFace(t *testing.T) {
	c := newTestContext(t, 10, 10)
	if err := c.ShowText("x", 0, 5); !errors.Is(err, ErrNoFont) {
		t.Errorf("err = %v, want ErrNoFont", err)
	}
	if m := c.FontExtents(); m != (text.Metrics{}) {
		t.Errorf("FontExtents = %+v, want zero", m)
	}
	if e := c.TextExtents("x"); e != (text.Extents{}) {
		t.Errorf("TextExtents = %+v, want zero", e)
	}
}

func TestContextShowText(t *testing.T) {
	face, err := text.DefaultFace(text.WeightBold, 14)
	if err != nil {
		t.Fatal(err)
	}

	c := newTestContext(t, 120, 30)
	c.SetFontFace(face)
	if c.FontFace() != face {
		t.Fatal("FontFace does not return the face set")
	}
	if c.FontExtents().Ascent <= 0 {
		t.Errorf("Ascent = %v, want positive", c.FontExtents().Ascent)
	}
	ext := c.TextExtents("Message")
	if ext.Width <= 0 || ext.XAdvance <= 0 {
		t.Errorf("TextExtents = %+v, want positive width", ext)
	}

	c.MoveTo(1, 1)
	c.SetRGB(0, 0, 0)
	if err := c.ShowText("Message", 10, 20); err != nil {
		t.Fatalf("ShowText: %v", err)
	}
	if c.path.Empty() {
		t.Error("ShowText discarded the current path")
	}

	inked := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 120; x++ {
			if c.Pixmap().RGBAAt(x, y).A != 0 {
				inked++
				if y > 24 {
					t.Fatalf("ink at (%d, %d) below the descender", x, y)
				}
			}
		}
	}
	if inked == 0 {
		t.Error("ShowText drew nothing")
	}
}
