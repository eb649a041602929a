package recording

import (
	"testing"

	"github.com/gogpu/decor/surface"
	"github.com/gogpu/decor/text"
)

func TestNewResourcePool(t *testing.T) {
	pool := NewResourcePool()
	if pool.BrushCount() != 0 || pool.PatternCount() != 0 || pool.FontCount() != 0 {
		t.Errorf("new pool not empty: %d brushes, %d patterns, %d fonts",
			pool.BrushCount(), pool.PatternCount(), pool.FontCount())
	}
	if pool.Brush(0) != nil || pool.Pattern(0) != nil || pool.Font(0) != nil {
		t.Error("out of range lookups should return nil")
	}
}

func TestResourcePoolPatternCopied(t *testing.T) {
	pm, _ := surface.NewPixmap(4, 4)
	pat := surface.NewPattern(pm)
	pat.SetMatrix(surface.Translate(1, 2))

	pool := NewResourcePool()
	ref := pool.AddPattern(pat)
	pat.SetMatrix(surface.Translate(9, 9))

	got := pool.Pattern(ref)
	if got == pat {
		t.Fatal("pool stored the caller's pattern")
	}
	if got.Matrix() != surface.Translate(1, 2) {
		t.Errorf("Matrix() = %+v, want the matrix at record time", got.Matrix())
	}
	if got.Pixmap() == pm || !got.Pixmap().Equal(pm) {
		t.Error("pattern pixmap should be an equal private copy")
	}
}

func TestResourcePoolPixmapSnapshot(t *testing.T) {
	pm, _ := surface.NewPixmap(4, 4)
	pm.SetARGB(1, 1, 0xff102030)

	pool := NewResourcePool()
	a := pool.AddPattern(surface.NewPattern(pm))
	b := pool.AddBrush(surface.NewPattern(pm))

	pm.Clear()

	got := pool.Pattern(a).Pixmap()
	if v := got.ARGB(1, 1); v != 0xff102030 {
		t.Errorf("snapshot pixel = %#08x, want 0xff102030 after the source was cleared", v)
	}
	if pool.Brush(b).(*surface.Pattern).Pixmap() != got {
		t.Error("patterns over one pixmap should share a single copy")
	}
	if ref := pool.AddPattern(surface.NewPattern(nil)); pool.Pattern(ref).Pixmap() != nil {
		t.Error("pattern without a pixmap should stay without one")
	}
}

func TestResourcePoolBrushPattern(t *testing.T) {
	pm, _ := surface.NewPixmap(4, 4)
	pat := surface.NewPattern(pm)
	pool := NewResourcePool()

	ref := pool.AddBrush(pat)
	if b, ok := pool.Brush(ref).(*surface.Pattern); !ok || b == pat {
		t.Errorf("Brush() = %T, want a copied *surface.Pattern", pool.Brush(ref))
	}

	solid := surface.NewSolidBrush(1, 0, 0, 1)
	if got := pool.Brush(pool.AddBrush(solid)); got != surface.Brush(solid) {
		t.Errorf("solid brush = %v, want %v", got, solid)
	}
}

func TestResourcePoolFontDeduplicated(t *testing.T) {
	face, err := text.DefaultFace(text.WeightBold, 14)
	if err != nil {
		t.Fatal(err)
	}
	pool := NewResourcePool()
	a := pool.AddFont(face)
	b := pool.AddFont(face)
	if a != b || pool.FontCount() != 1 {
		t.Errorf("refs %d, %d and count %d, want one shared entry", a, b, pool.FontCount())
	}
	if pool.Font(a) != face {
		t.Error("Font() returned a different face")
	}
}
