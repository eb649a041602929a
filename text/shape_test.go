package text

import (
	"testing"
)

// recordingSink counts outline operations.
type recordingSink struct {
	moves, lines, quads, cubics, closes int
	minY, maxY                          float64
}

func (s *recordingSink) track(y float64) {
	if s.moves+s.lines+s.quads+s.cubics == 0 || y < s.minY {
		s.minY = y
	}
	if y > s.maxY {
		s.maxY = y
	}
}

func (s *recordingSink) MoveTo(_, y float64) { s.track(y); s.moves++ }
func (s *recordingSink) LineTo(_, y float64) { s.track(y); s.lines++ }
func (s *recordingSink) QuadTo(_, _, _, y float64) {
	s.track(y)
	s.quads++
}

func (s *recordingSink) CubicTo(_, _, _, _, _, y float64) {
	s.track(y)
	s.cubics++
}
func (s *recordingSink) ClosePath() { s.closes++ }

func TestShapeEmpty(t *testing.T) {
	face := loadTestFace(t, WeightBold, 14)
	run := face.Shape("")
	if len(run.Glyphs) != 0 || run.Advance != 0 {
		t.Errorf("Shape(\"\") = %+v, want empty run", run)
	}
}

func TestShapeAdvances(t *testing.T) {
	face := loadTestFace(t, WeightBold, 14)
	run := face.Shape("Message")

	if len(run.Glyphs) != len("Message") {
		t.Fatalf("len(Glyphs) = %d, want %d", len(run.Glyphs), len("Message"))
	}

	sum := 0.0
	for i, g := range run.Glyphs {
		if g.Advance <= 0 {
			t.Errorf("glyph %d advance = %f, want > 0", i, g.Advance)
		}
		if i > 0 && g.X <= run.Glyphs[i-1].X {
			t.Errorf("glyph %d X = %f not after glyph %d X = %f", i, g.X, i-1, run.Glyphs[i-1].X)
		}
		sum += g.Advance
	}
	if run.Advance != sum {
		t.Errorf("Advance = %f, want sum of glyph advances %f", run.Advance, sum)
	}
}

func TestShapeLongerIsWider(t *testing.T) {
	face := loadTestFace(t, WeightBold, 14)
	short := face.Shape("ab").Advance
	long := face.Shape("abab").Advance
	if long <= short {
		t.Errorf("Advance(abab) = %f, want > Advance(ab) = %f", long, short)
	}
}

func TestVisualSegments(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantRTL []bool
	}{
		{"latin", "Hello", []bool{false}},
		{"hebrew", "שלום", []bool{true}},
		{"mixed", "abc שלום", []bool{false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := visualSegments(tt.in)
			if len(segs) != len(tt.wantRTL) {
				t.Fatalf("got %d segments, want %d", len(segs), len(tt.wantRTL))
			}
			for i, seg := range segs {
				if seg.rtl != tt.wantRTL[i] {
					t.Errorf("segment %d rtl = %v, want %v", i, seg.rtl, tt.wantRTL[i])
				}
			}
		})
	}
}

func TestExtents(t *testing.T) {
	face := loadTestFace(t, WeightBold, 14)

	ext := face.Measure("Hx")
	if ext.Width <= 0 || ext.Height <= 0 {
		t.Fatalf("Extents = %+v, want positive ink size", ext)
	}
	if ext.YBearing >= 0 {
		t.Errorf("YBearing = %f, want ink above the baseline", ext.YBearing)
	}
	if ext.Width > ext.XAdvance+1 {
		t.Errorf("Width = %f exceeds advance %f", ext.Width, ext.XAdvance)
	}

	blank := face.Measure("   ")
	if blank.Width != 0 || blank.Height != 0 {
		t.Errorf("blank extents = %+v, want no ink", blank)
	}
	if blank.XAdvance <= 0 {
		t.Errorf("blank XAdvance = %f, want > 0", blank.XAdvance)
	}
}

func TestAppendOutline(t *testing.T) {
	face := loadTestFace(t, WeightBold, 14)

	var sink recordingSink
	if err := face.AppendOutline(&sink, face.Shape("O"), 10, 20); err != nil {
		t.Fatalf("AppendOutline: %v", err)
	}

	// "O" has an outer and an inner contour.
	if sink.moves != 2 {
		t.Errorf("moves = %d, want 2", sink.moves)
	}
	if sink.closes != sink.moves {
		t.Errorf("closes = %d, want one per contour (%d)", sink.closes, sink.moves)
	}
	if sink.lines+sink.quads+sink.cubics == 0 {
		t.Error("outline has no drawing segments")
	}
	if sink.maxY > 20.5 || sink.minY < 20-14 {
		t.Errorf("outline Y range [%f, %f] not around baseline 20", sink.minY, sink.maxY)
	}
}

func TestAppendOutlineSpace(t *testing.T) {
	face := loadTestFace(t, WeightNormal, 14)

	var sink recordingSink
	if err := face.AppendOutline(&sink, face.Shape(" "), 0, 0); err != nil {
		t.Fatalf("AppendOutline: %v", err)
	}
	if sink.moves != 0 {
		t.Errorf("space produced %d contours", sink.moves)
	}
}

func TestShapeCachedCopy(t *testing.T) {
	face := loadTestFace(t, WeightBold, 14)
	first := face.Shape("Cached")
	first.Glyphs[0].X = 1000

	second := face.Shape("Cached")
	if second.Glyphs[0].X == 1000 {
		t.Error("Shape returned a run sharing the cached glyphs")
	}
	if s := face.runs.Stats(); s.Hits != 1 || s.Misses != 1 {
		t.Errorf("run cache stats = %+v, want 1 hit and 1 miss", s)
	}
}
