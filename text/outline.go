package text

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// PathSink receives glyph outlines. Coordinates are in pixels with Y
// increasing downwards.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// AppendOutline emits the outlines of every glyph in run into sink, with
// the run's baseline origin at (x, y). Each contour is closed explicitly.
// Glyphs the font has no outline for (spaces, missing glyphs) are skipped.
func (f *Face) AppendOutline(sink PathSink, run Run, x, y float64) error {
	var buf sfnt.Buffer
	for _, g := range run.Glyphs {
		segments, err := f.source.sfnt.LoadGlyph(&buf, g.ID, f.ppem, nil)
		if err != nil {
			if errors.Is(err, sfnt.ErrNotFound) {
				continue
			}
			return fmt.Errorf("text: glyph %d: %w", g.ID, err)
		}

		ox, oy := x+g.X, y+g.Y
		open := false
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					sink.ClosePath()
				}
				p := seg.Args[0]
				sink.MoveTo(ox+fixedToFloat(p.X), oy+fixedToFloat(p.Y))
				open = true
			case sfnt.SegmentOpLineTo:
				p := seg.Args[0]
				sink.LineTo(ox+fixedToFloat(p.X), oy+fixedToFloat(p.Y))
			case sfnt.SegmentOpQuadTo:
				c, p := seg.Args[0], seg.Args[1]
				sink.QuadTo(
					ox+fixedToFloat(c.X), oy+fixedToFloat(c.Y),
					ox+fixedToFloat(p.X), oy+fixedToFloat(p.Y),
				)
			case sfnt.SegmentOpCubeTo:
				c1, c2, p := seg.Args[0], seg.Args[1], seg.Args[2]
				sink.CubicTo(
					ox+fixedToFloat(c1.X), oy+fixedToFloat(c1.Y),
					ox+fixedToFloat(c2.X), oy+fixedToFloat(c2.Y),
					ox+fixedToFloat(p.X), oy+fixedToFloat(p.Y),
				)
			}
		}
		if open {
			sink.ClosePath()
		}
	}
	return nil
}

// Extents describes the ink and advance of a run, measured from its
// baseline origin. YBearing is negative for ink above the baseline.
type Extents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
}

// Extents measures run. A run with no ink (empty or only spaces) has zero
// Width and Height but still reports its advance.
func (f *Face) Extents(run Run) Extents {
	var buf sfnt.Buffer
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, g := range run.Glyphs {
		b, _, err := f.source.sfnt.GlyphBounds(&buf, g.ID, f.ppem, font.HintingNone)
		if err != nil || b.Empty() {
			continue
		}
		minX = math.Min(minX, g.X+fixedToFloat(b.Min.X))
		minY = math.Min(minY, g.Y+fixedToFloat(b.Min.Y))
		maxX = math.Max(maxX, g.X+fixedToFloat(b.Max.X))
		maxY = math.Max(maxY, g.Y+fixedToFloat(b.Max.Y))
	}

	ext := Extents{XAdvance: run.Advance}
	if minX > maxX {
		return ext
	}
	ext.XBearing = minX
	ext.YBearing = minY
	ext.Width = maxX - minX
	ext.Height = maxY - minY
	return ext
}

// Measure shapes s and returns its extents.
func (f *Face) Measure(s string) Extents {
	return f.Extents(f.Shape(s))
}
