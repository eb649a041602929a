package text

import (
	"slices"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is a positioned glyph within a Run.
type Glyph struct {
	// ID is the glyph index in the face's font.
	ID sfnt.GlyphIndex

	// X and Y are the pen position relative to the run origin, with Y
	// increasing downwards.
	X, Y float64

	// Advance is the horizontal advance of the glyph.
	Advance float64
}

// Run is a line of shaped glyphs in visual (left to right) order.
type Run struct {
	Glyphs  []Glyph
	Advance float64
}

// segment is a maximal run of one direction, in logical order.
type segment struct {
	runes []rune
	rtl   bool
}

// Shape converts s into positioned glyphs. Mixed-direction strings are
// split into visual runs first so that the glyphs come out in drawing order.
// Recently shaped strings are served from a per-face cache; the returned
// run is always a fresh copy.
func (f *Face) Shape(s string) Run {
	if s == "" {
		return Run{}
	}
	run := f.runs.GetOrCreate(s, func() Run { return f.shape(s) })
	run.Glyphs = slices.Clone(run.Glyphs)
	return run
}

func (f *Face) shape(s string) Run {
	var run Run

	var hb shaping.HarfbuzzShaper
	face := gotext.NewFace(f.source.shaper)

	x := 0.0
	for _, seg := range visualSegments(s) {
		dir := di.DirectionLTR
		if seg.rtl {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      seg.runes,
			RunStart:  0,
			RunEnd:    len(seg.runes),
			Direction: dir,
			Face:      face,
			Size:      f.ppem,
			Script:    detectScript(seg.runes),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			adv := fixedToFloat(g.Advance)
			run.Glyphs = append(run.Glyphs, Glyph{
				ID:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
				X:       x + fixedToFloat(g.XOffset),
				Y:       -fixedToFloat(g.YOffset),
				Advance: adv,
			})
			x += adv
		}
	}
	run.Advance = x
	return run
}

// visualSegments splits s into direction runs in visual order.
// If the bidi algorithm rejects the input the whole string is treated as
// one left-to-right run.
func visualSegments(s string) []segment {
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []segment{{runes: []rune(s)}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []segment{{runes: []rune(s)}}
	}

	segs := make([]segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		segs = append(segs, segment{
			runes: []rune(r.String()),
			rtl:   r.Direction() == bidi.RightToLeft,
		})
	}
	return segs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
