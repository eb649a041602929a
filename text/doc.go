// Package text provides the fonts used to draw window titles.
//
// The pipeline is split the same way as most text stacks:
//
//   - FontSource: heavyweight parsed font, shared across faces
//   - Face: a FontSource at a pixel size, with metrics
//   - Run: a shaped, visually ordered sequence of positioned glyphs
//
// Fonts are parsed twice from the same bytes: golang.org/x/image/font/sfnt
// supplies metrics, ink bounds and glyph outlines, and
// github.com/go-text/typesetting supplies HarfBuzz shaping (kerning,
// ligatures, right-to-left runs). Bidirectional text is split into visual
// runs with golang.org/x/text/unicode/bidi before shaping.
//
// # Example
//
//	face, err := text.DefaultFace(text.WeightBold, 14)
//	if err != nil {
//	    return err
//	}
//	run := face.Shape("Message")
//	ext := face.Extents(run)
//	_ = face.AppendOutline(path, run, x, y)
package text
