// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/decor/text"
)

// SetFontFace sets the face used by text operations.
func (c *Context) SetFontFace(face *text.Face) {
	c.face = face
}

// FontFace returns the current face, or nil.
func (c *Context) FontFace() *text.Face {
	return c.face
}

// FontExtents returns the metrics of the current face.
// Without a face all metrics are zero.
func (c *Context) FontExtents() text.Metrics {
	if c.face == nil {
		return text.Metrics{}
	}
	return c.face.Metrics()
}

// TextExtents measures s in the current face.
// Without a face the extents are zero.
func (c *Context) TextExtents(s string) text.Extents {
	if c.face == nil {
		return text.Extents{}
	}
	return c.face.Measure(s)
}

// ShowText fills the glyphs of s with the brush, the baseline origin of the
// first glyph at (x, y). The current path is left untouched.
func (c *Context) ShowText(s string, x, y float64) error {
	if c.face == nil {
		return ErrNoFont
	}
	if s == "" {
		return nil
	}

	c.textPath.Reset()
	if err := c.face.AppendOutline(&c.textPath, c.face.Shape(s), x, y); err != nil {
		return fmt.Errorf("surface: show text: %w", err)
	}
	return c.fillPath(&c.textPath)
}
