package decor

import "github.com/gogpu/decor/surface"

// Edge strips sample an 8-pixel band of the template centered on
// column (or row) 60.
const (
	stretchCenter = 60
	stretchSpan   = 8
)

// cornerMatrix places corner i (bit 0: right, bit 1: bottom) of a
// TemplateSize template at the matching corner of the destination.
func cornerMatrix(i, x, y, width, height int) surface.Matrix {
	fx, fy := i&1, i>>1
	return surface.Translate(
		float64(-x+fx*(TemplateSize-width)),
		float64(-y+fy*(TemplateSize-height)),
	)
}

// cornerRect returns the destination rectangle of corner i.
func cornerRect(i, x, y, width, height, margin, topMargin int) (rx, ry, rw, rh float64) {
	fx, fy := i&1, i>>1
	vmargin := topMargin
	if fy != 0 {
		vmargin = margin
	}
	return float64(x + fx*(width-margin)),
		float64(y + fy*(height-vmargin)),
		float64(margin),
		float64(vmargin)
}

// horizontalStrip maps a destination span of length n onto the template's
// stretch band, centered on x+width/2.
func horizontalStrip(x, y, width int, n float64) surface.Matrix {
	return surface.Translate(stretchCenter, 0).
		PreScale(stretchSpan/n, 1).
		PreTranslate(float64(-x-width/2), float64(-y))
}

// verticalStrip is horizontalStrip for the left edge.
func verticalStrip(x, y, height int, n float64) surface.Matrix {
	return surface.Translate(0, stretchCenter).
		PreScale(1, stretchSpan/n).
		PreTranslate(float64(-x), float64(-y-height/2))
}

func templatePattern(tmpl *surface.Pixmap, m surface.Matrix) *surface.Pattern {
	p := surface.NewPattern(tmpl)
	p.SetFilter(surface.FilterNearest)
	p.SetExtend(surface.ExtendNone)
	p.SetMatrix(m)
	return p
}

// TileMask composites the current brush through the alpha of tmpl,
// 9-sliced over the rectangle (x, y, width, height). Corners are copied
// unscaled into margin×margin cells (margin×topMargin at the top); the
// edges stretch the template's center band between them. The interior of
// the rectangle is not touched.
//
// The clip is replaced for every piece and reset on return. The first
// canvas error stops the composite and is returned.
func TileMask(c Canvas, tmpl *surface.Pixmap, x, y, width, height, margin, topMargin int) error {
	defer c.ResetClip()

	mask := func(m surface.Matrix, rx, ry, rw, rh float64) error {
		c.ResetClip()
		c.ClipRect(rx, ry, rw, rh)
		return c.Mask(templatePattern(tmpl, m))
	}

	for i := 0; i < 4; i++ {
		rx, ry, rw, rh := cornerRect(i, x, y, width, height, margin, topMargin)
		if err := mask(cornerMatrix(i, x, y, width, height), rx, ry, rw, rh); err != nil {
			return err
		}
	}

	if width > 0 && width > 2*margin {
		top := horizontalStrip(x, y, width, float64(width))
		hw := float64(width - 2*margin)
		if err := mask(top, float64(x+margin), float64(y), hw, float64(margin)); err != nil {
			return err
		}
		bottom := top.PreTranslate(0, float64(-height+TemplateSize))
		if err := mask(bottom, float64(x+margin), float64(y+height-margin), hw, float64(margin)); err != nil {
			return err
		}
	}

	if height > 0 && height > 2*margin {
		left := verticalStrip(x, y, height, float64(height))
		vh := float64(height - 2*margin)
		if err := mask(left, float64(x), float64(y+margin), float64(margin), vh); err != nil {
			return err
		}
		right := left.PreTranslate(float64(-width+TemplateSize), 0)
		if err := mask(right, float64(x+width-margin), float64(y+margin), float64(margin), vh); err != nil {
			return err
		}
	}
	return nil
}

// TileSource fills the 9-slice frame of the rectangle (x, y, width,
// height) with the pixels of tmpl. The layout matches TileMask except that
// the top row is topMargin high and the side strips run between the top
// row and the bottom row. The interior is not touched and the clip is not
// used.
//
// The brush is left set to the last template pattern.
func TileSource(c Canvas, tmpl *surface.Pixmap, x, y, width, height, margin, topMargin int) error {
	fill := func(m surface.Matrix, rx, ry, rw, rh float64) error {
		c.SetBrush(templatePattern(tmpl, m))
		c.NewPath()
		c.DrawRectangle(rx, ry, rw, rh)
		return c.Fill()
	}

	for i := 0; i < 4; i++ {
		rx, ry, rw, rh := cornerRect(i, x, y, width, height, margin, topMargin)
		if err := fill(cornerMatrix(i, x, y, width, height), rx, ry, rw, rh); err != nil {
			return err
		}
	}

	if n := width - 2*margin; n > 0 {
		top := horizontalStrip(x, y, width, float64(n))
		if err := fill(top, float64(x+margin), float64(y), float64(n), float64(topMargin)); err != nil {
			return err
		}
		bottom := top.PreTranslate(0, float64(-height+TemplateSize))
		if err := fill(bottom, float64(x+margin), float64(y+height-margin), float64(n), float64(margin)); err != nil {
			return err
		}
	}

	if n := height - margin - topMargin; n > 0 {
		left := verticalStrip(x, y, height, float64(n))
		if err := fill(left, float64(x), float64(y+topMargin), float64(margin), float64(n)); err != nil {
			return err
		}
		right := left.PreTranslate(float64(-width+TemplateSize), 0)
		if err := fill(right, float64(x+width-margin), float64(y+topMargin), float64(margin), float64(n)); err != nil {
			return err
		}
	}
	return nil
}
