package decor

import "fmt"

// RenderFrame draws the decoration of a width×height window onto c.
//
// The canvas is cleared first. Unless the frame is maximized, a shadow of
// ShadowAlpha black is composited around it and the frame is inset by
// Margin. The border is 9-sliced from the active or inactive template with
// a TitlebarHeight top when title is non-empty and a BorderWidth top
// otherwise. A non-empty title is centered in the titlebar, clipped to it;
// active frames draw it black over a one pixel white offset, inactive ones
// in dark gray.
//
// Canvas failures are returned wrapped in ErrDrawing. The templates are
// never modified.
func (t *Theme) RenderFrame(c Canvas, width, height int, title string, flags FrameFlags) error {
	if t.closed() {
		return ErrClosed
	}

	c.ResetClip()
	c.Clear()

	margin := 0
	if flags&FrameMaximized == 0 {
		c.SetRGBA(0, 0, 0, ShadowAlpha)
		err := TileMask(c, t.shadow,
			ShadowOffset, ShadowOffset, width+ShadowGrow, height+ShadowGrow,
			ShadowMargin, ShadowMargin)
		if err != nil {
			return fmt.Errorf("%w: shadow: %w", ErrDrawing, err)
		}
		margin = Margin
	}

	topMargin := BorderWidth
	if title != "" {
		topMargin = TitlebarHeight
	}

	err := TileSource(c, t.frameTemplate(flags),
		margin, margin, width-2*margin, height-2*margin,
		BorderWidth, topMargin)
	if err != nil {
		return fmt.Errorf("%w: border: %w", ErrDrawing, err)
	}

	if title == "" {
		return nil
	}
	if err := t.renderTitle(c, width, margin, title, flags); err != nil {
		return fmt.Errorf("%w: title: %w", ErrDrawing, err)
	}
	return nil
}

func (t *Theme) renderTitle(c Canvas, width, margin int, title string, flags FrameFlags) error {
	c.ClipRect(
		float64(margin+BorderWidth), float64(margin),
		float64(width-2*(margin+BorderWidth)), float64(TitlebarHeight-BorderWidth),
	)
	defer c.ResetClip()

	c.SetFontFace(t.titleFace)
	ext := c.TextExtents(title)
	fe := c.FontExtents()
	x := int((float64(width) - ext.Width) / 2)
	y := int(float64(margin) + (TitlebarHeight-fe.Ascent-fe.Descent)/2 + fe.Ascent)

	Logger().Debug("decor: title", "text", title, "x", x, "y", y, "width", ext.Width)

	if flags&FrameActive != 0 {
		c.SetRGBA(1, 1, 1, 1)
		if err := c.ShowText(title, float64(x+1), float64(y+1)); err != nil {
			return err
		}
		c.SetRGBA(0, 0, 0, 1)
		return c.ShowText(title, float64(x), float64(y))
	}
	c.SetRGBA(0.4, 0.4, 0.4, 1)
	return c.ShowText(title, float64(x), float64(y))
}
