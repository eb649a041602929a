package decor

import (
	"fmt"

	"github.com/gogpu/decor/internal/filter"
	"github.com/gogpu/decor/surface"
	"github.com/gogpu/decor/text"
)

// Layout constants of the theme, in pixels.
const (
	// Margin is the space around the frame reserved for the shadow.
	Margin = 32
	// BorderWidth is the thickness of the frame's sides and bottom.
	BorderWidth = 6
	// TitlebarHeight is the thickness of the frame's top when titled.
	TitlebarHeight = 27
	// FrameRadius is the corner radius of frames and shadow.
	FrameRadius = 3

	// TemplateSize is the width and height of every template.
	TemplateSize = 128
	// ShadowMargin is the blur margin of the shadow template and the
	// 9-slice margin it is composited with.
	ShadowMargin = 64
	// ShadowOffset moves the shadow right and down from the window edge.
	ShadowOffset = 2
	// ShadowGrow enlarges the shadow rectangle beyond the window size.
	ShadowGrow = 8
	// ShadowAlpha is the opacity of the shadow color.
	ShadowAlpha = 0.45

	// TitleFontSize is the size of the default title face.
	TitleFontSize = 14
)

// Layout reports the layout constants a Theme renders with.
type Layout struct {
	Margin         int
	BorderWidth    int
	TitlebarHeight int
	FrameRadius    int
	GripSize       int
	TemplateSize   int
}

// DefaultLayout returns the layout constants.
func DefaultLayout() Layout {
	return Layout{
		Margin:         Margin,
		BorderWidth:    BorderWidth,
		TitlebarHeight: TitlebarHeight,
		FrameRadius:    FrameRadius,
		GripSize:       GripSize,
		TemplateSize:   TemplateSize,
	}
}

// Theme renders window frames from three precomputed templates.
//
// A Theme is immutable after NewTheme. RenderFrame and Location may be
// called concurrently with different canvases; Close must not run
// concurrently with them.
type Theme struct {
	shadow   *surface.Pixmap
	active   *surface.Pixmap
	inactive *surface.Pixmap

	titleFace *text.Face
	release   func(*surface.Pixmap)
}

// templateBuilder draws one template into a freshly allocated pixmap.
type templateBuilder struct {
	name  string
	build func(pm *surface.Pixmap, o *options) error
}

var templateBuilders = []templateBuilder{
	{"shadow", buildShadow},
	{"active", buildActiveFrame},
	{"inactive", buildInactiveFrame},
}

// NewTheme builds the shadow, active and inactive templates.
//
// Creation is all or nothing: if any template fails, the ones already
// built are released and the error is a *TemplateError wrapping
// ErrAllocation or ErrDrawing.
func NewTheme(opts ...Option) (*Theme, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	face := o.titleFace
	if face == nil {
		var err error
		face, err = text.DefaultFace(text.WeightBold, TitleFontSize)
		if err != nil {
			return nil, fmt.Errorf("decor: load title face: %w", err)
		}
	}

	var built []*surface.Pixmap
	for _, b := range templateBuilders {
		pm, err := buildTemplate(b, &o)
		if err != nil {
			for _, p := range built {
				o.release(p)
			}
			Logger().Warn("decor: theme creation failed", "template", b.name, "err", err)
			return nil, err
		}
		Logger().Debug("decor: built template", "template", b.name, "size", TemplateSize)
		built = append(built, pm)
	}

	return &Theme{
		shadow:    built[0],
		active:    built[1],
		inactive:  built[2],
		titleFace: face,
		release:   o.release,
	}, nil
}

func buildTemplate(b templateBuilder, o *options) (*surface.Pixmap, error) {
	pm, err := o.alloc(TemplateSize, TemplateSize)
	if err != nil {
		return nil, &TemplateError{Template: b.name, Err: fmt.Errorf("%w: %w", ErrAllocation, err)}
	}
	if pm == nil || pm.Width() != TemplateSize || pm.Height() != TemplateSize {
		if pm != nil {
			o.release(pm)
		}
		return nil, &TemplateError{Template: b.name, Err: fmt.Errorf("%w: allocator returned wrong size", ErrAllocation)}
	}
	if err := b.build(pm, o); err != nil {
		o.release(pm)
		return nil, &TemplateError{Template: b.name, Err: err}
	}
	return pm, nil
}

// buildShadow fills an opaque rounded square inset by a quarter of the
// template and blurs everything within ShadowMargin of the edges.
func buildShadow(pm *surface.Pixmap, o *options) error {
	c := surface.NewContext(pm)
	c.SetRGBA(0, 0, 0, 1)
	RoundedRect(c, 32, 32, 96, 96, FrameRadius)
	if err := c.Fill(); err != nil {
		return fmt.Errorf("%w: %w", ErrDrawing, err)
	}
	var scratch *surface.Pixmap
	alloc := func(w, h int) (*surface.Pixmap, error) {
		p, err := o.alloc(w, h)
		scratch = p
		return p, err
	}
	err := filter.BoxBlurWith(pm, ShadowMargin, filter.ShadowKernel(), alloc)
	if scratch != nil {
		o.release(scratch)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return nil
}

// buildActiveFrame fills the whole template with a rounded rectangle
// shaded from white to light gray in the top fifth.
func buildActiveFrame(pm *surface.Pixmap, _ *options) error {
	return fillFrame(pm, frameBrush(FrameActive))
}

func buildInactiveFrame(pm *surface.Pixmap, _ *options) error {
	return fillFrame(pm, frameBrush(0))
}

// frameBrush returns the background source of a frame.
func frameBrush(flags FrameFlags) surface.Brush {
	if flags&FrameActive != 0 {
		return surface.NewLinearGradientBrush(16, 16, 16, 112).
			AddColorStop(0, 1, 1, 1).
			AddColorStop(0.2, 0.8, 0.8, 0.8)
	}
	return surface.NewSolidBrush(0.75, 0.75, 0.75, 1)
}

func fillFrame(pm *surface.Pixmap, b surface.Brush) error {
	c := surface.NewContext(pm)
	c.SetBrush(b)
	RoundedRect(c, 0, 0, TemplateSize, TemplateSize, FrameRadius)
	if err := c.Fill(); err != nil {
		return fmt.Errorf("%w: %w", ErrDrawing, err)
	}
	return nil
}

// Close releases the templates. Using the theme afterwards returns
// ErrClosed.
func (t *Theme) Close() error {
	if t.closed() {
		return ErrClosed
	}
	for _, pm := range []*surface.Pixmap{t.active, t.inactive, t.shadow} {
		t.release(pm)
	}
	t.shadow, t.active, t.inactive = nil, nil, nil
	return nil
}

func (t *Theme) closed() bool {
	return t.shadow == nil
}

// Shadow returns a copy of the shadow template, or nil after Close.
func (t *Theme) Shadow() *surface.Pixmap {
	if t.closed() {
		return nil
	}
	return t.shadow.Clone()
}

// Template returns a copy of the frame template selected by flags, or nil
// after Close.
func (t *Theme) Template(flags FrameFlags) *surface.Pixmap {
	if t.closed() {
		return nil
	}
	return t.frameTemplate(flags).Clone()
}

func (t *Theme) frameTemplate(flags FrameFlags) *surface.Pixmap {
	if flags&FrameActive != 0 {
		return t.active
	}
	return t.inactive
}

// TitleFace returns the face titles are drawn with.
func (t *Theme) TitleFace() *text.Face {
	return t.titleFace
}

// Layout returns the layout constants.
func (t *Theme) Layout() Layout {
	return DefaultLayout()
}

// Location classifies (x, y) in a frame of the given outer size.
// Maximized frames have no margin; the titlebar band is BorderWidth high
// when flags include FrameNoTitle and TitlebarHeight otherwise.
func (t *Theme) Location(x, y, width, height int, flags FrameFlags) Location {
	margin := Margin
	if flags&FrameMaximized != 0 {
		margin = 0
	}
	topMargin := TitlebarHeight
	if flags&FrameNoTitle != 0 {
		topMargin = BorderWidth
	}
	return HitTest(x, y, width, height, margin, topMargin)
}
