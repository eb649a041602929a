package recording

import (
	"fmt"

	"github.com/gogpu/decor/surface"
	"github.com/gogpu/decor/text"
)

// Recorder captures drawing operations as commands.
// It accepts the drawing calls of *surface.Context but stores them instead
// of rasterizing. Use FinishRecording to obtain a Recording that can be
// replayed.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	rec.SetRGBA(1, 0, 0, 1)
//	rec.DrawRectangle(10, 10, 100, 50)
//	_ = rec.Fill()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// Current font, for measuring.
	face *text.Face
}

// NewRecorder creates a recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// FinishRecording returns the recorded commands and resets the recorder.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
	r.commands = make([]Command, 0, 64)
	r.resources = NewResourcePool()
	r.face = nil
	return rec
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Clear records a clear of the clip region.
func (r *Recorder) Clear() {
	r.record(ClearCommand{})
}

// SetRGBA records a solid source.
func (r *Recorder) SetRGBA(red, green, blue, alpha float64) {
	r.record(SetRGBACommand{R: red, G: green, B: blue, A: alpha})
}

// SetBrush records a brush source.
func (r *Recorder) SetBrush(b surface.Brush) {
	r.record(SetBrushCommand{Brush: r.resources.AddBrush(b)})
}

// NewPath records discarding the current path.
func (r *Recorder) NewPath() {
	r.record(NewPathCommand{})
}

// MoveTo records the start of a subpath.
func (r *Recorder) MoveTo(x, y float64) {
	r.record(MoveToCommand{X: x, Y: y})
}

// LineTo records a line.
func (r *Recorder) LineTo(x, y float64) {
	r.record(LineToCommand{X: x, Y: y})
}

// DrawArc records an arc.
func (r *Recorder) DrawArc(xc, yc, radius, angle1, angle2 float64) {
	r.record(ArcCommand{XC: xc, YC: yc, Radius: radius, Angle1: angle1, Angle2: angle2})
}

// ClosePath records closing the subpath.
func (r *Recorder) ClosePath() {
	r.record(ClosePathCommand{})
}

// DrawRectangle records a rectangle.
func (r *Recorder) DrawRectangle(x, y, w, h float64) {
	r.record(RectangleCommand{X: x, Y: y, Width: w, Height: h})
}

// Fill records a fill of the current path.
func (r *Recorder) Fill() error {
	r.record(FillCommand{})
	return nil
}

// Mask records compositing through a copy of p.
func (r *Recorder) Mask(p *surface.Pattern) error {
	if p == nil {
		return surface.ErrNilPattern
	}
	r.record(MaskCommand{Pattern: r.resources.AddPattern(p)})
	return nil
}

// ClipRect records replacing the clip.
func (r *Recorder) ClipRect(x, y, w, h float64) {
	r.record(ClipRectCommand{X: x, Y: y, Width: w, Height: h})
}

// ResetClip records removing the clip.
func (r *Recorder) ResetClip() {
	r.record(ResetClipCommand{})
}

// SetFontFace records selecting a face. The face is also used to answer
// FontExtents and TextExtents.
func (r *Recorder) SetFontFace(f *text.Face) {
	r.face = f
	r.record(SetFontFaceCommand{Font: r.resources.AddFont(f)})
}

// FontExtents returns the metrics of the current face, or zero metrics.
func (r *Recorder) FontExtents() text.Metrics {
	if r.face == nil {
		return text.Metrics{}
	}
	return r.face.Metrics()
}

// TextExtents measures s with the current face, or returns zero extents.
func (r *Recorder) TextExtents(s string) text.Extents {
	if r.face == nil {
		return text.Extents{}
	}
	return r.face.Measure(s)
}

// ShowText records drawing s. Without a face it fails like
// surface.Context does.
func (r *Recorder) ShowText(s string, x, y float64) error {
	if r.face == nil {
		return surface.ErrNoFont
	}
	r.record(ShowTextCommand{Text: s, X: x, Y: y})
	return nil
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Target receives replayed commands. *surface.Context and *Recorder
// implement it.
type Target interface {
	Clear()
	SetRGBA(r, g, b, a float64)
	SetBrush(b surface.Brush)
	NewPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawArc(xc, yc, r, angle1, angle2 float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	Fill() error
	Mask(p *surface.Pattern) error
	ClipRect(x, y, w, h float64)
	ResetClip()
	SetFontFace(f *text.Face)
	ShowText(s string, x, y float64) error
}

var (
	_ Target = (*surface.Context)(nil)
	_ Target = (*Recorder)(nil)
)

// Recording is a finished, immutable sequence of commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto target. It stops at the first
// failing command and reports its index.
func (r *Recording) Playback(target Target) error {
	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case ClearCommand:
			target.Clear()
		case SetRGBACommand:
			target.SetRGBA(c.R, c.G, c.B, c.A)
		case SetBrushCommand:
			target.SetBrush(r.resources.Brush(c.Brush))
		case ClipRectCommand:
			target.ClipRect(c.X, c.Y, c.Width, c.Height)
		case ResetClipCommand:
			target.ResetClip()
		case SetFontFaceCommand:
			target.SetFontFace(r.resources.Font(c.Font))
		case NewPathCommand:
			target.NewPath()
		case MoveToCommand:
			target.MoveTo(c.X, c.Y)
		case LineToCommand:
			target.LineTo(c.X, c.Y)
		case ArcCommand:
			target.DrawArc(c.XC, c.YC, c.Radius, c.Angle1, c.Angle2)
		case ClosePathCommand:
			target.ClosePath()
		case RectangleCommand:
			target.DrawRectangle(c.X, c.Y, c.Width, c.Height)
		case FillCommand:
			err = target.Fill()
		case MaskCommand:
			err = target.Mask(r.resources.Pattern(c.Pattern))
		case ShowTextCommand:
			err = target.ShowText(c.Text, c.X, c.Y)
		}
		if err != nil {
			return fmt.Errorf("recording: command %d (%v): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

// Render replays the recording onto a software context drawing into pm.
func (r *Recording) Render(pm *surface.Pixmap) error {
	return r.Playback(surface.NewContext(pm))
}
