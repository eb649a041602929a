// Package recording provides a canvas that records drawing operations.
//
// A Recorder accepts the same calls as a software drawing context but
// stores them as typed commands instead of rasterizing. The finished
// Recording can be inspected, for example to check which clip rectangles a
// frame renderer set, and replayed onto any Target, including a
// *surface.Context.
//
// Design follows Cairo's approach of typed command structs for
// inspectability and debuggability.
//
// # Resources
//
// Brushes, patterns and font faces are stored in a ResourcePool and
// referenced by typed handles (BrushRef, PatternRef, FontRef). Patterns are
// copied when recorded, so changing a pattern's matrix afterwards does not
// alter the recording.
//
// # Example
//
//	rec := recording.NewRecorder(400, 300)
//	if err := theme.RenderFrame(rec, 400, 300, "", decor.FrameActive); err != nil {
//		return err
//	}
//	r := rec.FinishRecording()
//
//	pm, _ := surface.NewPixmap(400, 300)
//	err := r.Render(pm)
package recording
