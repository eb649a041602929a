// Package decor renders client-side window decorations into a 2D canvas.
//
// # Overview
//
// A Theme holds three 128×128 templates built once at startup: a blurred
// drop shadow and the active and inactive frame textures. RenderFrame
// stretches those templates around a window of any size with 9-slice
// compositing: the four corners are copied unscaled and the four edge
// strips are stretched, leaving the client area untouched. Location maps a
// pointer position to the frame region under it.
//
// # Quick Start
//
//	theme, err := decor.NewTheme()
//	if err != nil {
//		return err
//	}
//	defer theme.Close()
//
//	pm, _ := surface.NewPixmap(400, 300)
//	c := surface.NewContext(pm)
//	err = theme.RenderFrame(c, 400, 300, "Message", decor.FrameActive)
//
//	switch theme.Location(px, py, 400, 300, decor.FrameActive) {
//	case decor.LocationTitlebar:
//		// start a move
//	case decor.LocationResizingBottomRight:
//		// start a resize
//	}
//
// # Canvas
//
// Rendering goes through the Canvas interface, which *surface.Context
// implements for CPU rendering into a Pixmap. The recording package
// provides a Canvas that captures commands for inspection and playback.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive debug output
// about template construction.
package decor
