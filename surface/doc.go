// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides a small CPU drawing context over raw ARGB32
// pixel buffers.
//
// Pixmap is the buffer type: premultiplied ARGB32 pixels stored as
// little-endian 32-bit words with an explicit row stride, the layout used by
// wl_shm ARGB8888 buffers and cairo image surfaces. A Pixmap can wrap
// memory owned by someone else, such as a mapped shared-memory pool.
//
// Context draws into a Pixmap. It follows cairo's model closely enough
// for window decorations:
//
//   - paths built from lines, Béziers, arcs and rectangles
//   - Fill, Paint and Mask, all composited with the OVER operator
//   - a single replaceable clip rectangle
//   - brushes: solid colors, linear gradients and image Patterns with an
//     affine pattern matrix and nearest-neighbor filtering
//   - text drawn from text.Face outlines
//
// Paths are turned into coverage with golang.org/x/image/vector.
//
// # Example
//
//	pm, err := surface.NewPixmap(128, 128)
//	if err != nil {
//	    return err
//	}
//	dc := surface.NewContext(pm)
//	dc.SetRGBA(0, 0, 0, 1)
//	dc.DrawRectangle(32, 32, 64, 64)
//	if err := dc.Fill(); err != nil {
//	    return err
//	}
//
// Contexts are NOT safe for concurrent use.
package surface
