// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "errors"

// Sentinel errors for surface package.
var (
	// ErrInvalidSize is returned when a pixmap cannot be allocated or wrapped
	// with the requested dimensions, stride or backing memory.
	ErrInvalidSize = errors.New("surface: invalid pixmap size")

	// ErrNoFont is returned by text operations when no face is set.
	ErrNoFont = errors.New("surface: no font face set")

	// ErrInvalidPath is returned when a path contains non-finite coordinates.
	ErrInvalidPath = errors.New("surface: path has non-finite coordinates")

	// ErrNilPattern is returned by Mask when called without a pattern.
	ErrNilPattern = errors.New("surface: nil pattern")
)
