package filter

import "errors"

var (
	// ErrNilPixmap is returned when the pixmap to blur, or the scratch
	// buffer returned by the allocator, is nil.
	ErrNilPixmap = errors.New("filter: nil pixmap")

	// ErrEmptyKernel is returned when the kernel has no taps or a zero sum.
	ErrEmptyKernel = errors.New("filter: empty kernel")
)
