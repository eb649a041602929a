package decor

import (
	"errors"
	"fmt"
)

// Sentinel errors for decor package.
var (
	// ErrAllocation is returned when a template pixmap or a scratch buffer
	// could not be allocated.
	ErrAllocation = errors.New("decor: allocation failed")

	// ErrDrawing is returned when the canvas reports a failure while
	// building a template or rendering a frame.
	ErrDrawing = errors.New("decor: drawing failed")

	// ErrClosed is returned when a closed Theme is used.
	ErrClosed = errors.New("decor: theme closed")
)

// TemplateError reports a failure building one of the theme templates.
// Err wraps ErrAllocation or ErrDrawing together with the cause.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("decor: %s template: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
