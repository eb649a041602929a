package decor

import (
	"github.com/gogpu/decor/surface"
	"github.com/gogpu/decor/text"
)

// Allocator returns a cleared pixmap of the given size. Themes allocate
// their templates and the blur scratch buffer through it.
type Allocator func(width, height int) (*surface.Pixmap, error)

// Option configures a Theme during creation.
//
// Example:
//
//	// Templates in caller-managed memory
//	theme, err := decor.NewTheme(decor.WithAllocator(pool.Get), decor.WithRelease(pool.Put))
type Option func(*options)

type options struct {
	alloc     Allocator
	release   func(*surface.Pixmap)
	titleFace *text.Face
}

func defaultOptions() options {
	return options{
		alloc:   surface.NewPixmap,
		release: func(*surface.Pixmap) {},
	}
}

// WithAllocator sets the allocator for template and scratch pixmaps.
// A nil allocator restores the default, surface.NewPixmap.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = surface.NewPixmap
		}
		o.alloc = a
	}
}

// WithRelease sets a function called for every pixmap the theme gives
// up: the blur scratch buffer once the shadow is built, the templates on
// Close, and partially built templates when NewTheme fails.
func WithRelease(fn func(*surface.Pixmap)) Option {
	return func(o *options) {
		if fn == nil {
			fn = func(*surface.Pixmap) {}
		}
		o.release = fn
	}
}

// WithTitleFace sets the face used for window titles.
// The default is Go Bold at 14 pixels.
func WithTitleFace(f *text.Face) Option {
	return func(o *options) {
		o.titleFace = f
	}
}
