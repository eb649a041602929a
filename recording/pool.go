package recording

import (
	"github.com/gogpu/decor/surface"
	"github.com/gogpu/decor/text"
)

// ResourcePool stores resources referenced by recording commands.
// Resources are stored in slices indexed by their reference types.
//
// Patterns are stored with a private copy of their pixmap, so a recording
// stays valid after the source pixmap is modified or released. Each
// source pixmap is copied once per pool, when a pattern over it is first
// added; patterns added later over the same pixmap share that copy.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	brushes  []surface.Brush
	patterns []*surface.Pattern
	fonts    []*text.Face

	snapshots map[*surface.Pixmap]*surface.Pixmap
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		brushes:  make([]surface.Brush, 0, 16),
		patterns: make([]*surface.Pattern, 0, 16),
		fonts:    make([]*text.Face, 0, 2),

		snapshots: make(map[*surface.Pixmap]*surface.Pixmap),
	}
}

// AddBrush adds a brush and returns its reference. Patterns used as
// brushes are copied; other brushes are stored as given.
func (p *ResourcePool) AddBrush(b surface.Brush) BrushRef {
	if pat, ok := b.(*surface.Pattern); ok {
		b = p.clonePattern(pat)
	}
	p.brushes = append(p.brushes, b)
	return BrushRef(uint32(len(p.brushes) - 1)) // #nosec G115 -- bounded by memory
}

// Brush returns the brush for ref, or nil if ref is out of range.
func (p *ResourcePool) Brush(ref BrushRef) surface.Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}

// AddPattern adds a copy of pat and returns its reference.
func (p *ResourcePool) AddPattern(pat *surface.Pattern) PatternRef {
	p.patterns = append(p.patterns, p.clonePattern(pat))
	return PatternRef(uint32(len(p.patterns) - 1)) // #nosec G115 -- bounded by memory
}

// Pattern returns the pattern for ref, or nil if ref is out of range.
func (p *ResourcePool) Pattern(ref PatternRef) *surface.Pattern {
	if int(ref) >= len(p.patterns) {
		return nil
	}
	return p.patterns[ref]
}

// PatternCount returns the number of patterns in the pool.
func (p *ResourcePool) PatternCount() int {
	return len(p.patterns)
}

// AddFont adds a face and returns its reference. A face already in the
// pool is not added twice.
func (p *ResourcePool) AddFont(f *text.Face) FontRef {
	for i, have := range p.fonts {
		if have == f {
			return FontRef(uint32(i)) // #nosec G115 -- bounded by memory
		}
	}
	p.fonts = append(p.fonts, f)
	return FontRef(uint32(len(p.fonts) - 1)) // #nosec G115 -- bounded by memory
}

// Font returns the face for ref, or nil if ref is out of range.
func (p *ResourcePool) Font(ref FontRef) *text.Face {
	if int(ref) >= len(p.fonts) {
		return nil
	}
	return p.fonts[ref]
}

// FontCount returns the number of faces in the pool.
func (p *ResourcePool) FontCount() int {
	return len(p.fonts)
}

func (p *ResourcePool) clonePattern(pat *surface.Pattern) *surface.Pattern {
	if pat == nil {
		return nil
	}
	c := surface.NewPattern(p.snapshot(pat.Pixmap()))
	c.SetMatrix(pat.Matrix())
	c.SetFilter(pat.Filter())
	c.SetExtend(pat.Extend())
	return c
}

// snapshot returns the pool's copy of pm, making it on first use.
func (p *ResourcePool) snapshot(pm *surface.Pixmap) *surface.Pixmap {
	if pm == nil {
		return nil
	}
	if c, ok := p.snapshots[pm]; ok {
		return c
	}
	c := pm.Clone()
	p.snapshots[pm] = c
	return c
}
