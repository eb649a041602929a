package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/decor/internal/cache"
)

// runCacheSize is the number of shaped strings each Face keeps.
const runCacheSize = 64

// Weight selects between the regular and bold variant of a family.
type Weight uint8

const (
	// WeightNormal is the regular weight.
	WeightNormal Weight = iota
	// WeightBold is the bold weight.
	WeightBold
)

// String returns the weight name.
func (w Weight) String() string {
	switch w {
	case WeightNormal:
		return "Normal"
	case WeightBold:
		return "Bold"
	default:
		return "Unknown"
	}
}

// FontSource is a parsed font. It is immutable and safe for concurrent use;
// create one per font file and derive faces from it.
type FontSource struct {
	name   string
	sfnt   *sfnt.Font
	shaper *gotext.Font
}

// NewFontSource parses TrueType or OpenType font data.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	// go-text keeps its own tables for shaping; ParseTTF returns a Face
	// whose embedded Font is the read-only, shareable part.
	gt, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		name = ""
	}

	return &FontSource{
		name:   name,
		sfnt:   f,
		shaper: gt.Font,
	}, nil
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// Face returns the source at the given pixel size.
func (s *FontSource) Face(size float64) (*Face, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	// DPI 72 makes points equal pixels, matching how toolkits specify
	// title font sizes.
	xf, err := opentype.NewFace(s.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	m := xf.Metrics()
	_ = xf.Close()

	return &Face{
		source: s,
		size:   size,
		ppem:   fixed.Int26_6(math.Round(size * 64)),
		runs:   cache.New[string, Run](runCacheSize),
		metrics: Metrics{
			Ascent:  fixedToFloat(m.Ascent),
			Descent: fixedToFloat(m.Descent),
			Height:  fixedToFloat(m.Height),
		},
	}, nil
}

// Metrics holds the vertical metrics of a face in pixels.
// Descent is positive below the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Face is a FontSource at a particular size. It is immutable and safe for
// concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	ppem    fixed.Int26_6
	metrics Metrics

	runs *cache.Cache[string, Run]
}

// Source returns the font the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face size in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics {
	return f.metrics
}

var (
	goRegular = sync.OnceValues(func() (*FontSource, error) {
		return NewFontSource(goregular.TTF)
	})
	goBold = sync.OnceValues(func() (*FontSource, error) {
		return NewFontSource(gobold.TTF)
	})
)

// DefaultSource returns the embedded Go font of the given weight.
// The source is parsed once and shared.
func DefaultSource(w Weight) (*FontSource, error) {
	if w == WeightBold {
		return goBold()
	}
	return goRegular()
}

// DefaultFace returns the embedded Go font of the given weight at size.
func DefaultFace(w Weight, size float64) (*Face, error) {
	src, err := DefaultSource(w)
	if err != nil {
		return nil, err
	}
	return src.Face(size)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
