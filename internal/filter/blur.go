package filter

import (
	"fmt"

	"github.com/gogpu/decor/surface"
)

// Allocator allocates a cleared pixmap. It is used for the scratch buffer
// between the two blur passes.
type Allocator func(width, height int) (*surface.Pixmap, error)

// BoxBlur blurs the pixels of pm within margin of an edge with the shadow
// kernel, in place.
//
// Taps that fall outside the pixmap are skipped while the divisor stays
// the full kernel sum, so pixels near the outer edge come out darker than
// their neighborhood.
func BoxBlur(pm *surface.Pixmap, margin int) error {
	return BoxBlurWith(pm, margin, ShadowKernel(), surface.NewPixmap)
}

// BoxBlurWith is BoxBlur with an explicit kernel and scratch allocator.
// If the scratch buffer cannot be allocated the error is returned and pm is
// left unchanged.
func BoxBlurWith(pm *surface.Pixmap, margin int, k Kernel, alloc Allocator) error {
	if pm == nil {
		return ErrNilPixmap
	}
	if k.Len() == 0 || k.Sum() == 0 {
		return ErrEmptyKernel
	}

	scratch, err := alloc(pm.Width(), pm.Height())
	if err != nil {
		return fmt.Errorf("filter: allocate scratch: %w", err)
	}
	if scratch == nil {
		return fmt.Errorf("filter: allocate scratch: %w", ErrNilPixmap)
	}
	if scratch.Width() != pm.Width() || scratch.Height() != pm.Height() {
		return fmt.Errorf("filter: scratch is %dx%d, want %dx%d: %w",
			scratch.Width(), scratch.Height(), pm.Width(), pm.Height(), surface.ErrInvalidSize)
	}

	blurRows(scratch, pm, margin, k)
	blurColumns(pm, scratch, margin, k)
	return nil
}

// blurRows convolves src horizontally into dst. Column j is copied when
// margin < j < width-margin.
func blurRows(dst, src *surface.Pixmap, margin int, k Kernel) {
	w, h := src.Width(), src.Height()
	half := k.Half()
	sd, dd := src.Data(), dst.Data()

	for i := 0; i < h; i++ {
		srow := sd[src.PixOffset(0, i):src.PixOffset(w, i)]
		drow := dd[dst.PixOffset(0, i):dst.PixOffset(w, i)]

		for j := 0; j < w; j++ {
			out := drow[j*surface.BytesPerPixel : (j+1)*surface.BytesPerPixel]
			if margin < j && j < w-margin {
				copy(out, srow[j*surface.BytesPerPixel:])
				continue
			}

			var acc [surface.BytesPerPixel]uint32
			for t, wt := range k.weights {
				x := j - half + t
				if x < 0 || x >= w {
					continue
				}
				accumulate(&acc, srow[x*surface.BytesPerPixel:], wt)
			}
			store(out, &acc, k.sum)
		}
	}
}

// blurColumns convolves src vertically into dst. Row i is copied when
// margin <= i < height-margin.
func blurColumns(dst, src *surface.Pixmap, margin int, k Kernel) {
	w, h := src.Width(), src.Height()
	half := k.Half()
	sd, dd := src.Data(), dst.Data()
	rowBytes := w * surface.BytesPerPixel

	for i := 0; i < h; i++ {
		drow := dd[dst.PixOffset(0, i) : dst.PixOffset(0, i)+rowBytes]
		if margin <= i && i < h-margin {
			copy(drow, sd[src.PixOffset(0, i):])
			continue
		}

		for j := 0; j < w; j++ {
			var acc [surface.BytesPerPixel]uint32
			for t, wt := range k.weights {
				y := i - half + t
				if y < 0 || y >= h {
					continue
				}
				accumulate(&acc, sd[src.PixOffset(j, y):], wt)
			}
			store(drow[j*surface.BytesPerPixel:], &acc, k.sum)
		}
	}
}

// accumulate adds the four channel bytes of px, scaled by wt, to acc.
func accumulate(acc *[surface.BytesPerPixel]uint32, px []byte, wt uint32) {
	acc[0] += uint32(px[0]) * wt
	acc[1] += uint32(px[1]) * wt
	acc[2] += uint32(px[2]) * wt
	acc[3] += uint32(px[3]) * wt
}

func store(out []byte, acc *[surface.BytesPerPixel]uint32, sum uint32) {
	out[0] = byte(acc[0] / sum)
	out[1] = byte(acc[1] / sum)
	out[2] = byte(acc[2] / sum)
	out[3] = byte(acc[3] / sum)
}
