// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

const (
	// BytesPerPixel is the size of one ARGB32 pixel.
	BytesPerPixel = 4

	// MaxDimension bounds pixmap width and height.
	MaxDimension = 1 << 15
)

// Pixmap is a rectangular buffer of premultiplied ARGB32 pixels.
//
// Each pixel is a little-endian uint32 0xAARRGGBB, so in memory the bytes
// are B, G, R, A. Rows are Stride bytes apart; Stride may exceed Width*4
// and the padding bytes are never read or written by this package.
type Pixmap struct {
	width  int
	height int
	stride int
	data   []byte
}

// StrideForWidth returns the minimal stride for a row of width pixels.
func StrideForWidth(width int) int {
	return width * BytesPerPixel
}

// NewPixmap allocates a cleared pixmap with the minimal stride.
func NewPixmap(width, height int) (*Pixmap, error) {
	return NewPixmapWithStride(width, height, StrideForWidth(width))
}

// NewPixmapWithStride allocates a cleared pixmap with an explicit stride.
func NewPixmapWithStride(width, height, stride int) (*Pixmap, error) {
	if err := checkSize(width, height, stride); err != nil {
		return nil, err
	}
	return &Pixmap{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]byte, stride*height),
	}, nil
}

// NewPixmapFromData wraps caller-owned memory without copying it.
// data must hold at least stride*height bytes.
func NewPixmapFromData(data []byte, width, height, stride int) (*Pixmap, error) {
	if err := checkSize(width, height, stride); err != nil {
		return nil, err
	}
	if len(data) < stride*height {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d stride %d", ErrInvalidSize, len(data), width, height, stride)
	}
	return &Pixmap{
		width:  width,
		height: height,
		stride: stride,
		data:   data[:stride*height],
	}, nil
}

func checkSize(width, height, stride int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	case width > MaxDimension || height > MaxDimension:
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrInvalidSize, width, height, MaxDimension)
	case stride < width*BytesPerPixel || stride%BytesPerPixel != 0:
		return fmt.Errorf("%w: stride %d for width %d", ErrInvalidSize, stride, width)
	}
	return nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes between the starts of adjacent rows.
func (p *Pixmap) Stride() int {
	return p.stride
}

// Data returns the raw pixel bytes, including row padding.
func (p *Pixmap) Data() []byte {
	return p.data
}

// PixOffset returns the index of the first byte of pixel (x, y).
func (p *Pixmap) PixOffset(x, y int) int {
	return y*p.stride + x*BytesPerPixel
}

// ARGB returns pixel (x, y) as a premultiplied 0xAARRGGBB word.
// Pixels outside the pixmap are transparent.
func (p *Pixmap) ARGB(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return binary.LittleEndian.Uint32(p.data[p.PixOffset(x, y):])
}

// SetARGB stores a premultiplied 0xAARRGGBB word at (x, y).
func (p *Pixmap) SetARGB(x, y int, v uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	binary.LittleEndian.PutUint32(p.data[p.PixOffset(x, y):], v)
}

// RGBAAt returns pixel (x, y) as a premultiplied color.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{R: p.data[i+2], G: p.data[i+1], B: p.data[i+0], A: p.data[i+3]}
}

// SetRGBA stores a premultiplied color at (x, y).
func (p *Pixmap) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.PixOffset(x, y)
	p.data[i+0] = c.B
	p.data[i+1] = c.G
	p.data[i+2] = c.R
	p.data[i+3] = c.A
}

// Clear sets every pixel to transparent. Row padding is left alone.
func (p *Pixmap) Clear() {
	for y := 0; y < p.height; y++ {
		row := p.data[y*p.stride : y*p.stride+p.width*BytesPerPixel]
		clear(row)
	}
}

// Clone returns a deep copy with the same stride.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]byte, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, stride: p.stride, data: data}
}

// Equal reports whether p and q have the same size and pixels.
// Strides and padding bytes are not compared.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p.width != q.width || p.height != q.height {
		return false
	}
	n := p.width * BytesPerPixel
	for y := 0; y < p.height; y++ {
		if !bytes.Equal(p.data[y*p.stride:y*p.stride+n], q.data[y*q.stride:y*q.stride+n]) {
			return false
		}
	}
	return true
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
// Pixels are premultiplied, which is what color.RGBA holds.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	xdraw.Draw(img, img.Bounds(), p, image.Point{}, xdraw.Src)
	return img
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
