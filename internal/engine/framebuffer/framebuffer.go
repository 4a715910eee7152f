// Package framebuffer provides the CPU pixel buffer the rasterizer paints into.
package framebuffer

import (
	"image"
	"image/color"
)

// Pixel is a packed RGB565 color.
type Pixel uint16

// RGB565 converts a packed 0xRRGGBB color, scaling each channel to its field width.
func RGB565(c uint32) Pixel {
	r := uint16(float64((c>>16)&0xFF) / 255.0 * 0x1F)
	g := uint16(float64((c>>8)&0xFF) / 255.0 * 0x3F)
	b := uint16(float64(c&0xFF) / 255.0 * 0x1F)
	return Pixel(r<<11 | g<<5 | b)
}

// RGBA expands the pixel to 8 bits per channel.
func (p Pixel) RGBA() color.RGBA {
	r := uint8(p >> 11 & 0x1F)
	g := uint8(p >> 5 & 0x3F)
	b := uint8(p & 0x1F)
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 255,
	}
}

// FrameBuffer is a row-major width x height grid of pixels.
type FrameBuffer struct {
	width  int
	height int
	pix    []Pixel
}

// New creates a cleared frame buffer with the specified dimensions.
func New(width, height int) *FrameBuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Size returns the frame buffer dimensions.
func (fb *FrameBuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Width returns the number of columns.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the number of rows.
func (fb *FrameBuffer) Height() int { return fb.height }

// Pix exposes the backing slice for texture upload.
func (fb *FrameBuffer) Pix() []Pixel { return fb.pix }

// Clear fills every pixel with p.
func (fb *FrameBuffer) Clear(p Pixel) {
	for i := range fb.pix {
		fb.pix[i] = p
	}
}

// At returns the pixel at (x, y).
func (fb *FrameBuffer) At(x, y int) Pixel {
	return fb.pix[y*fb.width+x]
}

// Set writes the pixel at (x, y).
func (fb *FrameBuffer) Set(x, y int, p Pixel) {
	fb.pix[y*fb.width+x] = p
}

// FillColumn paints rows [top, bottom) of column x. Rows outside the buffer are skipped.
func (fb *FrameBuffer) FillColumn(x, top, bottom int, p Pixel) {
	if x < 0 || x >= fb.width {
		return
	}
	top = max(top, 0)
	bottom = min(bottom, fb.height)
	for y := top; y < bottom; y++ {
		fb.pix[y*fb.width+x] = p
	}
}

// Image copies the frame into an RGBA image.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetRGBA(x, y, fb.pix[y*fb.width+x].RGBA())
		}
	}
	return img
}
