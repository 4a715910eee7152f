// Package texture provides image decoding and sample conversion for map assets.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder registration
	"path"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// ErrUnsupportedFormat is returned for image encodings the decoders cannot read.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Extensions lists the map file extensions Decode understands, in lookup order.
var Extensions = []string{".png", ".bmp", ".tga"}

// Decode decodes image bytes. TGA has no magic number, so it is selected by the
// file name extension; everything else is sniffed by the registered decoders.
func Decode(name string, data []byte) (image.Image, error) {
	if strings.EqualFold(path.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
		}
		return nil, err
	}
	return img, nil
}

// Grayscale returns the image as row-major 8-bit luminance samples.
func Grayscale(img image.Image) (width, height int, samples []uint8) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	samples = make([]uint8, width*height)

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			row := g.Pix[y*g.Stride : y*g.Stride+width]
			copy(samples[y*width:], row)
		}
		return width, height, samples
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			samples[y*width+x] = c.Y
		}
	}
	return width, height, samples
}

// PackedRGB returns the image as row-major 0xRRGGBB samples. Alpha is dropped.
func PackedRGB(img image.Image) (width, height int, samples []uint32) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	samples = make([]uint32, width*height)

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				i := y*rgba.Stride + x*4
				samples[y*width+x] = Pack(rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2])
			}
		}
		return width, height, samples
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r16, g16, b16, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			samples[y*width+x] = Pack(uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))
		}
	}
	return width, height, samples
}

// Pack packs 8-bit channels into 0xRRGGBB.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
