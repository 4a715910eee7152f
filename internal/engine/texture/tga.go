package texture

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
	TGATypeGray         = 3  // Uncompressed grayscale
)

const tgaHeaderSize = 18

// DecodeTGA decodes a TGA image file.
// Supports uncompressed and RLE true-color (24/32 bpp) and uncompressed 8-bit grayscale.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA: %w", ErrUnsupportedFormat)
	}
	switch {
	case imageType == TGATypeGray && bpp == 8:
	case (imageType == TGATypeUncompressed || imageType == TGATypeRLE) && (bpp == 24 || bpp == 32):
	default:
		return nil, fmt.Errorf("TGA type %d at %d bpp: %w", imageType, bpp, ErrUnsupportedFormat)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	r := &tgaReader{
		pix:         data[offset:],
		bytesPerPix: bpp / 8,
		width:       width,
		height:      height,
		topToBottom: topToBottom,
	}

	if imageType == TGATypeGray {
		img := image.NewGray(image.Rect(0, 0, width, height))
		if len(r.pix) < width*height {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for i := 0; i < width*height; i++ {
			x, y := r.dest(i)
			img.SetGray(x, y, color.Gray{Y: r.pix[i]})
		}
		return img, nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if imageType == TGATypeUncompressed {
		if len(r.pix) < width*height*r.bytesPerPix {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for i := 0; i < width*height; i++ {
			x, y := r.dest(i)
			img.SetRGBA(x, y, r.color(i*r.bytesPerPix))
		}
		return img, nil
	}

	r.decodeRLE(img)
	return img, nil
}

type tgaReader struct {
	pix         []byte
	bytesPerPix int
	width       int
	height      int
	topToBottom bool
}

// dest maps the i-th stored pixel to image coordinates.
func (r *tgaReader) dest(i int) (int, int) {
	x, y := i%r.width, i/r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	return x, y
}

// color reads a BGR(A) pixel at byte offset off.
func (r *tgaReader) color(off int) color.RGBA {
	c := color.RGBA{B: r.pix[off], G: r.pix[off+1], R: r.pix[off+2], A: 255}
	if r.bytesPerPix == 4 {
		c.A = r.pix[off+3]
	}
	return c
}

// decodeRLE fills img from run-length packets. Truncated input leaves the rest transparent.
func (r *tgaReader) decodeRLE(img *image.RGBA) {
	total := r.width * r.height
	pixelIdx, dataIdx := 0, 0

	for pixelIdx < total && dataIdx < len(r.pix) {
		packet := r.pix[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if dataIdx+r.bytesPerPix > len(r.pix) {
				return
			}
			c := r.color(dataIdx)
			dataIdx += r.bytesPerPix
			for i := 0; i < count && pixelIdx < total; i++ {
				x, y := r.dest(pixelIdx)
				img.SetRGBA(x, y, c)
				pixelIdx++
			}
			continue
		}

		for i := 0; i < count && pixelIdx < total; i++ {
			if dataIdx+r.bytesPerPix > len(r.pix) {
				return
			}
			x, y := r.dest(pixelIdx)
			img.SetRGBA(x, y, r.color(dataIdx))
			dataIdx += r.bytesPerPix
			pixelIdx++
		}
	}
}
