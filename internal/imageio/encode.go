package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// CompressionLevel mirrors png.CompressionLevel without exposing the
// image/png import to callers that only carry a Compress value.
type CompressionLevel int

const (
	DefaultCompression CompressionLevel = iota
	NoCompression
	BestSpeed
	BestCompression
)

// EncodePNG writes pix (either RGBA8 or RGB8, chosen by opaque) as a
// PNG, honoring the requested compression level. pix is always straight
// (non-premultiplied) alpha, matching Sprite.Pix and AtlasImage.Pix; it
// is wrapped as *image.NRGBA rather than *image.RGBA so png.Encoder
// writes the bytes verbatim instead of un-premultiplying them.
func EncodePNG(w io.Writer, width, height int, pix []byte, opaque bool, level CompressionLevel) error {
	enc := &png.Encoder{CompressionLevel: toPNGLevel(level)}

	if opaque {
		return enc.Encode(w, &rgbImage{w: width, h: height, pix: pix})
	}
	img := &image.NRGBA{Pix: pix, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	return enc.Encode(w, img)
}

func toPNGLevel(l CompressionLevel) png.CompressionLevel {
	switch l {
	case NoCompression:
		return png.NoCompression
	case BestSpeed:
		return png.BestSpeed
	case BestCompression:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

// rgbImage adapts a tightly-packed 3-byte-per-pixel buffer to
// image.Image, for encoding opaque flattened atlases without padding
// them back out to RGBA8 first.
type rgbImage struct {
	w, h int
	pix  []byte
}

func (im *rgbImage) ColorModel() color.Model { return color.RGBAModel }
func (im *rgbImage) Bounds() image.Rectangle { return image.Rect(0, 0, im.w, im.h) }
func (im *rgbImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= im.w || y >= im.h {
		return color.RGBA{}
	}
	i := (y*im.w + x) * 3
	return color.RGBA{R: im.pix[i], G: im.pix[i+1], B: im.pix[i+2], A: 255}
}
