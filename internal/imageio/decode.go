// Package imageio decodes and encodes the raster formats Bento accepts
// as sprite input and emits as atlas output.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", nativewebp.Decode, nativewebp.DecodeConfig)
	image.RegisterFormat("tga", "", tga.Decode, tga.DecodeConfig)
}

// SupportedExt reports whether ext (including the leading dot, any
// case) names a format this package can decode.
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".webp", ".tga":
		return true
	default:
		return false
	}
}

// Decode reads an image from r and converts it to straight-alpha RGBA8,
// regardless of the source format or color model.
func Decode(r io.Reader) (*image.RGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// PNG and WebP are sniffed here: the tga decoder has no magic bytes,
	// so image.Decode hands it any input if it was registered first.
	var img image.Image
	format := "png"
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		img, err = png.Decode(bytes.NewReader(data))
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		format = "webp"
		img, err = nativewebp.Decode(bytes.NewReader(data))
	default:
		img, format, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode (tried format %q): %w", format, err)
	}

	return toRGBA(img), nil
}

// DecodeFile decodes by path, using the extension only to short-circuit
// unsupported inputs before reading them; the decode itself still
// sniffs the real format.
func DecodeFile(path string, r io.Reader) (*image.RGBA, error) {
	if !SupportedExt(filepath.Ext(path)) {
		return nil, fmt.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
	return Decode(r)
}

// toRGBA converts img into a tightly-packed, zero-origin buffer holding
// straight (non-premultiplied) alpha, matching Sprite.Pix's contract.
// image.RGBA is reused here purely as a byte-buffer shape — the values
// it holds are never premultiplied, unlike the standard library's own
// use of that type.
//
// *image.NRGBA (what png.Decode returns for any non-opaque PNG) is
// already straight alpha, so its Pix is copied verbatim. Every other
// source — including *image.RGBA, whose stdlib convention IS
// premultiplied — goes through color.NRGBAModel, which unpremultiplies
// correctly instead of the naive image/draw fast path that assumes the
// destination is meant to end up premultiplied.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if nrgba, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && nrgba.Stride == w*4 {
		return &image.RGBA{Pix: nrgba.Pix, Stride: nrgba.Stride, Rect: nrgba.Rect}
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = c.A
		}
	}
	return out
}

// decodePNGStrict is used by tests wanting to bypass format sniffing.
func decodePNGStrict(r io.Reader) (*image.RGBA, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return toRGBA(img), nil
}
