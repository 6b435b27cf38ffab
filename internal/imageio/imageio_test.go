package imageio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func solidRGBA(w, h int, r, g, b, a byte) []byte {
	pix := make([]byte, 4*w*h)
	for i := 0; i < w*h; i++ {
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = r, g, b, a
	}
	return pix
}

func TestEncodeDecodePNGRoundTrip(t *testing.T) {
	pix := solidRGBA(4, 4, 200, 50, 10, 255)

	buf := &bytes.Buffer{}
	require.NoError(t, EncodePNG(buf, 4, 4, pix, false, DefaultCompression))

	img, err := decodePNGStrict(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 4, img.Rect.Dx())
	require.Equal(t, 4, img.Rect.Dy())

	c := img.RGBAAt(0, 0)
	require.Equal(t, uint8(200), c.R)
	require.Equal(t, uint8(50), c.G)
	require.Equal(t, uint8(10), c.B)
	require.Equal(t, uint8(255), c.A)
}

func TestEncodeDecodePNGRoundTripPreservesStraightAlpha(t *testing.T) {
	// R=100, A=1 is the classic premultiplication canary: naively
	// premultiplying then un-premultiplying a low-alpha, non-zero
	// color rounds through integer division and does not come back
	// as 100 unless the straight-alpha bytes are carried untouched.
	pix := solidRGBA(2, 2, 100, 200, 50, 1)

	buf := &bytes.Buffer{}
	require.NoError(t, EncodePNG(buf, 2, 2, pix, false, DefaultCompression))

	img, err := decodePNGStrict(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, pix, img.Pix)

	c := img.RGBAAt(0, 0)
	require.Equal(t, uint8(100), c.R)
	require.Equal(t, uint8(200), c.G)
	require.Equal(t, uint8(50), c.B)
	require.Equal(t, uint8(1), c.A)
}

func TestEncodeOpaquePNGDropsAlphaChannel(t *testing.T) {
	pix := make([]byte, 3*2*2)
	for i := range pix {
		pix[i] = byte(i * 10)
	}

	buf := &bytes.Buffer{}
	require.NoError(t, EncodePNG(buf, 2, 2, pix, true, BestCompression))

	img, err := decodePNGStrict(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, img.Rect.Dx())

	c := img.RGBAAt(1, 0)
	require.Equal(t, uint8(30), c.R)
	require.Equal(t, uint8(40), c.G)
	require.Equal(t, uint8(50), c.B)
	require.Equal(t, uint8(255), c.A)
}

func TestSupportedExt(t *testing.T) {
	require.True(t, SupportedExt(".png"))
	require.True(t, SupportedExt(".PNG"))
	require.True(t, SupportedExt(".webp"))
	require.True(t, SupportedExt(".tga"))
	require.False(t, SupportedExt(".jpg"))
}

func TestDecodeFileRejectsUnsupportedExtension(t *testing.T) {
	_, err := DecodeFile("sprite.jpg", bytes.NewReader(nil))
	require.Error(t, err)
}
