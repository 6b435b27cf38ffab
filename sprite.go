package bento

// Sprite is a named RGBA8 input image. Immutable once constructed;
// shared read-only across every trial the orchestrator runs.
type Sprite struct {
	Name   string
	Width  int
	Height int
	// Pix holds 4*Width*Height bytes, row-major, straight (non-premultiplied) alpha.
	Pix []byte
}

// at returns the RGBA bytes of the pixel at (x,y).
func (s *Sprite) at(x, y int) (r, g, b, a byte) {
	i := (y*s.Width + x) * 4
	return s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3]
}

// TrimmedSprite is derived from a Sprite: its tight opaque bounding box
// (or an identity copy, if trimming is disabled).
type TrimmedSprite struct {
	SourceName       string
	SourceW, SourceH int
	OffsetX, OffsetY int // top-left of trimmed content within the source
	W, H             int // trimmed content dimensions
	Pix              []byte
	Trimmed          bool

	// InputIndex is the sprite's position in the original input
	// declaration order, independent of any trial ordering. The
	// composer blits in this order (spec §4.5); the manifest builder
	// does not (spec §4.6).
	InputIndex int
}

// Placement is a TrimmedSprite assigned to a bin at a rectangle.
type Placement struct {
	Sprite    *TrimmedSprite
	BinIndex  int
	Rect      Rect
}
