package bento

import "sort"

// AtlasImage is a composed atlas's pixel buffer plus its dimensions.
// Opaque true means Pix is 3 bytes/pixel (RGB8); otherwise 4 (RGBA8).
type AtlasImage struct {
	Width, Height int
	Opaque        bool
	Pix           []byte
}

// compose allocates one atlas buffer per bin and blits every placement
// into it, replicating extrusion bands and leaving padding untouched
// and transparent (spec §4.5). Within each bin, placements are blitted
// in input-declaration order — distinct from the manifest's placement
// (winning-trial) order.
func compose(trial *trialResult, cfg *Config, cancel *CancelFlag, report ProgressFunc) ([]*AtlasImage, error) {
	atlases := make([]*AtlasImage, len(trial.bins))

	total := len(trial.placements)
	done := 0

	for i, b := range trial.bins {
		if cancel.Cancelled() {
			return nil, errCancelled()
		}

		w, h := finalizeBinSize(b, cfg)
		img := newAtlasBuffer(w, h)

		ordered := make([]*Placement, len(b.placements))
		copy(ordered, b.placements)
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Sprite.InputIndex < ordered[j].Sprite.InputIndex
		})

		for _, p := range ordered {
			if cancel.Cancelled() {
				return nil, errCancelled()
			}
			blit(img, p, cfg.Extrude)
			done++
			reportProgress(report, "blit", done, total)
		}

		if cfg.Opaque {
			img = flattenOpaque(img)
		}

		atlases[i] = img
	}

	return atlases, nil
}

func newAtlasBuffer(w, h int) *AtlasImage {
	return &AtlasImage{Width: w, Height: h, Pix: make([]byte, 4*w*h)}
}

func (img *AtlasImage) setRGBA(x, y int, r, g, b, a byte) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	i := (y*img.Width + x) * 4
	img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
}

func (img *AtlasImage) getRGBA(x, y int) (r, g, b, a byte) {
	i := (y*img.Width + x) * 4
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

// blit paints the trimmed sprite pixels at p.Rect's top-left, then, if
// extrude>0, replicates the sprite's outermost row/column outward by
// extrude pixels on each side (corners replicate the corner pixel).
func blit(img *AtlasImage, p *Placement, extrude int) {
	s := p.Sprite
	x0, y0 := p.Rect.X, p.Rect.Y

	for y := 0; y < s.H; y++ {
		row := y * s.W * 4
		for x := 0; x < s.W; x++ {
			i := row + x*4
			img.setRGBA(x0+x, y0+y, s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3])
		}
	}

	if extrude <= 0 {
		return
	}

	for e := 1; e <= extrude; e++ {
		// Top and bottom edges.
		for x := 0; x < s.W; x++ {
			r, g, b, a := sample(s, x, 0)
			img.setRGBA(x0+x, y0-e, r, g, b, a)
			r, g, b, a = sample(s, x, s.H-1)
			img.setRGBA(x0+x, y0+s.H-1+e, r, g, b, a)
		}
		// Left and right edges.
		for y := 0; y < s.H; y++ {
			r, g, b, a := sample(s, 0, y)
			img.setRGBA(x0-e, y0+y, r, g, b, a)
			r, g, b, a = sample(s, s.W-1, y)
			img.setRGBA(x0+s.W-1+e, y0+y, r, g, b, a)
		}
		// Corners.
		r, g, b, a := sample(s, 0, 0)
		img.setRGBA(x0-e, y0-e, r, g, b, a)
		r, g, b, a = sample(s, s.W-1, 0)
		img.setRGBA(x0+s.W-1+e, y0-e, r, g, b, a)
		r, g, b, a = sample(s, 0, s.H-1)
		img.setRGBA(x0-e, y0+s.H-1+e, r, g, b, a)
		r, g, b, a = sample(s, s.W-1, s.H-1)
		img.setRGBA(x0+s.W-1+e, y0+s.H-1+e, r, g, b, a)
	}
}

func sample(s *TrimmedSprite, x, y int) (r, g, b, a byte) {
	i := (y*s.W + x) * 4
	return s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3]
}

// flattenOpaque blends img over opaque black and re-encodes as RGB8.
func flattenOpaque(img *AtlasImage) *AtlasImage {
	out := &AtlasImage{Width: img.Width, Height: img.Height, Opaque: true, Pix: make([]byte, 3*img.Width*img.Height)}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := img.getRGBA(x, y)
			af := float64(a) / 255.0
			oi := (y*img.Width + x) * 3
			out.Pix[oi] = byte(float64(r) * af)
			out.Pix[oi+1] = byte(float64(g) * af)
			out.Pix[oi+2] = byte(float64(b) * af)
		}
	}

	return out
}
