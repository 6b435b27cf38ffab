package bento

// trim scans sprite's alpha channel and returns the TrimmedSprite whose
// content is the tight bounding box of opaque (alpha > 0) pixels,
// expanded outward by keepMargin pixels and clamped to the source
// bounds. A fully transparent sprite degenerates to a 1x1 sentinel
// pixel at (0,0), trimmed=true, so it can never corrupt packing with a
// zero-area rect.
func trim(s *Sprite, keepMargin int) *TrimmedSprite {
	minX, minY := s.Width, s.Height
	maxX, maxY := -1, -1

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			_, _, _, a := s.at(x, y)
			if a > 0 {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}

	if maxX < minX || maxY < minY {
		return &TrimmedSprite{
			SourceName: s.Name,
			SourceW:    s.Width,
			SourceH:    s.Height,
			OffsetX:    0,
			OffsetY:    0,
			W:          1,
			H:          1,
			Pix:        make([]byte, 4),
			Trimmed:    true,
		}
	}

	minX = maxInt(0, minX-keepMargin)
	minY = maxInt(0, minY-keepMargin)
	maxX = minInt(s.Width-1, maxX+keepMargin)
	maxY = minInt(s.Height-1, maxY+keepMargin)

	w := maxX - minX + 1
	h := maxY - minY + 1

	pix := make([]byte, 4*w*h)
	for row := 0; row < h; row++ {
		srcOff := ((minY+row)*s.Width + minX) * 4
		dstOff := row * w * 4
		copy(pix[dstOff:dstOff+w*4], s.Pix[srcOff:srcOff+w*4])
	}

	trimmed := minX != 0 || minY != 0 || w != s.Width || h != s.Height

	return &TrimmedSprite{
		SourceName: s.Name,
		SourceW:    s.Width,
		SourceH:    s.Height,
		OffsetX:    minX,
		OffsetY:    minY,
		W:          w,
		H:          h,
		Pix:        pix,
		Trimmed:    trimmed,
	}
}

// identityTrim wraps a sprite as an untrimmed TrimmedSprite, used when
// trimming is disabled at the orchestrator level.
func identityTrim(s *Sprite) *TrimmedSprite {
	pix := make([]byte, len(s.Pix))
	copy(pix, s.Pix)
	return &TrimmedSprite{
		SourceName: s.Name,
		SourceW:    s.Width,
		SourceH:    s.Height,
		OffsetX:    0,
		OffsetY:    0,
		W:          s.Width,
		H:          s.Height,
		Pix:        pix,
		Trimmed:    false,
	}
}
