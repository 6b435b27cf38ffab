package bento

// solidSprite builds a w×h sprite fully opaque with color (r,g,b,a).
func solidSprite(name string, w, h int, r, g, b, a byte) *Sprite {
	pix := make([]byte, 4*w*h)
	for i := 0; i < w*h; i++ {
		pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = r, g, b, a
	}
	return &Sprite{Name: name, Width: w, Height: h, Pix: pix}
}

// paddedSprite builds a w×h sprite whose content is a solid opaque
// (marginX,marginY)-inset rectangle, transparent elsewhere — useful for
// exercising trim().
func paddedSprite(name string, w, h, marginX, marginY int) *Sprite {
	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if x >= marginX && x < w-marginX && y >= marginY && y < h-marginY {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 255, 0, 0, 255
			}
		}
	}
	return &Sprite{Name: name, Width: w, Height: h, Pix: pix}
}
