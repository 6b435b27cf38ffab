package bento

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ResizeTarget selects how resize() computes the output dimensions.
// Exactly one of Width/Scale is meaningful, matching the mutually
// exclusive resize_width/resize_scale config options.
type ResizeTarget struct {
	width int     // Width(w): scale = w/W0, H = round(H0*scale), min 1
	scale float64 // Scale(s): W=max(1,round(W0*s)), H=max(1,round(H0*s))
	byWidth bool
}

// ResizeByWidth targets a specific output width, preserving aspect ratio.
func ResizeByWidth(w int) ResizeTarget { return ResizeTarget{width: w, byWidth: true} }

// ResizeByScale scales both dimensions by a uniform factor.
func ResizeByScale(scale float64) ResizeTarget { return ResizeTarget{scale: scale} }

// resizeFilter picks the golang.org/x/image/draw interpolator a named
// config filter maps onto. golang.org/x/image/draw has no Gaussian or
// Lanczos kernel; "gaussian" and "lanczos3" alias to CatmullRom, the
// highest-quality one it offers (see DESIGN.md).
func resizeFilter(name string) xdraw.Interpolator {
	switch name {
	case "nearest":
		return xdraw.NearestNeighbor
	case "triangle":
		return xdraw.ApproxBiLinear
	case "catmull-rom", "gaussian", "lanczos3", "":
		return xdraw.CatmullRom
	default:
		return xdraw.CatmullRom
	}
}

// resize scales sprite to the target, using the named filter
// ("" defaults to bilinear-quality CatmullRom). Resize runs before
// trimming so trimming can reclaim any newly transparent border.
func resize(s *Sprite, target ResizeTarget, filter string) *Sprite {
	var newW, newH int
	if target.byWidth {
		scale := float64(target.width) / float64(s.Width)
		newW = target.width
		newH = maxInt(1, int(math.Round(float64(s.Height)*scale)))
	} else {
		newW = maxInt(1, int(math.Round(float64(s.Width)*target.scale)))
		newH = maxInt(1, int(math.Round(float64(s.Height)*target.scale)))
	}

	src := &image.RGBA{
		Pix:    s.Pix,
		Stride: 4 * s.Width,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))

	interp := resizeFilter(filter)
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return &Sprite{
		Name:   s.Name,
		Width:  newW,
		Height: newH,
		Pix:    dst.Pix,
	}
}
