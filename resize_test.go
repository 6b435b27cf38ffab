package bento

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizeByWidthPreservesAspectRatio(t *testing.T) {
	s := solidSprite("a", 100, 50, 10, 20, 30, 255)
	out := resize(s, ResizeByWidth(50), "")

	require.Equal(t, 50, out.Width)
	require.Equal(t, 25, out.Height)
}

func TestResizeByScaleHalves(t *testing.T) {
	s := solidSprite("a", 40, 20, 10, 20, 30, 255)
	out := resize(s, ResizeByScale(0.5), "nearest")

	require.Equal(t, 20, out.Width)
	require.Equal(t, 10, out.Height)
}

func TestResizeByScaleNeverGoesToZero(t *testing.T) {
	s := solidSprite("a", 4, 4, 10, 20, 30, 255)
	out := resize(s, ResizeByScale(0.01), "nearest")

	require.GreaterOrEqual(t, out.Width, 1)
	require.GreaterOrEqual(t, out.Height, 1)
}

func TestResizeFilterMapsUnknownNamesToCatmullRom(t *testing.T) {
	require.Equal(t, resizeFilter("lanczos3"), resizeFilter("gaussian"))
	require.Equal(t, resizeFilter("catmull-rom"), resizeFilter("nonsense"))
}
