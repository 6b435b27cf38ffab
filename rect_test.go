package bento

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectGeometry(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	require.Equal(t, int64(1200), r.Area())
	require.Equal(t, 40, r.Right())
	require.Equal(t, 60, r.Bottom())
	require.True(t, r.Fits(30, 40))
	require.False(t, r.Fits(31, 40))
}

func TestRectContainsAndIntersects(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}
	inner := Rect{X: 10, Y: 10, W: 20, H: 20}
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))

	disjoint := Rect{X: 200, Y: 200, W: 10, H: 10}
	require.False(t, outer.Intersects(disjoint))

	overlap := Rect{X: 90, Y: 90, W: 20, H: 20}
	require.True(t, outer.Intersects(overlap))
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 5: 8, 1024: 1024, 1025: 2048}
	for in, want := range cases {
		require.Equal(t, want, nextPowerOfTwo(in), "nextPowerOfTwo(%d)", in)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	require.True(t, isPowerOfTwo(1))
	require.True(t, isPowerOfTwo(1024))
	require.False(t, isPowerOfTwo(0))
	require.False(t, isPowerOfTwo(3))
}
