package bento

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeuristicRoundTrip(t *testing.T) {
	for _, h := range concreteHeuristics {
		parsed, ok := ParseHeuristic(h.String())
		require.True(t, ok)
		require.Equal(t, h, parsed)
	}
}

func TestParseHeuristicRejectsUnknown(t *testing.T) {
	_, ok := ParseHeuristic("not-a-heuristic")
	require.False(t, ok)
}

func TestParsePackModeRoundTrip(t *testing.T) {
	single, ok := ParsePackMode("single")
	require.True(t, ok)
	require.Equal(t, PackModeSingle, single)

	best, ok := ParsePackMode("best")
	require.True(t, ok)
	require.Equal(t, PackModeBest, best)
}

func TestCompressAccessors(t *testing.T) {
	require.False(t, CompressOff.Enabled())

	lvl := CompressLevel(3)
	require.True(t, lvl.Enabled())
	require.False(t, lvl.Max())
	require.Equal(t, 3, lvl.Level())

	max := CompressMax()
	require.True(t, max.Enabled())
	require.True(t, max.Max())
}
