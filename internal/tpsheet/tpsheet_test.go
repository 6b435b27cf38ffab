package tpsheet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bento-atlas/bento"
)

func TestBuildUntrimmedMarginIsZero(t *testing.T) {
	m := bento.Manifest{
		Atlases: []bento.AtlasManifest{
			{
				ImageName: "atlas_0.png",
				Width:     64,
				Height:    64,
				Sprites: []bento.SpriteEntry{{
					Name:             "sprite1.png",
					Frame:            bento.Frame{X: 10, Y: 20, W: 32, H: 32},
					SpriteSourceSize: bento.Frame{X: 0, Y: 0, W: 32, H: 32},
					SourceSize:       bento.Size{W: 32, H: 32},
				}},
			},
		},
	}

	doc := Build(m)
	require.Equal(t, "bento", doc.Meta.App)
	sp := doc.Textures[0].Sprites[0]
	require.Equal(t, "sprite1.png", sp.Filename)
	require.Equal(t, 0, sp.Margin.W)
	require.Equal(t, 0, sp.Margin.H)
}

func TestBuildTrimmedMarginIsDelta(t *testing.T) {
	m := bento.Manifest{
		Atlases: []bento.AtlasManifest{
			{
				ImageName: "atlas_0.png",
				Sprites: []bento.SpriteEntry{{
					Name:             "folder/sprite2.png",
					Frame:            bento.Frame{X: 34, Y: 0, W: 28, H: 30},
					Trimmed:          true,
					SpriteSourceSize: bento.Frame{X: 2, Y: 1, W: 28, H: 30},
					SourceSize:       bento.Size{W: 32, H: 32},
				}},
			},
		},
	}

	doc := Build(m)
	sp := doc.Textures[0].Sprites[0]
	require.Equal(t, 2, sp.Margin.X)
	require.Equal(t, 1, sp.Margin.Y)
	require.Equal(t, 4, sp.Margin.W)
	require.Equal(t, 2, sp.Margin.H)
}
