package godot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bento-atlas/bento"
)

func manifestFixture(trimmed bool) bento.Manifest {
	sprite := bento.SpriteEntry{
		Name:    "hero",
		Frame:   bento.Frame{X: 10, Y: 20, W: 28, H: 28},
		Trimmed: trimmed,
	}
	if trimmed {
		sprite.SpriteSourceSize = bento.Frame{X: 2, Y: 2, W: 28, H: 28}
		sprite.SourceSize = bento.Size{W: 32, H: 32}
	} else {
		sprite.SpriteSourceSize = bento.Frame{X: 0, Y: 0, W: 28, H: 28}
		sprite.SourceSize = bento.Size{W: 28, H: 28}
	}

	return bento.Manifest{
		Atlases: []bento.AtlasManifest{
			{ImageName: "atlas_0.png", Width: 256, Height: 256, Sprites: []bento.SpriteEntry{sprite}},
		},
	}
}

func TestRenderNoMarginWhenUntrimmed(t *testing.T) {
	resources := Render(manifestFixture(false), "")
	require.Len(t, resources, 1)
	require.Contains(t, resources[0].Content, "region = Rect2(10, 20, 28, 28)")
	require.NotContains(t, resources[0].Content, "margin")
	require.Contains(t, resources[0].Content, "filter_clip = true")
}

func TestRenderMarginWhenTrimmed(t *testing.T) {
	resources := Render(manifestFixture(true), "")
	require.Contains(t, resources[0].Content, "margin = Rect2(2, 2, 2, 2)")
}

func TestRenderUsesResPathPrefix(t *testing.T) {
	resources := Render(manifestFixture(false), "assets/atlases")
	require.Contains(t, resources[0].Content, "path=\"assets/atlases/atlas_0.png\"")
	require.Contains(t, atlasResPath("assets/atlases", "atlas_0.png"), "assets/atlases/atlas_0.png")
}

func TestRenderDefaultsToResScheme(t *testing.T) {
	require.Equal(t, "res://atlas_0.png", atlasResPath("", "atlas_0.png"))
}
