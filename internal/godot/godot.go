// Package godot renders a packed atlas manifest as Godot AtlasTexture
// .tres resources, one file per sprite.
package godot

import (
	"fmt"
	"strings"

	"github.com/bento-atlas/bento"
)

// Resource is one sprite's rendered .tres file content plus the name
// it should be written under.
type Resource struct {
	SpriteName string // base name, caller appends ".tres"
	Content    string
}

// Render produces one Resource per sprite across every atlas in m.
// resPath, if non-empty, is used verbatim as the Godot resource-path
// prefix (e.g. "res://assets/atlases"); otherwise "res://" is used.
func Render(m bento.Manifest, resPath string) []Resource {
	var out []Resource

	for _, atlas := range m.Atlases {
		atlasPath := atlasResPath(resPath, atlas.ImageName)
		for _, sprite := range atlas.Sprites {
			out = append(out, Resource{
				SpriteName: sprite.Name,
				Content:    renderTres(sprite, atlasPath),
			})
		}
	}

	return out
}

func atlasResPath(resPath, imageName string) string {
	if resPath == "" {
		return "res://" + imageName
	}
	return strings.TrimRight(resPath, "/") + "/" + imageName
}

func renderTres(sprite bento.SpriteEntry, atlasPath string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[gd_resource type=\"AtlasTexture\" load_steps=2 format=3]\n\n")
	fmt.Fprintf(&b, "[ext_resource type=\"Texture2D\" path=\"%s\" id=\"1\"]\n\n", atlasPath)
	fmt.Fprintf(&b, "[resource]\n")
	fmt.Fprintf(&b, "atlas = ExtResource(\"1\")\n")
	fmt.Fprintf(&b, "region = Rect2(%d, %d, %d, %d)", sprite.Frame.X, sprite.Frame.Y, sprite.Frame.W, sprite.Frame.H)

	left, top, right, bottom := godotMargin(sprite)
	if left != 0 || top != 0 || right != 0 || bottom != 0 {
		fmt.Fprintf(&b, "\nmargin = Rect2(%d, %d, %d, %d)", left, top, right, bottom)
	}

	fmt.Fprintf(&b, "\nfilter_clip = true\n")

	return b.String()
}

// godotMargin converts a SpriteEntry's trim metadata into Godot's
// (left, top, right, bottom) AtlasTexture margin convention: the
// untrimmed pixels dropped from each edge of the original source.
func godotMargin(sprite bento.SpriteEntry) (left, top, right, bottom int) {
	if !sprite.Trimmed {
		return 0, 0, 0, 0
	}
	src := sprite.SourceSize
	trimmed := sprite.SpriteSourceSize

	left = trimmed.X
	top = trimmed.Y
	right = src.W - trimmed.W - trimmed.X
	bottom = src.H - trimmed.H - trimmed.Y
	return
}
