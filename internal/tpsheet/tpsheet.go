// Package tpsheet renders a packed atlas manifest as a TexturePacker
// .tpsheet JSON document.
package tpsheet

import (
	"github.com/bento-atlas/bento"
)

// Document is the top-level .tpsheet JSON shape.
type Document struct {
	Textures []Texture `json:"textures"`
	Meta     Meta      `json:"meta"`
}

type Texture struct {
	Image   string   `json:"image"`
	Size    Size     `json:"size"`
	Sprites []Sprite `json:"sprites"`
}

type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

type Sprite struct {
	Filename string `json:"filename"`
	Region   Region `json:"region"`
	Margin   Margin `json:"margin"`
}

type Region struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Margin's X/Y are the trim offset (signed, though always >= 0 in
// practice); W/H are the total pixels trimmed away on each axis
// (source size minus trimmed size).
type Margin struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type Meta struct {
	App     string `json:"app"`
	Version string `json:"version"`
}

// Build projects a manifest into a tpsheet Document.
func Build(m bento.Manifest) Document {
	doc := Document{
		Meta:     Meta{App: "bento", Version: "1.0"},
		Textures: make([]Texture, len(m.Atlases)),
	}

	for i, atlas := range m.Atlases {
		sprites := make([]Sprite, len(atlas.Sprites))
		for j, s := range atlas.Sprites {
			sprites[j] = spriteToTp(s)
		}
		doc.Textures[i] = Texture{
			Image:   atlas.ImageName,
			Size:    Size{W: atlas.Width, H: atlas.Height},
			Sprites: sprites,
		}
	}

	return doc
}

func spriteToTp(s bento.SpriteEntry) Sprite {
	trim := s.SpriteSourceSize
	src := s.SourceSize

	return Sprite{
		Filename: s.Name,
		Region:   Region{X: s.Frame.X, Y: s.Frame.Y, W: s.Frame.W, H: s.Frame.H},
		Margin: Margin{
			X: trim.X,
			Y: trim.Y,
			W: src.W - trim.W,
			H: src.H - trim.H,
		},
	}
}
