package bento

import "strconv"

// Manifest is the neutral, ordered description of every packed atlas
// (spec §3/§4.6). Serializers (JSON, Godot, tpsheet) are thin
// projections of it.
type Manifest struct {
	Format  string // "rgba8888" unless Opaque, then "rgb888"
	Atlases []AtlasManifest
}

// AtlasManifest describes one atlas image and its sprite placements.
type AtlasManifest struct {
	ImageName string
	Width     int
	Height    int
	Sprites   []SpriteEntry
}

// SpriteEntry is one sprite's placement plus its trim/source metadata.
type SpriteEntry struct {
	Name             string
	Frame            Frame
	Trimmed          bool
	SpriteSourceSize Frame
	SourceSize       Size
}

// Frame is a rectangle in {x,y,w,h} shape, matching spec §3's manifest
// field layout for both `frame` and `spriteSourceSize`.
type Frame struct {
	X, Y, W, H int
}

// Size is a plain {w,h} pair.
type Size struct {
	W, H int
}

// buildManifest assembles the neutral manifest from a winning trial and
// its composed atlases. Atlas entries are in bin order; within each
// atlas, sprite entries are in the order they were placed (the winning
// trial's ordering), per spec §4.6 — not input-declaration order.
func buildManifest(trial *trialResult, atlases []*AtlasImage, baseName string, opaque bool) Manifest {
	format := "rgba8888"
	if opaque {
		format = "rgb888"
	}

	m := Manifest{Format: format, Atlases: make([]AtlasManifest, len(trial.bins))}

	for i, b := range trial.bins {
		am := AtlasManifest{
			ImageName: atlasImageName(baseName, i),
			Width:     atlases[i].Width,
			Height:    atlases[i].Height,
			Sprites:   make([]SpriteEntry, len(b.placements)),
		}
		for j, p := range b.placements {
			am.Sprites[j] = spriteEntry(p)
		}
		m.Atlases[i] = am
	}

	return m
}

func spriteEntry(p *Placement) SpriteEntry {
	s := p.Sprite
	return SpriteEntry{
		Name: s.SourceName,
		Frame: Frame{
			X: p.Rect.X, Y: p.Rect.Y, W: p.Rect.W, H: p.Rect.H,
		},
		Trimmed: s.Trimmed,
		SpriteSourceSize: Frame{
			X: s.OffsetX, Y: s.OffsetY, W: s.W, H: s.H,
		},
		SourceSize: Size{W: s.SourceW, H: s.SourceH},
	}
}

// atlasImageName synthesizes the filename for a bin's atlas image.
// Bento always includes the bin index for consistency across
// serializers (see SPEC_FULL.md §7 open-question decision).
func atlasImageName(baseName string, binIndex int) string {
	return baseName + "_" + strconv.Itoa(binIndex) + ".png"
}
