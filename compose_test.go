package bento

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeBlitsPixelsAtPlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = 0
	sprites := []*TrimmedSprite{
		trimmedFromSprite(solidSprite("red", 4, 4, 255, 0, 0, 255), 0),
	}

	orch := newOrchestrator(cfg, nil, nil)
	trial, err := orch.run(sprites)
	require.NoError(t, err)

	atlases, err := compose(trial, cfg, nil, nil)
	require.NoError(t, err)
	require.Len(t, atlases, 1)

	img := atlases[0]
	r, g, b, a := img.getRGBA(0, 0)
	require.Equal(t, byte(255), r)
	require.Equal(t, byte(0), g)
	require.Equal(t, byte(0), b)
	require.Equal(t, byte(255), a)
}

func TestComposeExtrusionReplicatesEdges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = 4
	cfg.Extrude = 2
	sprites := []*TrimmedSprite{
		trimmedFromSprite(solidSprite("blue", 4, 4, 0, 0, 255, 255), 0),
	}

	orch := newOrchestrator(cfg, nil, nil)
	trial, err := orch.run(sprites)
	require.NoError(t, err)

	atlases, err := compose(trial, cfg, nil, nil)
	require.NoError(t, err)

	img := atlases[0]
	p := trial.placements[0]
	r, g, b, a := img.getRGBA(p.Rect.X-1, p.Rect.Y)
	require.Equal(t, byte(0), r)
	require.Equal(t, byte(0), g)
	require.Equal(t, byte(255), b)
	require.Equal(t, byte(255), a)
}

func TestComposeOpaqueFlattensToRGB8(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Opaque = true
	sprites := []*TrimmedSprite{
		trimmedFromSprite(solidSprite("half", 2, 2, 200, 100, 50, 128), 0),
	}

	orch := newOrchestrator(cfg, nil, nil)
	trial, err := orch.run(sprites)
	require.NoError(t, err)

	atlases, err := compose(trial, cfg, nil, nil)
	require.NoError(t, err)

	img := atlases[0]
	require.True(t, img.Opaque)
	require.Len(t, img.Pix, 3*img.Width*img.Height)
}

func TestComposeCancellationReturnsError(t *testing.T) {
	cfg := DefaultConfig()
	sprites := []*TrimmedSprite{
		trimmedFromSprite(solidSprite("x", 4, 4, 1, 1, 1, 255), 0),
	}
	orch := newOrchestrator(cfg, nil, nil)
	trial, err := orch.run(sprites)
	require.NoError(t, err)

	cancel := &CancelFlag{}
	cancel.Cancel()
	_, err = compose(trial, cfg, cancel, nil)
	require.Error(t, err)
}
