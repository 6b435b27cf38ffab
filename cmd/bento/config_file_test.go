package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bento-atlas/bento"
)

func TestToPackerConfigRejectsConflictingResizeModes(t *testing.T) {
	c := defaultFileConfig()
	c.Resize = &resizeConfig{Width: 64, Scale: 2}

	_, err := c.toPackerConfig()
	require.Error(t, err)

	var berr *bento.Error
	require.True(t, errors.As(err, &berr))
	require.Equal(t, bento.KindInvalidConfig, berr.Kind)
}

func TestToPackerConfigRejectsUnknownHeuristic(t *testing.T) {
	c := defaultFileConfig()
	c.Heuristic = "not-a-real-heuristic"

	_, err := c.toPackerConfig()
	require.Error(t, err)

	var berr *bento.Error
	require.True(t, errors.As(err, &berr))
	require.Equal(t, bento.KindInvalidConfig, berr.Kind)
}

func TestToPackerConfigRejectsUnknownPackMode(t *testing.T) {
	c := defaultFileConfig()
	c.PackMode = "not-a-real-mode"

	_, err := c.toPackerConfig()
	require.Error(t, err)

	var berr *bento.Error
	require.True(t, errors.As(err, &berr))
	require.Equal(t, bento.KindInvalidConfig, berr.Kind)
}

func TestCompressConfigUnmarshalRejectsBadValue(t *testing.T) {
	var c compressConfig
	err := c.UnmarshalJSON([]byte(`"not-max"`))
	require.Error(t, err)

	var berr *bento.Error
	require.True(t, errors.As(err, &berr))
	require.Equal(t, bento.KindInvalidConfig, berr.Kind)
}
