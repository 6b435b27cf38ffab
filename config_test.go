package bento

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, DefaultConfig().validate())
}

func TestConfigValidateRejectsNegativePadding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = -1
	require.Error(t, cfg.validate())
}

func TestConfigValidateRejectsNegativeExtrude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extrude = -1
	require.Error(t, cfg.validate())
}

func TestConfigValidateRejectsNonPositiveDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWidth = 0
	require.Error(t, cfg.validate())

	cfg = DefaultConfig()
	cfg.MaxHeight = 0
	require.Error(t, cfg.validate())
}

func TestTrimEnabledMirrorsTrimField(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.TrimEnabled())
	cfg.Trim = false
	require.False(t, cfg.TrimEnabled())
}
