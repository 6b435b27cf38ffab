package bento

// Config is the packer configuration (spec §6).
type Config struct {
	MaxWidth  int
	MaxHeight int

	Padding int

	Trim       bool
	TrimMargin int

	// Resize is nil when no pre-resize step is requested.
	Resize       *ResizeTarget
	ResizeFilter string // "nearest", "triangle", "catmull-rom", "gaussian", "lanczos3"

	Heuristic Heuristic
	PackMode  PackMode

	POT bool

	Extrude int

	Opaque bool

	Compress Compress
}

// DefaultConfig returns the packer configuration's defaults (spec §6 table).
func DefaultConfig() *Config {
	return &Config{
		MaxWidth:     4096,
		MaxHeight:    4096,
		Padding:      1,
		Trim:         true,
		TrimMargin:   0,
		Resize:       nil,
		ResizeFilter: "lanczos3",
		Heuristic:    HeuristicBestShortSideFit,
		PackMode:     PackModeSingle,
		POT:          false,
		Extrude:      0,
		Opaque:       false,
		Compress:     CompressOff,
	}
}

// validate checks the invariants from spec §7 InvalidConfig, returning
// a *Error of KindInvalidConfig on the first violation found.
func (c *Config) validate() error {
	if c.Padding < 0 {
		return errInvalidConfig("padding must be >= 0")
	}
	if c.Extrude < 0 {
		return errInvalidConfig("extrude must be >= 0")
	}
	if c.MaxWidth < 1 {
		return errInvalidConfig("max_width must be >= 1")
	}
	if c.MaxHeight < 1 {
		return errInvalidConfig("max_height must be >= 1")
	}
	return nil
}

// TrimEnabled reports whether trimming runs at all.
func (c *Config) TrimEnabled() bool { return c.Trim }
