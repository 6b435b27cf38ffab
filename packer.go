package bento

import "fmt"

// Result is the core pack() operation's output: one AtlasImage per bin
// plus the neutral Manifest describing every placement (spec §6).
type Result struct {
	Atlases  []*AtlasImage
	Manifest Manifest
}

// Pack runs the full pipeline — preprocess, order, try heuristics,
// split across bins on overflow, compose, build manifest — over
// sprites per cfg (spec §2 dataflow). baseName seeds the atlas image
// filenames ("<name>_<index>.png").
//
// cancel may be nil (no cancellation support); progress may be nil.
func Pack(sprites []*Sprite, cfg *Config, baseName string, cancel *CancelFlag, progress ProgressFunc) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(sprites) == 0 {
		return nil, errEmptyInput()
	}
	if err := checkDuplicateNames(sprites); err != nil {
		return nil, err
	}

	preprocessed, err := preprocess(sprites, cfg)
	if err != nil {
		return nil, err
	}

	orch := newOrchestrator(cfg, cancel, progress)
	trial, err := orch.run(preprocessed)
	if err != nil {
		return nil, err
	}

	atlases, err := compose(trial, cfg, cancel, progress)
	if err != nil {
		return nil, err
	}

	manifest := buildManifest(trial, atlases, baseName, cfg.Opaque)

	return &Result{Atlases: atlases, Manifest: manifest}, nil
}

// preprocess resizes (if configured), then trims (if enabled) every
// sprite, in input order, recording each TrimmedSprite's InputIndex.
func preprocess(sprites []*Sprite, cfg *Config) ([]*TrimmedSprite, error) {
	out := make([]*TrimmedSprite, len(sprites))

	for i, s := range sprites {
		cur := s
		if cfg.Resize != nil {
			cur = resize(cur, *cfg.Resize, cfg.ResizeFilter)
		}

		var ts *TrimmedSprite
		if cfg.Trim {
			ts = trim(cur, cfg.TrimMargin)
		} else {
			ts = identityTrim(cur)
		}
		ts.InputIndex = i
		out[i] = ts
	}

	return out, nil
}

// checkDuplicateNames enforces spec §7 DuplicateName: two input
// sprites sharing a logical name fail the whole operation.
func checkDuplicateNames(sprites []*Sprite) error {
	seen := make(map[string]struct{}, len(sprites))
	for _, s := range sprites {
		if _, ok := seen[s.Name]; ok {
			return errDuplicateName(s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// Packer is a stateful convenience wrapper around Pack, for callers
// that accumulate sprites incrementally before running the pipeline
// once.
type Packer struct {
	cfg      *Config
	sprites  []*Sprite
	cancel   *CancelFlag
	progress ProgressFunc

	Result *Result
}

// New creates a Packer with the given config (DefaultConfig() if nil).
func New(cfg *Config) *Packer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Packer{cfg: cfg}
}

// WithCancel attaches a cooperative cancel flag, returning the Packer
// for chaining.
func (p *Packer) WithCancel(cancel *CancelFlag) *Packer {
	p.cancel = cancel
	return p
}

// WithProgress attaches a progress callback, returning the Packer for
// chaining.
func (p *Packer) WithProgress(progress ProgressFunc) *Packer {
	p.progress = progress
	return p
}

// AddSprite appends a sprite to the pending input set.
func (p *Packer) AddSprite(s *Sprite) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("sprite %q has non-positive dimensions", s.Name)
	}
	p.sprites = append(p.sprites, s)
	return nil
}

// Reset discards pending sprites and any prior Result.
func (p *Packer) Reset() {
	p.sprites = nil
	p.Result = nil
}

// Pack runs the pipeline over the sprites added so far and stores the
// outcome in p.Result.
func (p *Packer) Pack(baseName string) error {
	result, err := Pack(p.sprites, p.cfg, baseName, p.cancel, p.progress)
	if err != nil {
		return err
	}
	p.Result = result
	return nil
}
