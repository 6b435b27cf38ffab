package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bento-atlas/bento"
)

// fileConfig mirrors the JSON config file format (spec §6): every
// field has a default so a minimal file only needs input/output_dir/name.
type fileConfig struct {
	Version      int      `json:"version"`
	Input        []string `json:"input"`
	OutputDir    string   `json:"output_dir"`
	Name         string   `json:"name"`
	Format       string   `json:"format"`
	MaxWidth     int      `json:"max_width"`
	MaxHeight    int      `json:"max_height"`
	Padding      int      `json:"padding"`
	POT          bool     `json:"pot"`
	Trim         *bool    `json:"trim"`
	TrimMargin   int      `json:"trim_margin"`
	Extrude      int      `json:"extrude"`
	Resize       *resizeConfig `json:"resize"`
	ResizeFilter string   `json:"resize_filter"`
	Heuristic    string   `json:"heuristic"`
	PackMode     string   `json:"pack_mode"`
	Compress     *compressConfig `json:"compress"`
	Opaque       bool     `json:"opaque"`
	FilenameOnly bool     `json:"filename_only"`
}

type resizeConfig struct {
	Width int     `json:"width"`
	Scale float64 `json:"scale"`
}

// compressConfig accepts either a bare integer level, the string "max",
// or the string "off" (no hint), mirroring the original's untagged enum
// (config/types.rs::CompressConfig).
type compressConfig struct {
	Level *int
	Max   bool
}

func (c *compressConfig) UnmarshalJSON(data []byte) error {
	var level int
	if err := json.Unmarshal(data, &level); err == nil && level >= 0 && level <= 6 {
		c.Level = &level
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == "max" {
		c.Max = true
		return nil
	}
	if s == "off" {
		return nil
	}
	return bento.NewInvalidConfigError("compress must be an integer 0-6, \"off\" or \"max\"")
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Version:      1,
		OutputDir:    ".",
		Name:         "atlas",
		Format:       "json",
		MaxWidth:     4096,
		MaxHeight:    4096,
		Padding:      1,
		TrimMargin:   0,
		ResizeFilter: "lanczos3",
		Heuristic:    "best-short-side-fit",
		PackMode:     "single",
	}
}

// loadConfigFile reads and parses a config file at path. configDir is
// the directory inputs/output_dir are resolved relative to.
func loadConfigFile(path string) (fileConfig, string, error) {
	cfg := defaultFileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, "", fmt.Errorf("read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, "", fmt.Errorf("parse config file %q: %w", path, err)
	}

	configDir := filepath.Dir(path)
	return cfg, configDir, nil
}

// toPackerConfig converts the file format into a *bento.Config,
// returning a *bento.Error of KindInvalidConfig on a bad enum value.
func (c fileConfig) toPackerConfig() (*bento.Config, error) {
	cfg := bento.DefaultConfig()

	cfg.MaxWidth = c.MaxWidth
	cfg.MaxHeight = c.MaxHeight
	cfg.Padding = c.Padding
	cfg.POT = c.POT
	cfg.TrimMargin = c.TrimMargin
	cfg.Extrude = c.Extrude
	cfg.Opaque = c.Opaque
	if c.Trim != nil {
		cfg.Trim = *c.Trim
	}

	if c.ResizeFilter != "" {
		cfg.ResizeFilter = c.ResizeFilter
	}

	if c.Resize != nil {
		if c.Resize.Width > 0 && c.Resize.Scale > 0 {
			return nil, bento.NewInvalidConfigError("resize: width and scale are mutually exclusive")
		}
		if c.Resize.Width > 0 {
			target := bento.ResizeByWidth(c.Resize.Width)
			cfg.Resize = &target
		} else if c.Resize.Scale > 0 {
			target := bento.ResizeByScale(c.Resize.Scale)
			cfg.Resize = &target
		}
	}

	if c.Heuristic != "" {
		h, ok := bento.ParseHeuristic(c.Heuristic)
		if !ok {
			return nil, bento.NewInvalidConfigError(fmt.Sprintf("unknown heuristic %q", c.Heuristic))
		}
		cfg.Heuristic = h
	}

	if c.PackMode != "" {
		m, ok := bento.ParsePackMode(c.PackMode)
		if !ok {
			return nil, bento.NewInvalidConfigError(fmt.Sprintf("unknown pack_mode %q", c.PackMode))
		}
		cfg.PackMode = m
	}

	if c.Compress != nil {
		switch {
		case c.Compress.Max:
			cfg.Compress = bento.CompressMax()
		case c.Compress.Level != nil:
			cfg.Compress = bento.CompressLevel(*c.Compress.Level)
		}
	}

	return cfg, nil
}
