// Package loader resolves sprite input patterns (literal paths,
// directories, globs) into decoded Sprites.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/bento-atlas/bento"
	"github.com/bento-atlas/bento/internal/imageio"
)

var supportedExt = map[string]bool{
	".png":  true,
	".webp": true,
	".tga":  true,
}

// Options controls how raw paths turn into logical sprite names.
type Options struct {
	FilenameOnly bool // drop directory component from the logical name
	Log          *logrus.Logger
}

// Resolve expands patterns (literal file paths, directories walked
// recursively, or glob patterns understood by doublestar) into a
// sorted, de-duplicated list of image file paths.
func Resolve(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	add := func(path string) {
		if !seen[path] && supportedExt[strings.ToLower(filepath.Ext(path))] {
			seen[path] = true
			out = append(out, path)
		}
	}

	for _, pattern := range patterns {
		info, err := os.Stat(pattern)
		switch {
		case err == nil && info.IsDir():
			if walkErr := walkDir(pattern, add); walkErr != nil {
				return nil, walkErr
			}
		case err == nil:
			add(pattern)
		default:
			matches, globErr := doublestar.FilepathGlob(pattern)
			if globErr != nil {
				return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, globErr)
			}
			for _, m := range matches {
				mi, statErr := os.Stat(m)
				if statErr == nil && mi.IsDir() {
					if walkErr := walkDir(m, add); walkErr != nil {
						return nil, walkErr
					}
					continue
				}
				add(m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

func walkDir(root string, add func(string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			add(path)
		}
		return nil
	})
}

// Load resolves patterns and decodes every matching file into a Sprite.
// The logical sprite name is the path with its extension stripped,
// made relative to baseDir; if opts.FilenameOnly, only the base name
// (no directory component) is kept.
func Load(patterns []string, baseDir string, opts Options) ([]*bento.Sprite, error) {
	paths, err := Resolve(patterns)
	if err != nil {
		return nil, err
	}

	if opts.Log != nil {
		opts.Log.Debugf("loader: resolved %d input file(s)", len(paths))
	}

	sprites := make([]*bento.Sprite, 0, len(paths))
	for _, path := range paths {
		s, err := loadOne(path, baseDir, opts)
		if err != nil {
			return nil, err
		}
		sprites = append(sprites, s)
	}

	return sprites, nil
}

func loadOne(path, baseDir string, opts Options) (*bento.Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bento.NewDecodeError(path, err)
	}
	defer f.Close()

	img, err := imageio.DecodeFile(path, f)
	if err != nil {
		return nil, bento.NewDecodeError(path, err)
	}

	return &bento.Sprite{
		Name:   spriteName(path, baseDir, opts.FilenameOnly),
		Width:  img.Rect.Dx(),
		Height: img.Rect.Dy(),
		Pix:    img.Pix,
	}, nil
}

func spriteName(path, baseDir string, filenameOnly bool) string {
	name := path
	if baseDir != "" {
		if rel, err := filepath.Rel(baseDir, path); err == nil {
			name = rel
		}
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if filenameOnly {
		name = filepath.Base(name)
	}
	return filepath.ToSlash(name)
}
