// Command bento packs sprite images into texture atlases, emitting a
// JSON manifest, Godot .tres resources, or a TexturePacker .tpsheet.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bento-atlas/bento"
	"github.com/bento-atlas/bento/internal/godot"
	"github.com/bento-atlas/bento/internal/imageio"
	"github.com/bento-atlas/bento/internal/loader"
	"github.com/bento-atlas/bento/internal/tpsheet"
)

var log = logrus.New()

// commonFlags holds the options shared by json/godot/tpsheet.
type commonFlags struct {
	output       string
	name         string
	maxWidth     int
	maxHeight    int
	padding      int
	noTrim       bool
	trimMargin   int
	heuristic    string
	opaque       bool
	pot          bool
	extrude      int
	verbose      bool
	resizeWidth  int
	resizeScale  float64
	packMode     string
	compress     string
	filenameOnly bool
	configFile   string
	godotResPath string
}

func registerCommonFlags(cmd *cobra.Command, f *commonFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", ".", "output directory for atlas files")
	cmd.Flags().StringVarP(&f.name, "name", "n", "atlas", "base name for output files")
	cmd.Flags().IntVar(&f.maxWidth, "max-width", 4096, "maximum atlas width in pixels")
	cmd.Flags().IntVar(&f.maxHeight, "max-height", 4096, "maximum atlas height in pixels")
	cmd.Flags().IntVarP(&f.padding, "padding", "p", 1, "padding between sprites in pixels")
	cmd.Flags().BoolVar(&f.noTrim, "no-trim", false, "disable sprite trimming")
	cmd.Flags().IntVar(&f.trimMargin, "trim-margin", 0, "keep N pixels of transparent border after trimming")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "best-short-side-fit", "packing heuristic")
	cmd.Flags().BoolVar(&f.opaque, "opaque", false, "output RGB instead of RGBA")
	cmd.Flags().BoolVar(&f.pot, "pot", false, "force power-of-two atlas dimensions")
	cmd.Flags().IntVar(&f.extrude, "extrude", 0, "extrude sprite edges by N pixels")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().IntVar(&f.resizeWidth, "resize-width", 0, "resize to a target width in pixels")
	cmd.Flags().Float64Var(&f.resizeScale, "resize-scale", 0, "resize by a scale factor")
	cmd.Flags().StringVar(&f.packMode, "pack-mode", "single", "single or best")
	cmd.Flags().StringVar(&f.compress, "compress", "", "PNG compression: off, 0-6 or max")
	cmd.Flags().BoolVar(&f.filenameOnly, "filename-only", false, "use only the file's base name as the sprite name")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "load options from a JSON config file")
	cmd.Flags().StringVar(&f.godotResPath, "godot-res-path", "", "Godot resource path prefix (godot subcommand only)")
}

var cmdRoot = &cobra.Command{
	Use:           "bento",
	Short:         "Bento packs sprites into texture atlases.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func newPackCommand(use, short, format string) *cobra.Command {
	f := &commonFlags{}
	cmd := &cobra.Command{
		Use:   use + " <input...>",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return runPack(args, f, format)
		},
	}
	registerCommonFlags(cmd, f)
	return cmd
}

func main() {
	cmdRoot.AddCommand(
		newPackCommand("json", "Output JSON metadata (recommended for Godot)", "json"),
		newPackCommand("godot", "Output individual Godot .tres files", "godot"),
		newPackCommand("tpsheet", "Output TexturePacker .tpsheet metadata", "tpsheet"),
		newGuiCommand(),
	)
	if err := cmdRoot.Execute(); err != nil {
		var berr *bento.Error
		if errors.As(err, &berr) {
			log.Error(err)
			os.Exit(berr.Kind.ExitCode())
		}
		log.Error(err)
		os.Exit(1)
	}
}

func runPack(args []string, f *commonFlags, format string) error {
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	inputs := args
	outputDir := f.output
	name := f.name

	cfg := bento.DefaultConfig()
	cfg.MaxWidth = f.maxWidth
	cfg.MaxHeight = f.maxHeight
	cfg.Padding = f.padding
	cfg.Trim = !f.noTrim
	cfg.TrimMargin = f.trimMargin
	cfg.Opaque = f.opaque
	cfg.POT = f.pot
	cfg.Extrude = f.extrude

	if f.noTrim && f.trimMargin > 0 {
		log.Warn("--trim-margin has no effect with --no-trim; ignoring")
	}

	if h, ok := bento.ParseHeuristic(f.heuristic); ok {
		cfg.Heuristic = h
	} else {
		return bento.NewInvalidConfigError(fmt.Sprintf("unknown heuristic %q", f.heuristic))
	}

	if m, ok := bento.ParsePackMode(f.packMode); ok {
		cfg.PackMode = m
	} else {
		return bento.NewInvalidConfigError(fmt.Sprintf("unknown pack-mode %q", f.packMode))
	}

	if f.resizeWidth > 0 && f.resizeScale > 0 {
		return bento.NewInvalidConfigError("--resize-width and --resize-scale are mutually exclusive")
	}
	if f.resizeWidth > 0 {
		target := bento.ResizeByWidth(f.resizeWidth)
		cfg.Resize = &target
	} else if f.resizeScale > 0 {
		target := bento.ResizeByScale(f.resizeScale)
		cfg.Resize = &target
	}

	if f.compress != "" && f.compress != "off" {
		if f.compress == "max" {
			cfg.Compress = bento.CompressMax()
		} else {
			level, err := strconv.Atoi(f.compress)
			if err != nil || level < 0 || level > 6 {
				return bento.NewInvalidConfigError(fmt.Sprintf("--compress must be %q, 0-6 or %q", "off", "max"))
			}
			cfg.Compress = bento.CompressLevel(level)
		}
	}

	if f.configFile != "" {
		fc, configDir, err := loadConfigFile(f.configFile)
		if err != nil {
			return err
		}
		cfg, err = fc.toPackerConfig()
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			for _, p := range fc.Input {
				inputs = append(inputs, filepath.Join(configDir, p))
			}
		}
		if f.output == "." && fc.OutputDir != "" {
			outputDir = filepath.Join(configDir, fc.OutputDir)
		}
		if f.name == "atlas" && fc.Name != "" {
			name = fc.Name
		}
		if fc.Format != "" {
			format = fc.Format
		}
		f.filenameOnly = fc.FilenameOnly
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no input files given")
	}

	sprites, err := loader.Load(inputs, "", loader.Options{FilenameOnly: f.filenameOnly, Log: log})
	if err != nil {
		return err
	}

	result, err := bento.Pack(sprites, cfg, name, nil, nil)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for idx, atlas := range result.Atlases {
		path := filepath.Join(outputDir, result.Manifest.Atlases[idx].ImageName)
		if err := writeAtlasImage(path, atlas, cfg); err != nil {
			return err
		}
		log.Infof("wrote %s", path)
	}

	switch format {
	case "json":
		return writeJSONManifest(outputDir, name, result.Manifest)
	case "godot":
		return writeGodotResources(outputDir, f.godotResPath, result.Manifest)
	case "tpsheet":
		return writeTpsheet(outputDir, name, result.Manifest)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeAtlasImage(path string, atlas *bento.AtlasImage, cfg *bento.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return bento.NewEncodeError(path, err)
	}
	defer f.Close()

	level := imageio.DefaultCompression
	if cfg.Compress.Enabled() {
		if cfg.Compress.Max() {
			level = imageio.BestCompression
		} else if cfg.Compress.Level() == 0 {
			level = imageio.NoCompression
		} else {
			level = imageio.BestSpeed
		}
	}

	if err := imageio.EncodePNG(f, atlas.Width, atlas.Height, atlas.Pix, atlas.Opaque, level); err != nil {
		return bento.NewEncodeError(path, err)
	}
	return nil
}

func writeJSONManifest(outputDir, name string, m bento.Manifest) error {
	data, err := json.MarshalIndent(jsonManifest{m}, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(outputDir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	log.Infof("wrote %s", path)
	return nil
}

// jsonManifest is the wire shape for the JSON serializer (spec §3).
type jsonManifest struct{ m bento.Manifest }

func (jm jsonManifest) MarshalJSON() ([]byte, error) {
	type meta struct {
		App     string `json:"app"`
		Version string `json:"version"`
		Format  string `json:"format"`
	}
	type frame struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	}
	type size struct {
		W int `json:"w"`
		H int `json:"h"`
	}
	type spriteEntry struct {
		Name             string `json:"name"`
		Frame            frame  `json:"frame"`
		Trimmed          bool   `json:"trimmed"`
		SpriteSourceSize frame  `json:"spriteSourceSize"`
		SourceSize       size   `json:"sourceSize"`
	}
	type atlasEntry struct {
		Image   string        `json:"image"`
		Size    size          `json:"size"`
		Sprites []spriteEntry `json:"sprites"`
	}
	type doc struct {
		Meta    meta         `json:"meta"`
		Atlases []atlasEntry `json:"atlases"`
	}

	d := doc{Meta: meta{App: "bento", Version: "1.0", Format: jm.m.Format}}
	for _, a := range jm.m.Atlases {
		ae := atlasEntry{Image: a.ImageName, Size: size{W: a.Width, H: a.Height}}
		for _, s := range a.Sprites {
			ae.Sprites = append(ae.Sprites, spriteEntry{
				Name:             s.Name,
				Frame:            frame{s.Frame.X, s.Frame.Y, s.Frame.W, s.Frame.H},
				Trimmed:          s.Trimmed,
				SpriteSourceSize: frame{s.SpriteSourceSize.X, s.SpriteSourceSize.Y, s.SpriteSourceSize.W, s.SpriteSourceSize.H},
				SourceSize:       size{s.SourceSize.W, s.SourceSize.H},
			})
		}
		d.Atlases = append(d.Atlases, ae)
	}
	return json.Marshal(d)
}

func writeGodotResources(outputDir, resPath string, m bento.Manifest) error {
	for _, res := range godot.Render(m, resPath) {
		path := filepath.Join(outputDir, res.SpriteName+".tres")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(res.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

func writeTpsheet(outputDir, name string, m bento.Manifest) error {
	doc := tpsheet.Build(m)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(outputDir, name+".tpsheet")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write tpsheet: %w", err)
	}
	log.Infof("wrote %s", path)
	return nil
}
