package gui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/aarzilli/nucular"
	nucfont "github.com/aarzilli/nucular/font"
	"github.com/aarzilli/nucular/style"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bento-atlas/bento"
)

// state is the UI's mutable view model, updated from the worker's
// progress/result channels on each frame.
type state struct {
	sprites []*bento.Sprite
	cfg     *bento.Config
	baseName string

	worker *worker

	packing  bool
	progress progressMsg
	result   *bento.Result
	err      error

	selectedAtlas int
	log           *logrus.Logger
}

// Run launches the preview window, blocking until it is closed. cfg
// (defaulted if nil) seeds the initial packer configuration; sprites
// is the set already loaded by the caller (typically via internal/loader).
func Run(sprites []*bento.Sprite, cfg *bento.Config, baseName string, log *logrus.Logger) {
	if cfg == nil {
		cfg = bento.DefaultConfig()
	}
	if log == nil {
		log = logrus.New()
	}

	st := &state{sprites: sprites, cfg: cfg, baseName: baseName, worker: newWorker(), log: log}

	wnd := nucular.NewMasterWindowSize(0, "Bento", image.Point{X: 900, Y: 600}, func(w *nucular.Window) {
		update(w, st)
	})

	sty := style.FromTheme(style.DarkTheme, 1.0)
	if face, err := nucfont.NewFace(goregular.TTF, 16); err == nil {
		sty.Font = face
	} else {
		log.Warnf("gui: falling back to default font: %v", err)
	}
	wnd.SetStyle(sty)
	wnd.Main()
}

func update(w *nucular.Window, st *state) {
	drainWorker(st)

	w.Row(20).Dynamic(1)
	w.Label("Bento sprite atlas preview", "LC")

	w.Row(20).Dynamic(3)
	w.LabelColored(pluralize(len(st.sprites), "sprite"), "LC", color.RGBA{200, 200, 200, 255})
	if st.packing {
		w.LabelColored("packing…", "LC", color.RGBA{230, 200, 80, 255})
	} else if st.err != nil {
		w.LabelColored("error: "+st.err.Error(), "LC", color.RGBA{230, 80, 80, 255})
	} else if st.result != nil {
		w.LabelColored(pluralize(len(st.result.Atlases), "atlas"), "LC", color.RGBA{90, 200, 110, 255})
	}

	w.Row(30).Dynamic(3)
	if w.ButtonText("Pack") && !st.packing {
		st.packing = true
		st.err = nil
		st.worker.submit(job{sprites: st.sprites, cfg: st.cfg, baseName: st.baseName})
	}
	if w.ButtonText("Cancel") {
		st.worker.Cancel()
	}
	if w.ButtonText("Best-fit mode") {
		st.cfg.PackMode = bento.PackModeBest
	}

	if st.result != nil && len(st.result.Atlases) > 0 {
		w.Row(20).Dynamic(1)
		w.PropertyInt("atlas", 0, &st.selectedAtlas, len(st.result.Atlases)-1, 1, 1)

		if w.TreePush(nucular.TreeTab, "Preview", true) {
			w.Row(400).Dynamic(1)
			img := thumbnail(st.result.Atlases[st.selectedAtlas])
			w.Image(img)
			w.TreePop()
		}
	}
}

func drainWorker(st *state) {
	for {
		select {
		case p := <-st.worker.progress:
			st.progress = p
		case r := <-st.worker.results:
			st.packing = false
			st.result = r.result
			st.err = r.err
		default:
			return
		}
	}
}

// thumbnail converts a composed atlas into an *image.RGBA nucular can
// draw directly, expanding opaque RGB8 buffers back to RGBA8.
func thumbnail(atlas *bento.AtlasImage) *image.RGBA {
	if !atlas.Opaque {
		return &image.RGBA{Pix: atlas.Pix, Stride: atlas.Width * 4, Rect: image.Rect(0, 0, atlas.Width, atlas.Height)}
	}

	out := image.NewRGBA(image.Rect(0, 0, atlas.Width, atlas.Height))
	for i, j := 0, 0; i < len(atlas.Pix); i, j = i+3, j+4 {
		out.Pix[j] = atlas.Pix[i]
		out.Pix[j+1] = atlas.Pix[i+1]
		out.Pix[j+2] = atlas.Pix[i+2]
		out.Pix[j+3] = 255
	}
	return out
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
