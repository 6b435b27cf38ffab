// Package gui provides an interactive preview window for Bento,
// driven by a background pack worker so the UI thread never blocks.
package gui

import (
	"github.com/bento-atlas/bento"
)

// job is one pack request sent to the worker.
type job struct {
	sprites  []*bento.Sprite
	cfg      *bento.Config
	baseName string
}

// progressMsg is a UI-thread-bound progress tick.
type progressMsg struct {
	stage      string
	done, total int
}

// resultMsg carries a finished pack's outcome back to the UI thread.
type resultMsg struct {
	result *bento.Result
	err    error
}

// worker runs pack jobs on a background goroutine, one at a time,
// reporting progress and the final result over channels. A fresh
// CancelFlag is armed for each job so the UI's Cancel button only
// affects the job it was pressed during.
type worker struct {
	jobs     chan job
	progress chan progressMsg
	results  chan resultMsg
	cancel   *bento.CancelFlag
}

func newWorker() *worker {
	w := &worker{
		jobs:     make(chan job, 1),
		progress: make(chan progressMsg, 64),
		results:  make(chan resultMsg, 1),
	}
	go w.run()
	return w
}

func (w *worker) run() {
	for j := range w.jobs {
		cancel := &bento.CancelFlag{}
		w.cancel = cancel

		report := func(stage string, done, total int) {
			select {
			case w.progress <- progressMsg{stage: stage, done: done, total: total}:
			default:
			}
		}

		result, err := bento.Pack(j.sprites, j.cfg, j.baseName, cancel, report)
		w.results <- resultMsg{result: result, err: err}
	}
}

// submit enqueues a pack job, dropping any job already queued (the UI
// only ever wants the latest request in flight).
func (w *worker) submit(j job) {
	select {
	case <-w.jobs:
	default:
	}
	w.jobs <- j
}

// Cancel requests cooperative cancellation of whatever job is running.
func (w *worker) Cancel() {
	if w.cancel != nil {
		w.cancel.Cancel()
	}
}
