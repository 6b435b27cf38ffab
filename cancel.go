package bento

import "sync/atomic"

// CancelFlag is a one-shot, monotonic true→observed cooperative cancel
// signal (spec §5). The zero value is ready to use. Safe to share
// across goroutines: a GUI worker sets it from its own goroutine while
// the core polls it from pack()'s goroutine.
type CancelFlag struct {
	flag atomic.Bool
}

// Cancel requests cancellation. Idempotent.
func (c *CancelFlag) Cancel() {
	if c != nil {
		c.flag.Store(true)
	}
}

// Cancelled reports whether cancellation has been requested.
func (c *CancelFlag) Cancelled() bool {
	return c != nil && c.flag.Load()
}

// ProgressFunc is invoked between sprite-level steps: once per trial
// start, once per sprite insertion within a trial, and once per sprite
// blit in the composer. stage describes the checkpoint ("trial",
// "insert", "blit"); done/total give coarse progress.
type ProgressFunc func(stage string, done, total int)

func reportProgress(cb ProgressFunc, stage string, done, total int) {
	if cb != nil {
		cb(stage, done, total)
	}
}
