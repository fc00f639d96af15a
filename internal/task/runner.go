// Package task runs long-latency daemon calls off the UI event loop and
// marshals their results back onto it.
package task

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"netlab-designer/internal/logger"
)

// ErrBusy reports an attempt to start a task while one is still in flight.
// The UI disables the triggering controls for the duration, so this is the
// runner's backstop rather than a user-visible condition.
var ErrBusy = errors.New("task already in flight")

// Dispatch schedules a function onto the UI event loop. Production wiring
// passes fyne.Do; tests substitute a deterministic queue.
type Dispatch func(func())

// Progress is the indicator shown while a task runs. Show is called on the
// caller's (UI) context, Hide through Dispatch.
type Progress interface {
	Show(label string)
	Hide()
}

// Runner executes one operation at a time on a worker goroutine. The
// completion callback always runs through Dispatch, after the progress
// indicator has been hidden, so it never races UI event handling.
type Runner struct {
	dispatch Dispatch
	progress Progress
	log      logger.Logger
	busy     atomic.Bool
}

func NewRunner(dispatch Dispatch, progress Progress, log logger.Logger) *Runner {
	return &Runner{dispatch: dispatch, progress: progress, log: log}
}

// Busy reports whether an operation is in flight.
func (r *Runner) Busy() bool {
	return r.busy.Load()
}

// Run starts op on a worker goroutine and delivers its error (nil on
// success) to onComplete on the UI context. Failures from op cross the
// goroutine boundary as data; the runner does not interpret them.
func (r *Runner) Run(label string, op func(context.Context) error, onComplete func(error)) error {
	if !r.busy.CompareAndSwap(false, true) {
		return fmt.Errorf("%s: %w", label, ErrBusy)
	}

	r.progress.Show(label)
	r.log.Info("task", "started", map[string]interface{}{"label": label})
	started := time.Now()

	go func() {
		err := op(context.Background())
		r.dispatch(func() {
			r.progress.Hide()
			r.busy.Store(false)
			if err != nil {
				r.log.Warning("task", "finished with failure", map[string]interface{}{
					"label":    label,
					"duration": time.Since(started).String(),
					"reason":   err.Error(),
				})
			} else {
				r.log.Info("task", "finished", map[string]interface{}{
					"label":    label,
					"duration": time.Since(started).String(),
				})
			}
			onComplete(err)
		})
	}()
	return nil
}
