package solver

import (
	"context"
	"fmt"
	"time"
)

// Run starts alg from the entrance and drives it to completion. See Drive.
func (e *Engine) Run(ctx context.Context, alg Algorithm) (Result, error) {
	if err := e.Start(alg); err != nil {
		return Result{}, err
	}
	return e.Drive(ctx)
}

// Drive delivers ticks to a Running engine from a single goroutine, one per
// TickInterval, until the run ends. Ticks never overlap.
//
// Cancelling ctx calls TriggerStop; the next tick observes it and the run ends
// as OutcomeInterrupted. Exhaustion and interruption are reported through
// Result with a nil error. Returns ErrInvalidState when the engine is not Running.
func (e *Engine) Drive(ctx context.Context) (Result, error) {
	if e.State() != Running {
		return Result{}, fmt.Errorf("%w: drive while %s", ErrInvalidState, e.State())
	}
	ticker := time.NewTicker(e.opts.TickInterval)
	defer ticker.Stop()

	done := ctx.Done()
	for {
		select {
		case <-done:
			e.TriggerStop()
			done = nil
		case <-ticker.C:
			if e.Tick().Terminal() {
				return e.Result(), nil
			}
		}
	}
}
