package solver

import (
	"sync"
	"time"
)

// stopwatch measures one run. It is shared between the tick goroutine and
// whoever calls TriggerStop, hence the mutex.
type stopwatch struct {
	mu      sync.Mutex
	started time.Time
	elapsed time.Duration
	running bool
}

// start resets and starts the watch at now.
func (w *stopwatch) start(now time.Time) {
	w.mu.Lock()
	w.started, w.elapsed, w.running = now, 0, true
	w.mu.Unlock()
}

// stop freezes the watch at now. Only the first stop of a run counts.
func (w *stopwatch) stop(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return false
	}
	w.elapsed, w.running = now.Sub(w.started), false
	return true
}

// read returns the frozen value, or the running value at now.
func (w *stopwatch) read(now time.Time) time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return now.Sub(w.started)
	}
	return w.elapsed
}
