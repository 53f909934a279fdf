// Package timer provides cancellable deferred actions.
package timer

import (
	"sync"
	"time"
)

// Handle is a one-shot deferred call that can be cancelled before it fires.
// The zero value is an idle handle.
type Handle struct {
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// Schedule arranges for fn to run after d, replacing any call that is still
// pending on this handle.
func (h *Handle) Schedule(d time.Duration, fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.timer != nil {
		h.timer.Stop()
	}
	h.seq++
	seq := h.seq
	h.timer = time.AfterFunc(d, func() {
		h.mu.Lock()
		if h.seq != seq {
			// Cancelled or rescheduled after the timer had already fired.
			h.mu.Unlock()
			return
		}
		h.timer = nil
		h.mu.Unlock()
		fn()
	})
}

// Cancel stops a pending call. It reports whether a call was pending.
func (h *Handle) Cancel() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	if h.timer == nil {
		return false
	}
	h.timer.Stop()
	h.timer = nil
	return true
}

// Pending reports whether a call is scheduled and has not yet run.
func (h *Handle) Pending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.timer != nil
}
