package scrollnav

import (
	"sync"

	"github.com/ziadkadry99/siteshell/internal/event"
)

// Controller tracks the last observed scroll offset and the mode derived from
// it. Observe is meant to be called from a passive scroll listener: it never
// blocks on anything but the synchronous notification of mode subscribers.
type Controller struct {
	mu         sync.Mutex
	threshold  float64
	offset     float64
	mode       Mode
	observed   bool
	recomputes int
	bus        event.Bus[Mode]
}

// NewController creates a Controller at offset 0. A non-positive threshold
// selects DefaultThreshold.
func NewController(threshold float64) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Controller{threshold: threshold, mode: ModeFor(0, threshold)}
}

// Observe records a scroll offset. The mode is re-derived only when the
// offset differs from the previous one, and subscribers hear about it only
// when the mode flips.
func (c *Controller) Observe(offset float64) {
	c.mu.Lock()
	if c.observed && offset == c.offset {
		c.mu.Unlock()
		return
	}
	c.observed = true
	c.offset = offset
	c.recomputes++

	next := ModeFor(offset, c.threshold)
	changed := next != c.mode
	c.mode = next
	if changed {
		c.bus.Post(next)
	}
	c.mu.Unlock()

	if changed {
		c.bus.Flush()
	}
}

// Mode returns the current chrome mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Offset returns the last observed offset.
func (c *Controller) Offset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Threshold returns the switching threshold.
func (c *Controller) Threshold() float64 { return c.threshold }

// Subscribe registers fn to be called with the new mode on every flip.
func (c *Controller) Subscribe(fn func(Mode)) (unsubscribe func()) {
	return c.bus.Subscribe(fn)
}
