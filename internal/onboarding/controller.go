// Package onboarding holds the process-wide state of the one-time
// informational modal shown to first-time visitors.
package onboarding

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/event"
	"github.com/ziadkadry99/siteshell/internal/timer"
)

// DefaultDelay is how long after mount the modal opens for a new visitor.
const DefaultDelay = 2000 * time.Millisecond

// Controller is shared by reference with every component that can open or
// close the modal.
type Controller struct {
	mu      sync.Mutex
	open    bool
	mounted bool

	store  FlagStore
	delay  time.Duration
	logger *zap.Logger

	autoOpen timer.Handle
	bus      event.Bus[bool]
}

// NewController creates a closed Controller. A non-positive delay selects
// DefaultDelay.
func NewController(store FlagStore, delay time.Duration, logger *zap.Logger) *Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: store, delay: delay, logger: logger}
}

// Mount reads the durable flag and, for a visitor who has not seen the modal,
// schedules it to open after the configured delay. Mounting twice is a no-op.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return nil
	}
	c.mounted = true
	c.mu.Unlock()

	seen, err := c.store.Seen(ctx)
	if err != nil {
		// An unreadable flag disables the auto-open.
		c.logger.Warn("reading onboarding flag", zap.Error(err))
		return err
	}
	if seen {
		c.logger.Debug("onboarding already seen, skipping auto-open")
		return nil
	}

	c.mu.Lock()
	if c.mounted {
		c.autoOpen.Schedule(c.delay, c.OpenModal)
	}
	c.mu.Unlock()
	return nil
}

// Unmount cancels a pending auto-open.
func (c *Controller) Unmount() {
	c.mu.Lock()
	c.mounted = false
	c.autoOpen.Cancel()
	c.mu.Unlock()
}

// IsOpen reports whether the modal is showing.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// OpenModal shows the modal. It works whether or not the visitor has seen it
// before and never touches the durable flag.
func (c *Controller) OpenModal() {
	c.mu.Lock()
	c.autoOpen.Cancel()
	changed := !c.open
	c.open = true
	if changed {
		c.bus.Post(true)
	}
	c.mu.Unlock()
	c.bus.Flush()
}

// CloseModal hides the modal and records that the visitor has seen it,
// whatever the reason for closing. Calling it again is harmless.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	c.autoOpen.Cancel()
	changed := c.open
	c.open = false
	if changed {
		c.bus.Post(false)
	}
	c.mu.Unlock()
	c.bus.Flush()

	if err := c.store.MarkSeen(context.Background()); err != nil {
		c.logger.Warn("persisting onboarding flag", zap.Error(err))
	}
}

// AutoOpenPending reports whether the deferred open is still scheduled.
func (c *Controller) AutoOpenPending() bool {
	return c.autoOpen.Pending()
}

// Subscribe registers fn to be called with the new open state on change.
func (c *Controller) Subscribe(fn func(open bool)) (unsubscribe func()) {
	return c.bus.Subscribe(fn)
}
