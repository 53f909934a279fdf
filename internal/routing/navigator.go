// Package routing tracks the current page and reacts to page changes.
package routing

import (
	"sync"

	"github.com/ziadkadry99/siteshell/internal/event"
)

// Snapshot is the navigation state observed after a path change.
type Snapshot struct {
	CurrentPath  string
	PreviousPath string
}

// Navigator stands in for the host router. It publishes a Snapshot each time
// the path actually changes.
type Navigator struct {
	mu      sync.Mutex
	current string
	bus     event.Bus[Snapshot]
}

// NewNavigator creates a Navigator positioned at path.
func NewNavigator(path string) *Navigator {
	return &Navigator{current: path}
}

// Navigate moves to path. It reports whether the path changed.
func (n *Navigator) Navigate(path string) bool {
	n.mu.Lock()
	if path == n.current {
		n.mu.Unlock()
		return false
	}
	snap := Snapshot{CurrentPath: path, PreviousPath: n.current}
	n.current = path
	n.bus.Post(snap)
	n.mu.Unlock()

	n.bus.Flush()
	return true
}

// Current returns the current path.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Subscribe registers fn for every path change.
func (n *Navigator) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return n.bus.Subscribe(fn)
}
