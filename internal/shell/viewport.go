package shell

import (
	"sync"

	"github.com/ziadkadry99/siteshell/internal/scrollnav"
)

// Viewport holds the page scroll position and feeds every vertical change to
// the scroll navigation controller.
type Viewport struct {
	mu     sync.Mutex
	x, y   float64
	maxY   float64 // 0 means unbounded
	scroll *scrollnav.Controller
}

// NewViewport creates a Viewport at the origin.
func NewViewport(scroll *scrollnav.Controller) *Viewport {
	return &Viewport{scroll: scroll}
}

// SetContentHeight bounds vertical scrolling to [0, maxY].
func (v *Viewport) SetContentHeight(maxY float64) {
	v.mu.Lock()
	v.maxY = maxY
	v.mu.Unlock()
}

// ScrollTo moves to (x, y), clamped to the scrollable area.
func (v *Viewport) ScrollTo(x, y float64) {
	v.mu.Lock()
	v.x = clamp(x, 0)
	v.y = clamp(y, v.maxY)
	y = v.y
	v.mu.Unlock()

	v.scroll.Observe(y)
}

// ScrollBy moves vertically by dy.
func (v *Viewport) ScrollBy(dy float64) {
	v.mu.Lock()
	x, y := v.x, v.y+dy
	v.mu.Unlock()
	v.ScrollTo(x, y)
}

// Position returns the current offsets.
func (v *Viewport) Position() (x, y float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.x, v.y
}

func clamp(val, max float64) float64 {
	if val < 0 {
		return 0
	}
	if max > 0 && val > max {
		return max
	}
	return val
}
