package routing

import "go.uber.org/zap"

// Scroller moves the viewport.
type Scroller interface {
	ScrollTo(x, y float64)
}

// Overlay is a transient surface closed on navigation, such as the mobile
// menu.
type Overlay interface {
	Close()
}

// Reactor scrolls to the top and closes its overlays whenever the path
// changes. It resets nothing else.
type Reactor struct {
	scroller Scroller
	overlays []Overlay
	logger   *zap.Logger
	stop     func()
}

// NewReactor creates a Reactor. It does nothing until Attach is called.
func NewReactor(scroller Scroller, logger *zap.Logger, overlays ...Overlay) *Reactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reactor{scroller: scroller, overlays: overlays, logger: logger}
}

// Attach subscribes the reactor to nav. Attaching again replaces the previous
// subscription.
func (r *Reactor) Attach(nav *Navigator) {
	r.Detach()
	r.stop = nav.Subscribe(r.React)
}

// Detach removes the subscription.
func (r *Reactor) Detach() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

// React applies the route-change side effects for snap.
func (r *Reactor) React(snap Snapshot) {
	if snap.CurrentPath == snap.PreviousPath {
		return
	}
	r.logger.Debug("route changed",
		zap.String("from", snap.PreviousPath),
		zap.String("to", snap.CurrentPath))

	r.scroller.ScrollTo(0, 0)
	for _, o := range r.overlays {
		o.Close()
	}
}
