package routing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeScroller struct {
	x, y  float64
	calls int
}

func (f *fakeScroller) ScrollTo(x, y float64) {
	f.x, f.y = x, y
	f.calls++
}

type fakeOverlay struct{ open bool }

func (f *fakeOverlay) Close() { f.open = false }

func TestNavigatorPublishesChanges(t *testing.T) {
	nav := NewNavigator("/a")
	var got []Snapshot
	nav.Subscribe(func(s Snapshot) { got = append(got, s) })

	if !nav.Navigate("/b") {
		t.Error("Navigate to a new path should report a change")
	}
	if nav.Navigate("/b") {
		t.Error("Navigate to the same path should not report a change")
	}
	nav.Navigate("/c")

	want := []Snapshot{
		{CurrentPath: "/b", PreviousPath: "/a"},
		{CurrentPath: "/c", PreviousPath: "/b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshots (-want +got):\n%s", diff)
	}
	if nav.Current() != "/c" {
		t.Errorf("Current = %q", nav.Current())
	}
}

func TestReactorResetsScrollAndClosesOverlays(t *testing.T) {
	scroller := &fakeScroller{x: 10, y: 640}
	menu := &fakeOverlay{open: true}
	nav := NewNavigator("/a")

	r := NewReactor(scroller, nil, menu)
	r.Attach(nav)
	defer r.Detach()

	nav.Navigate("/b")

	if scroller.x != 0 || scroller.y != 0 {
		t.Errorf("scroll = (%v, %v), want origin", scroller.x, scroller.y)
	}
	if menu.open {
		t.Error("menu should be closed after navigation")
	}
}

func TestReactorIgnoresSamePath(t *testing.T) {
	scroller := &fakeScroller{y: 300}
	nav := NewNavigator("/a")
	r := NewReactor(scroller, nil)
	r.Attach(nav)

	nav.Navigate("/a")
	r.React(Snapshot{CurrentPath: "/a", PreviousPath: "/a"})

	if scroller.calls != 0 {
		t.Errorf("ScrollTo called %d times, want 0", scroller.calls)
	}
}

func TestReactorDetach(t *testing.T) {
	scroller := &fakeScroller{}
	nav := NewNavigator("/")
	r := NewReactor(scroller, nil)
	r.Attach(nav)
	r.Attach(nav)
	r.Detach()

	nav.Navigate("/about")
	if scroller.calls != 0 {
		t.Errorf("detached reactor reacted %d times", scroller.calls)
	}
}
