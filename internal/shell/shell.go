// Package shell composes the interactive parts of the site into one unit that
// a host mounts once, above its router.
package shell

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/siteshell/internal/onboarding"
	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/routing"
	"github.com/ziadkadry99/siteshell/internal/scrollnav"
)

// Options configures a Shell. Zero values select defaults.
type Options struct {
	Sender          relay.Sender
	Flags           onboarding.FlagStore
	Logger          *zap.Logger
	Routes          []scrollnav.Route
	StartPath       string
	DetailPath      string // page the onboarding modal links to
	ScrollThreshold float64
	OnboardingDelay time.Duration
	ChatResetDelay  time.Duration
}

// DefaultDetailPath is the page the onboarding modal's "learn more" opens.
const DefaultDetailPath = "/services"

// Shell owns every controller of the interactive client.
type Shell struct {
	Onboarding *onboarding.Controller
	Scroll     *scrollnav.Controller
	Viewport   *Viewport
	Menu       *MobileMenu
	Chat       *ChatWidget
	Contact    *ContactForm
	Navigator  *routing.Navigator

	reactor    *routing.Reactor
	routes     []scrollnav.Route
	detailPath string
	logger     *zap.Logger

	mu      sync.Mutex
	mounted bool
}

// New builds a Shell. Sender and Flags are required.
func New(opts Options) (*Shell, error) {
	if opts.Sender == nil {
		return nil, fmt.Errorf("shell: sender is required")
	}
	if opts.Flags == nil {
		return nil, fmt.Errorf("shell: flag store is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(opts.Routes) == 0 {
		opts.Routes = scrollnav.DefaultRoutes
	}
	if opts.StartPath == "" {
		opts.StartPath = opts.Routes[0].Path
	}
	if opts.DetailPath == "" {
		opts.DetailPath = DefaultDetailPath
	}

	scroll := scrollnav.NewController(opts.ScrollThreshold)
	viewport := NewViewport(scroll)
	menu := &MobileMenu{}

	s := &Shell{
		Onboarding: onboarding.NewController(opts.Flags, opts.OnboardingDelay, opts.Logger.Named("onboarding")),
		Scroll:     scroll,
		Viewport:   viewport,
		Menu:       menu,
		Chat:       NewChatWidget(opts.Sender, opts.ChatResetDelay, opts.Logger.Named("chat")),
		Contact:    NewContactForm(opts.Sender, opts.Logger.Named("contact")),
		Navigator:  routing.NewNavigator(opts.StartPath),
		reactor:    routing.NewReactor(viewport, opts.Logger.Named("routing"), menu),
		routes:     append([]scrollnav.Route(nil), opts.Routes...),
		detailPath: opts.DetailPath,
		logger:     opts.Logger,
	}
	return s, nil
}

// Mount starts the shell: the route reactor begins listening and the
// onboarding modal is scheduled for first-time visitors.
func (s *Shell) Mount(ctx context.Context) error {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return nil
	}
	s.mounted = true
	s.mu.Unlock()

	s.reactor.Attach(s.Navigator)
	if err := s.Onboarding.Mount(ctx); err != nil {
		return fmt.Errorf("mounting onboarding: %w", err)
	}
	s.logger.Debug("shell mounted", zap.String("path", s.Navigator.Current()))
	return nil
}

// Unmount cancels every timer and listener the shell started.
func (s *Shell) Unmount() {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = false
	s.mu.Unlock()

	s.reactor.Detach()
	s.Onboarding.Unmount()
	s.Chat.teardown()
	s.Contact.teardown()
	s.logger.Debug("shell unmounted")
}

// Wait blocks until all relay calls started by the forms have returned.
func (s *Shell) Wait() {
	s.Chat.Controller().Wait()
	s.Contact.Controller().Wait()
}

// Navigate moves to path; the reactor handles scroll and overlay resets.
func (s *Shell) Navigate(path string) bool {
	return s.Navigator.Navigate(path)
}

// Routes returns the navigation routes.
func (s *Shell) Routes() []scrollnav.Route {
	return append([]scrollnav.Route(nil), s.routes...)
}

// Layout returns the navigation layout for the current scroll mode. Its info
// action opens the onboarding modal.
func (s *Shell) Layout() scrollnav.Layout {
	return scrollnav.LayoutFor(s.Scroll.Mode(), s.routes, s.Onboarding.OpenModal)
}

// LearnMore closes the onboarding modal and navigates to its detail page.
func (s *Shell) LearnMore() {
	s.Onboarding.CloseModal()
	s.Navigate(s.detailPath)
}
