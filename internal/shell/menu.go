package shell

import "sync"

// MobileMenu is the overlay menu shown on narrow screens.
type MobileMenu struct {
	mu   sync.Mutex
	open bool
}

func (m *MobileMenu) Open() {
	m.mu.Lock()
	m.open = true
	m.mu.Unlock()
}

func (m *MobileMenu) Close() {
	m.mu.Lock()
	m.open = false
	m.mu.Unlock()
}

func (m *MobileMenu) Toggle() {
	m.mu.Lock()
	m.open = !m.open
	m.mu.Unlock()
}

func (m *MobileMenu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
