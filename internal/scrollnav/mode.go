// Package scrollnav derives the navigation chrome mode from the viewport
// scroll offset and builds the layout rendered for each mode.
package scrollnav

// DefaultThreshold is the vertical offset past which the chrome turns compact.
const DefaultThreshold = 100

// Mode is the navigation chrome mode.
type Mode int

const (
	Expanded Mode = iota
	Compact
)

func (m Mode) String() string {
	if m == Compact {
		return "compact"
	}
	return "expanded"
}

// ModeFor returns Compact when offset is strictly greater than threshold and
// Expanded otherwise. There is no hysteresis band.
func ModeFor(offset, threshold float64) Mode {
	if offset > threshold {
		return Compact
	}
	return Expanded
}
