package scrollnav

// Route is one navigation link.
type Route struct {
	Path  string
	Label string
}

// DefaultRoutes are the site's top-level pages.
var DefaultRoutes = []Route{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/services", Label: "Services"},
	{Path: "/contact", Label: "Contact"},
}

// Alignment is where the bar sits horizontally.
type Alignment string

const (
	AlignFull  Alignment = "full-width"
	AlignRight Alignment = "right"
)

// LogoSize selects the logo variant.
type LogoSize string

const (
	LogoLarge LogoSize = "large"
	LogoSmall LogoSize = "small"
)

// Layout describes one of the two navigation surfaces. Both variants expose
// the same routes and the same info action; only geometry and motion differ.
type Layout struct {
	Mode      Mode
	Alignment Alignment
	Pill      bool
	Logo      LogoSize
	Animated  bool // enters and exits with a motion transition
	Routes    []Route
	Info      func() // opens the onboarding modal
}

// LayoutFor builds the layout for mode. The layouts are swapped wholesale on
// a mode change, never morphed field by field.
func LayoutFor(mode Mode, routes []Route, info func()) Layout {
	rs := append([]Route(nil), routes...)
	if mode == Compact {
		return Layout{
			Mode:      Compact,
			Alignment: AlignRight,
			Pill:      true,
			Logo:      LogoSmall,
			Animated:  true,
			Routes:    rs,
			Info:      info,
		}
	}
	return Layout{
		Mode:      Expanded,
		Alignment: AlignFull,
		Logo:      LogoLarge,
		Routes:    rs,
		Info:      info,
	}
}

// IsActive reports whether route matches the current path.
func (r Route) IsActive(current string) bool {
	return r.Path == current
}
