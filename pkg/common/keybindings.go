package common

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// GlobalKeyMap defines the keybindings of the portfolio page
//
// Scrolling keys also drive the page viewport (see ViewportKeyMap); the
// left and right arrows are reserved for moving between project cards.
type GlobalKeyMap struct {
	// Truly global keys
	Quit        key.Binding // q, Ctrl+C - quit
	Keybindings key.Binding // ? - show help
	ToggleTheme key.Binding // t - switch light/dark
	DebugLog    key.Binding // L - toggle debug log viewer

	// Page scrolling
	Up       key.Binding // ↑, k
	Down     key.Binding // ↓, j
	PageUp   key.Binding // pgup, b
	PageDown key.Binding // pgdown, space
	Top      key.Binding // home
	Bottom   key.Binding // end

	// Navigation panel
	OpenNav  key.Binding // tab - open the panel
	CloseNav key.Binding // esc - close the panel

	// Direct section jumps, also what the nav panel items do
	GoHome     key.Binding // 1
	GoAbout    key.Binding // 2
	GoSkills   key.Binding // 3
	GoProjects key.Binding // 4
	GoContact  key.Binding // 5

	// Project cards
	PrevCard key.Binding // ←, h
	NextCard key.Binding // →, l
	PrevShot key.Binding // [
	NextShot key.Binding // ]

	// Contact actions
	CopyEmail key.Binding // e
	CopyPhone key.Binding // p
	GitHub    key.Binding // g
	Facebook  key.Binding // f
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Keybindings: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		DebugLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "debug log"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn/space", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "bottom"),
		),

		OpenNav: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "open menu"),
		),
		CloseNav: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),

		GoHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		GoAbout: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "about"),
		),
		GoSkills: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "skills"),
		),
		GoProjects: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "projects"),
		),
		GoContact: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "contact"),
		),

		PrevCard: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous project"),
		),
		NextCard: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next project"),
		),
		PrevShot: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous screenshot"),
		),
		NextShot: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next screenshot"),
		),

		CopyEmail: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "copy email"),
		),
		CopyPhone: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "copy phone"),
		),
		GitHub: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "open GitHub"),
		),
		Facebook: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "open Facebook"),
		),
	}
}

// SectionKeys returns the jump bindings in page order
func (k *GlobalKeyMap) SectionKeys() []key.Binding {
	return []key.Binding{k.GoHome, k.GoAbout, k.GoSkills, k.GoProjects, k.GoContact}
}

// ShortHelp returns a slice of key bindings to show in the short help view
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Keybindings,
		k.Quit,
	}
}

// FullHelp returns a slice of key bindings to show in the full help view
func (k *GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Keybindings, k.ToggleTheme, k.DebugLog},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.OpenNav, k.CloseNav},
		k.SectionKeys(),
		{k.PrevCard, k.NextCard, k.PrevShot, k.NextShot},
		{k.CopyEmail, k.CopyPhone, k.GitHub, k.Facebook},
	}
}

// HelpSectionOrder is the order sections appear in the help dialog
var HelpSectionOrder = []string{"Global", "Scrolling", "Menu", "Sections", "Projects", "Contact"}

// GetHelpSections returns help sections with categorized keybindings
func (k *GlobalKeyMap) GetHelpSections() map[string][]key.Binding {
	return map[string][]key.Binding{
		"Global":    {k.Quit, k.Keybindings, k.ToggleTheme, k.DebugLog},
		"Scrolling": {k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		"Menu":      {k.OpenNav, k.CloseNav},
		"Sections":  k.SectionKeys(),
		"Projects":  {k.PrevCard, k.NextCard, k.PrevShot, k.NextShot},
		"Contact":   {k.CopyEmail, k.CopyPhone, k.GitHub, k.Facebook},
	}
}

// ViewportKeyMap binds the page viewport to the scrolling keys. Horizontal
// scrolling is disabled because the arrows move between cards.
func (k *GlobalKeyMap) ViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		Up:           k.Up,
		Down:         k.Down,
		PageUp:       k.PageUp,
		PageDown:     k.PageDown,
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "½ page up")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "½ page down")),
		Left:         key.NewBinding(key.WithDisabled()),
		Right:        key.NewBinding(key.WithDisabled()),
	}
}
