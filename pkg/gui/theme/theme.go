// Package theme maps the theme preference onto the colors and styles used to
// draw the page.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"folio/pkg/prefs"
)

// Palette defines all colors of one theme with semantic naming.
type Palette struct {
	// Brand color, the gold used for names and section accents
	Accent string

	// Text colors
	TextPrimary     string
	TextDescription string
	TextMuted       string

	// Surfaces
	Background string
	Surface    string

	// Border colors
	BorderActive string
	BorderMuted  string

	// Status colors
	SuccessStatus string
	InfoStatus    string
	ErrorStatus   string

	// Code window dots
	DotRed    string
	DotYellow string
	DotGreen  string
}

var (
	// Dark is the night palette
	Dark = Palette{
		Accent:          "#d4af37",
		TextPrimary:     "#ffffff",
		TextDescription: "#c9c9c9",
		TextMuted:       "#7a7a7a",
		Background:      "#121212",
		Surface:         "#1e1e1e",
		BorderActive:    "#d4af37",
		BorderMuted:     "#4a4a4a",
		SuccessStatus:   "#50fa7b",
		InfoStatus:      "#8be9fd",
		ErrorStatus:     "#ff5555",
		DotRed:          "#ff5f56",
		DotYellow:       "#ffbd2e",
		DotGreen:        "#27c93f",
	}

	// Light is the day palette and the default
	Light = Palette{
		Accent:          "#b8860b",
		TextPrimary:     "#1a1a1a",
		TextDescription: "#4a4a4a",
		TextMuted:       "#8a8a8a",
		Background:      "#fafafa",
		Surface:         "#f0ede4",
		BorderActive:    "#b8860b",
		BorderMuted:     "#c9c9c9",
		SuccessStatus:   "#2e8b57",
		InfoStatus:      "#1f6f8b",
		ErrorStatus:     "#c0392b",
		DotRed:          "#ff5f56",
		DotYellow:       "#ffbd2e",
		DotGreen:        "#27c93f",
	}
)

// For returns the palette of a theme
func For(t prefs.Theme) Palette {
	if t == prefs.ThemeDark {
		return Dark
	}
	return Light
}

// ToggleIcon is the nav toggle glyph: the sun offers light, the moon dark.
func ToggleIcon(t prefs.Theme) string {
	if t == prefs.ThemeDark {
		return "☀"
	}
	return "☾"
}

// Styles are the lipgloss styles derived from a palette
type Styles struct {
	Palette Palette

	Accent      lipgloss.Style
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Tag         lipgloss.Style
	Button      lipgloss.Style
	ButtonAlt   lipgloss.Style
	Card        lipgloss.Style
	CardHovered lipgloss.Style
	Code        lipgloss.Style
	BarFull     lipgloss.Style
	BarEmpty    lipgloss.Style
	DotActive   lipgloss.Style
	DotIdle     lipgloss.Style
	Nav         lipgloss.Style
	NavItem     lipgloss.Style
	FooterKey   lipgloss.Style
	FooterDesc  lipgloss.Style
	Status      lipgloss.Style
}

// NewStyles builds the styles for a theme
func NewStyles(t prefs.Theme) Styles {
	p := For(t)
	border := lipgloss.RoundedBorder()
	return Styles{
		Palette:   p,
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextPrimary)).Bold(true),
		Heading:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextPrimary)).Bold(true).MarginBottom(1),
		Body:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextDescription)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted)),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(lipgloss.Color(p.Surface)).Padding(0, 1),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Background)).Background(lipgloss.Color(p.Accent)).Bold(true).Padding(0, 2),
		ButtonAlt: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Background(lipgloss.Color(p.Surface)).Bold(true).Padding(0, 2),
		Card: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(p.BorderMuted)).
			Padding(0, 1),
		CardHovered: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(p.BorderActive)).
			Padding(0, 1),
		Code: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.TextDescription)).
			Background(lipgloss.Color(p.Surface)).
			Border(border).
			BorderForeground(lipgloss.Color(p.BorderMuted)).
			Padding(0, 1),
		BarFull:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color(p.BorderMuted)),
		DotActive: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		DotIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted)),
		Nav: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(p.BorderActive)).
			Background(lipgloss.Color(p.Surface)).
			Padding(0, 1),
		NavItem:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextPrimary)),
		FooterKey:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		FooterDesc: lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted)),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.SuccessStatus)),
	}
}
