package overlays

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/pkg/gui/components"
	"folio/pkg/gui/theme"
)

const introBarWidth = 40

// IntroOverlay draws the loading screen: the owner's name, a progress bar
// and a blinking cursor. Progress comes from components.Intro; the overlay
// only animates the cursor.
type IntroOverlay struct {
	name   string
	bar    progress.Model
	loader *components.Loader
	styles theme.Styles
	width  int
	height int
}

// NewIntroOverlay creates the loading screen for name
func NewIntroOverlay(name string, styles theme.Styles) *IntroOverlay {
	o := &IntroOverlay{
		name:   name,
		loader: components.NewLoader("loading portfolio"),
	}
	o.SetStyles(styles)
	return o
}

// SetStyles restyles the bar and cursor
func (o *IntroOverlay) SetStyles(styles theme.Styles) {
	o.styles = styles
	o.bar = progress.New(
		progress.WithSolidFill(styles.Palette.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(introBarWidth),
	)
	o.bar.EmptyColor = styles.Palette.BorderMuted
	o.loader.SetStyle(styles.Accent)
}

// SetSize updates the overlay dimensions
func (o *IntroOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
	w := introBarWidth
	if width-4 < w {
		w = width - 4
	}
	if w < 10 {
		w = 10
	}
	o.bar.Width = w
}

// Init starts the cursor animation
func (o *IntroOverlay) Init() tea.Cmd {
	return o.loader.TickCmd()
}

// Stop ends the cursor animation once the intro is gone
func (o *IntroOverlay) Stop() {
	o.loader.Stop()
}

// Update advances the cursor
func (o *IntroOverlay) Update(msg tea.Msg) tea.Cmd {
	return o.loader.Update(msg)
}

// View renders the screen at the given progress in [0, 100]
func (o *IntroOverlay) View(percent int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		o.styles.Accent.Render(o.name),
		"",
		o.bar.ViewAs(float64(percent)/100),
		o.styles.Muted.Render(fmt.Sprintf("%3d%%", percent)),
		"",
		o.loader.View(),
	)
	background := lipgloss.Color(o.styles.Palette.Background)
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(background))
}
