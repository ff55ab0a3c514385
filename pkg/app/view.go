package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/pkg/content"
	"folio/pkg/gui/icons"
	"folio/pkg/gui/layout"
	"folio/pkg/gui/overlay"
	"folio/pkg/gui/sections"
	"folio/pkg/gui/theme"
	"folio/pkg/prefs"
)

// View implements tea.Model
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	if m.intro.Visible() {
		return m.introOverlay.View(m.intro.Progress())
	}

	screen := m.viewport.View() + "\n" + m.footer.View()

	trigger := m.layout.NavTrigger()
	style := m.styles.Muted
	if m.nav.IsOpen() {
		style = m.styles.Accent
	}
	glyph := lipgloss.PlaceHorizontal(trigger.W, lipgloss.Center, icons.Menu.Get())
	screen = overlay.PlaceOverlay(trigger.X, trigger.Y, style.Render(glyph), screen)

	if m.nav.IsOpen() {
		w, h := m.navPanel.Size()
		panel := m.layout.NavPanel(w, h)
		screen = overlay.PlaceOverlay(panel.X, panel.Y, m.navPanel.View(), screen)
	}

	if m.showHelp {
		dialog := m.helpDialog.View()
		x, y := overlay.Center(m.layout.GetWidth(), m.layout.GetHeight(), lipgloss.Width(dialog), lipgloss.Height(dialog))
		screen = overlay.PlaceOverlay(x, y, dialog, screen)
	}
	if m.showDebug {
		screen = overlay.PlaceOverlay(2, 2, m.debugOverlay.View(), screen)
	}
	return screen
}

// RenderStatic renders the whole page for a non-interactive terminal: no
// intro, no menu and every rotation at its first frame.
func RenderStatic(c *content.Content, mode prefs.Theme, width int) string {
	l := layout.NewLayout(width, 0)
	page := sections.Render(sections.State{
		Content:     c,
		Styles:      theme.NewStyles(mode),
		Width:       l.PageWidth(),
		HoveredCard: -1,
	})
	margin := strings.Repeat(" ", l.PageMargin())
	lines := strings.Split(page.Body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(margin+line, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}
