package overlays

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"folio/pkg/common"
	"folio/pkg/gui/theme"
)

// HelpDialog represents a help overlay showing all shortcuts
type HelpDialog struct {
	keyMap *common.GlobalKeyMap
	title  string
	styles theme.Styles
	width  int
	height int
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog(keyMap *common.GlobalKeyMap, title string, styles theme.Styles) *HelpDialog {
	return &HelpDialog{keyMap: keyMap, title: title, styles: styles}
}

// SetSize updates the dialog dimensions
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetStyles switches the dialog to another theme
func (h *HelpDialog) SetStyles(styles theme.Styles) {
	h.styles = styles
}

// Update closes the dialog on any key
func (h *HelpDialog) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return func() tea.Msg { return HelpClosedMsg{} }
	}
	return nil
}

// View renders the help dialog content
func (h *HelpDialog) View() string {
	p := h.styles.Palette
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.InfoStatus)).MarginTop(1)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Accent))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextDescription))
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted)).Italic(true).MarginTop(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.BorderActive)).
		Background(lipgloss.Color(p.Surface)).
		Padding(1, 2)

	var content []string
	content = append(content, h.styles.Accent.Render(h.title))

	shortcuts := common.AllShortcuts(h.keyMap)
	for _, section := range common.HelpSectionOrder {
		items, ok := shortcuts[section]
		if !ok {
			continue
		}
		content = append(content, sectionStyle.Render(section))
		for _, shortcut := range items {
			line := "  " + keyStyle.Render(padRight(shortcut.Key, 12)) +
				descStyle.Render(shortcut.Description)
			content = append(content, line)
		}
	}

	content = append(content, footerStyle.Render("Press any key to close"))

	return boxStyle.Render(strings.Join(content, "\n"))
}

// padRight pads a string to the given display width
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// HelpClosedMsg indicates the help dialog was closed
type HelpClosedMsg struct{}
