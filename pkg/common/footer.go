package common

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"folio/pkg/gui/theme"
)

// Footer manages the bottom footer bar with keyboard shortcuts
type Footer struct {
	width           int
	height          int
	status          string
	styles          theme.Styles
	shortcutOverlay *ShortcutOverlay
}

var footerStyle = lipgloss.NewStyle().Padding(0, 1)

// NewFooter creates a new footer component
func NewFooter(styles theme.Styles) *Footer {
	return &Footer{
		height: 1,
		styles: styles,
	}
}

// SetShortcutOverlay sets the shortcut overlay for the footer
func (f *Footer) SetShortcutOverlay(overlay *ShortcutOverlay) {
	f.shortcutOverlay = overlay
}

// SetSize updates the footer dimensions
func (f *Footer) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetStyles switches the footer to another theme
func (f *Footer) SetStyles(styles theme.Styles) {
	f.styles = styles
}

// SetStatus shows a transient message, such as a copy confirmation, in
// place of the shortcuts. An empty status restores them.
func (f *Footer) SetStatus(status string) {
	f.status = status
}

// Status returns the transient message
func (f *Footer) Status() string {
	return f.status
}

// GetShortcuts returns the current shortcuts to display
func (f *Footer) GetShortcuts() []Shortcut {
	if f.shortcutOverlay != nil {
		return f.shortcutOverlay.FormatShortcuts()
	}
	return []Shortcut{}
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 {
		return ""
	}

	var content string
	if f.status != "" {
		content = f.styles.Status.Render(f.status)
	} else {
		content = f.renderShortcuts()
	}
	if content == "" {
		return ""
	}

	// Keep to one row on narrow terminals
	maxWidth := f.width - footerStyle.GetHorizontalFrameSize()
	if maxWidth > 0 && lipgloss.Width(content) > maxWidth {
		content = truncate.StringWithTail(content, uint(maxWidth), "…")
	}

	return lipgloss.Place(
		f.width,
		f.height,
		lipgloss.Center,
		lipgloss.Center,
		footerStyle.Render(content),
	)
}

func (f *Footer) renderShortcuts() string {
	shortcuts := f.GetShortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	separator := f.styles.Muted.Render(" • ")
	var local, global []string
	for _, shortcut := range shortcuts {
		part := f.styles.FooterKey.Render(shortcut.Key) + " " + f.styles.FooterDesc.Render(shortcut.Description)
		if shortcut.IsGlobal {
			global = append(global, part)
		} else {
			local = append(local, part)
		}
	}

	content := strings.Join(local, separator)
	if len(local) > 0 && len(global) > 0 {
		content += f.styles.Muted.Render(" │ ")
	}
	return content + strings.Join(global, separator)
}
