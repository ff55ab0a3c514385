package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/pkg/gui/layout"
	"folio/pkg/gui/theme"
	"folio/pkg/prefs"
)

// NavPanel renders the menu that drops from the corner trigger: one row
// per section and a theme toggle.
type NavPanel struct {
	items  []string
	mode   prefs.Theme
	styles theme.Styles
}

// NewNavPanel creates a panel listing items in order
func NewNavPanel(items []string, mode prefs.Theme) *NavPanel {
	return &NavPanel{
		items:  items,
		mode:   mode,
		styles: theme.NewStyles(mode),
	}
}

// SetTheme restyles the panel and flips the toggle glyph
func (n *NavPanel) SetTheme(mode prefs.Theme) {
	n.mode = mode
	n.styles = theme.NewStyles(mode)
}

func (n *NavPanel) rows() []string {
	rows := make([]string, 0, len(n.items)+1)
	for i, item := range n.items {
		rows = append(rows, n.styles.Accent.Render(fmt.Sprintf("%d", i+1))+" "+n.styles.NavItem.Render(item))
	}
	rows = append(rows, n.styles.Muted.Render(theme.ToggleIcon(n.mode)+" "+n.mode.Toggled().String()))
	return rows
}

// View renders the panel box
func (n *NavPanel) View() string {
	return n.styles.Nav.Render(strings.Join(n.rows(), "\n"))
}

// Size returns the rendered width and height
func (n *NavPanel) Size() (int, int) {
	view := n.View()
	return lipgloss.Width(view), lipgloss.Height(view)
}

// Hits returns the item regions relative to the panel's top-left corner.
// Each item spans the full panel width.
func (n *NavPanel) Hits() *layout.HitMap {
	w, _ := n.Size()
	top := n.styles.Nav.GetBorderTopSize() + n.styles.Nav.GetPaddingTop()
	var h layout.HitMap
	for i := range n.items {
		h.Add(layout.RegionNavItem, i, 0, layout.Rect{X: 0, Y: top + i, W: w, H: 1})
	}
	h.Add(layout.RegionNavTheme, 0, 0, layout.Rect{X: 0, Y: top + len(n.items), W: w, H: 1})
	return &h
}
