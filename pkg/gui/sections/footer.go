package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/pkg/gui/layout"
)

func renderFooter(s State) (string, *layout.HitMap) {
	st := s.Styles
	hits := &layout.HitMap{}
	center := func(line string) (string, int) {
		pad := max((s.Width-lipgloss.Width(line))/2, 0)
		return strings.Repeat(" ", pad) + line, pad
	}

	rule := st.Muted.Render(strings.Repeat("─", s.Width))
	name, _ := center(st.Accent.Render(s.Content.Hero.Name))
	title, _ := center(st.Body.Render(s.Content.Footer.Title))

	var links []string
	widths := make([]int, 0, Count)
	total := 0
	for id := Home; int(id) < Count; id++ {
		link := st.NavItem.Render(id.String())
		links = append(links, link)
		widths = append(widths, lipgloss.Width(link))
		total += lipgloss.Width(link)
	}
	sep := st.Muted.Render(" · ")
	if total+(Count-1)*lipgloss.Width(sep) > s.Width {
		sep = " "
	}
	row, pad := center(strings.Join(links, sep))
	const linksRow = 4
	x := pad
	for i, w := range widths {
		hits.Add(layout.RegionButton, i, 0, layout.Rect{X: x, Y: linksRow, W: w, H: 1})
		x += w + lipgloss.Width(sep)
	}

	lines := []string{rule, name, title, "", row, ""}
	for _, line := range strings.Split(wrap(s.Content.Footer.Copyright, s.Width), "\n") {
		centered, _ := center(st.Muted.Render(line))
		lines = append(lines, centered)
	}
	return strings.Join(lines, "\n"), hits
}
