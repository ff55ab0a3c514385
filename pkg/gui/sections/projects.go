package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/pkg/content"
	"folio/pkg/gui/icons"
	"folio/pkg/gui/layout"
)

func renderProjects(s State) (string, *layout.HitMap) {
	projects := s.Content.Projects
	st := s.Styles
	hits := &layout.HitMap{}

	lines := []string{sectionTitle(s, "My ", "Projects", ""), ""}
	if projects.Subtitle != "" {
		lines = append(lines, strings.Split(st.Muted.Render(wrap(projects.Subtitle, s.Width)), "\n")...)
		lines = append(lines, "")
	}

	for i, p := range projects.Items {
		if i > 0 {
			lines = append(lines, "")
		}
		shot := 0
		if i < len(s.Shots) {
			shot = s.Shots[i]
		}
		card, cardHits := renderCard(s, i, p, shot)
		top := len(lines)
		hits.Add(layout.RegionCard, i, 0, layout.Rect{X: 0, Y: top, W: lipgloss.Width(card), H: lipgloss.Height(card)})
		hits.Merge(cardHits, 0, top)
		lines = append(lines, strings.Split(card, "\n")...)
	}

	return strings.Join(lines, "\n"), hits
}

// renderCard draws one project. Dot regions are relative to the card.
func renderCard(s State, index int, p content.Project, shot int) (string, *layout.HitMap) {
	st := s.Styles
	hovered := index == s.HoveredCard
	style := st.Card
	if hovered {
		style = st.CardHovered
	}
	style = style.Width(s.Width - style.GetHorizontalBorderSize())
	inner := s.Width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	left := style.GetBorderLeftSize() + style.GetPaddingLeft()
	top := style.GetBorderTopSize() + style.GetPaddingTop()

	var lines []string
	title := icons.ByName(p.Icon) + " " + st.Accent.Render(p.Title)
	if len(p.Screenshots) > 1 {
		state := "hover to play"
		if hovered && s.Playing {
			state = "▶ playing"
		} else if hovered {
			state = "⏸ paused"
		}
		title += "  " + st.Muted.Render(state)
	}
	lines = append(lines, title)
	if p.Description != "" {
		lines = append(lines, strings.Split(st.Body.Render(wrap(p.Description, inner)), "\n")...)
	}

	chips := make([]string, 0, len(p.Tech))
	for _, tech := range p.Tech {
		chips = append(chips, st.Tag.Render(tech))
	}
	lines = append(lines, flow(chips, inner)...)

	hits := &layout.HitMap{}
	if n := len(p.Screenshots); n > 0 {
		if shot < 0 || shot >= n {
			shot = 0
		}
		frame := p.Screenshots[shot]
		lines = append(lines, "")
		lines = append(lines, strings.Split(st.Body.Render(strings.TrimRight(frame.Art, "\n")), "\n")...)

		caption := st.Muted.Render(frame.Caption)
		prefix := caption
		if caption != "" {
			prefix += "  "
		}
		dotsX := left + lipgloss.Width(prefix)
		row := top + len(lines)
		var dots []string
		for j := 0; j < n; j++ {
			if j == shot {
				dots = append(dots, st.DotActive.Render("●"))
			} else {
				dots = append(dots, st.DotIdle.Render("○"))
			}
			hits.Add(layout.RegionDot, index, j, layout.Rect{X: dotsX + 2*j, Y: row, W: 2, H: 1})
		}
		lines = append(lines, prefix+strings.Join(dots, " "))
	}

	lines = append(lines, st.Muted.Render(icons.Link.Get()+" View Live   "+icons.Code.Get()+" View Code"))

	body := clip(strings.Join(lines, "\n"), inner)
	return style.Render(body), hits
}
