package sections

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"folio/pkg/gui/icons"
)

const maxBarWidth = 30

func renderSkills(s State) string {
	skills := s.Content.Skills
	st := s.Styles

	lines := []string{sectionTitle(s, "My ", "Skills", ""), ""}
	if skills.Subtitle != "" {
		lines = append(lines, strings.Split(st.Muted.Render(wrap(skills.Subtitle, s.Width)), "\n")...)
		lines = append(lines, "")
	}

	labelW := 0
	for _, skill := range skills.Items {
		labelW = max(labelW, runewidth.StringWidth(skill.Name))
	}
	barW := min(maxBarWidth, s.Width-labelW-10)
	for _, skill := range skills.Items {
		label := icons.ByName(skill.Icon) + " " + runewidth.FillRight(skill.Name, labelW)
		lines = append(lines, st.Title.Render(label)+"  "+skillBar(s, skill.Level, barW))
	}

	for _, cat := range skills.Categories {
		lines = append(lines, "", st.Accent.Render(cat.Title))
		if cat.Description != "" {
			lines = append(lines, strings.Split(st.Body.Render(wrap(cat.Description, s.Width)), "\n")...)
		}
		chips := make([]string, 0, len(cat.Tags))
		for _, tag := range cat.Tags {
			chips = append(chips, st.Tag.Render(tag))
		}
		lines = append(lines, flow(chips, s.Width)...)
	}

	return strings.Join(lines, "\n")
}

// skillBar draws a level in [0, 100] as a filled bar with its percentage
func skillBar(s State, level, width int) string {
	pct := fmt.Sprintf("%3d%%", level)
	if width < 1 {
		return s.Styles.Accent.Render(pct)
	}
	filled := width * level / 100
	return s.Styles.BarFull.Render(strings.Repeat("█", filled)) +
		s.Styles.BarEmpty.Render(strings.Repeat("░", width-filled)) +
		" " + s.Styles.Muted.Render(pct)
}
