package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/pkg/gui/layout"
)

func renderHero(s State) (string, *layout.HitMap) {
	hero := s.Content.Hero
	st := s.Styles
	hits := &layout.HitMap{}

	// leave the first row to the menu trigger
	lines := []string{""}
	lines = append(lines, st.Muted.Render(hero.Greeting))
	lines = append(lines, strings.Split(clip(st.Accent.Render(hero.Name), s.Width), "\n")...)
	lines = append(lines, st.Title.Render(hero.Title))
	lines = append(lines, strings.Split(st.Body.Render(wrap(hero.Subtitle, s.Width)), "\n")...)
	lines = append(lines, st.Accent.Render(hero.Major))
	lines = append(lines, "")

	row := len(lines)
	work, w := button(st.Button, "View My Work", Projects, 0, row, hits)
	contact, _ := button(st.ButtonAlt, "Contact Me", Contact, w+2, row, hits)
	lines = append(lines, work+"  "+contact)
	lines = append(lines, "")

	if hero.Code != "" {
		lines = append(lines, strings.Split(renderCodeWindow(s), "\n")...)
		lines = append(lines, "")
	}

	lines = append(lines, st.Muted.Render("Scroll Down ↓"))
	return strings.Join(lines, "\n"), hits
}

func renderCodeWindow(s State) string {
	p := s.Styles.Palette
	dots := lipgloss.NewStyle().Foreground(lipgloss.Color(p.DotRed)).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(p.DotYellow)).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(p.DotGreen)).Render("●")

	inner := s.Width - s.Styles.Code.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	code := clip(strings.TrimRight(s.Content.Hero.Code, "\n"), inner)
	return s.Styles.Code.Render(dots + "\n\n" + code)
}
