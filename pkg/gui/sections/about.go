package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/pkg/gui/components"
	"folio/pkg/gui/layout"
)

// sideBySideWidth is the narrowest page that puts the photo beside the text
const sideBySideWidth = 64

func renderAbout(s State) (string, *layout.HitMap) {
	about := s.Content.About
	st := s.Styles
	hits := &layout.HitMap{}

	photo := renderPhoto(s)
	photoW := lipgloss.Width(photo)
	sideBySide := photo != "" && s.Width >= sideBySideWidth

	textW := s.Width
	textX := 0
	if sideBySide {
		textX = photoW + 3
		textW = s.Width - textX
	}

	var text []string
	text = append(text, st.Heading.UnsetMarginBottom().Render(about.Heading), "")
	for _, p := range about.Paragraphs {
		text = append(text, strings.Split(st.Body.Render(wrap(p, textW)), "\n")...)
		text = append(text, "")
	}

	var chips []string
	for _, h := range about.Highlights {
		chips = append(chips, st.Accent.Render(h.Number)+" "+st.Muted.Render(h.Text))
	}
	for _, row := range flow(chips, textW) {
		text = append(text, row)
	}
	text = append(text, "")

	connect := st.Button.Render("Let's Connect")
	buttonRow := len(text)
	text = append(text, connect)

	body := strings.Join(text, "\n")
	if sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, photo, "   ", body)
	} else if photo != "" {
		buttonRow += lipgloss.Height(photo) + 1
		body = photo + "\n\n" + body
	}

	// body starts below the title and a blank row
	header := sectionTitle(s, "", "About", " Me")
	hits.Add(layout.RegionButton, int(Contact), 0, layout.Rect{X: textX, Y: buttonRow + 2, W: lipgloss.Width(connect), H: 1})
	return header + "\n\n" + body, hits
}

// renderPhoto draws the active profile photo and a strip marking which
// photo is active and which one it replaced.
func renderPhoto(s State) string {
	photos := s.Content.About.Photos
	if len(photos) == 0 {
		return ""
	}
	active := s.PhotoActive
	if active < 0 || active >= len(photos) {
		active = 0
	}

	frame := photos[active]
	art := s.Styles.Accent.UnsetBold().Render(strings.TrimRight(frame.Art, "\n"))

	var marks []string
	for i := range photos {
		role := components.RoleHidden
		if i < len(s.PhotoRoles) {
			role = s.PhotoRoles[i]
		} else if i == active {
			role = components.RoleActive
		}
		switch role {
		case components.RoleActive:
			marks = append(marks, s.Styles.DotActive.Render("●"))
		case components.RolePrevious:
			marks = append(marks, s.Styles.DotIdle.Render("◐"))
		default:
			marks = append(marks, s.Styles.DotIdle.Render("○"))
		}
	}

	caption := s.Styles.Muted.Render(frame.Caption)
	return lipgloss.JoinVertical(lipgloss.Center, art, caption, strings.Join(marks, " "))
}
