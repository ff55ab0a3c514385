package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/pkg/gui/icons"
	"folio/pkg/gui/layout"
)

// Copy targets of RegionCopy
const (
	CopyEmail = 0
	CopyPhone = 1
)

func renderContact(s State) (string, *layout.HitMap) {
	c := s.Content.Contact
	st := s.Styles
	hits := &layout.HitMap{}

	lines := []string{sectionTitle(s, "Contact ", "Me", ""), ""}
	if c.Subtitle != "" {
		lines = append(lines, strings.Split(st.Muted.Render(wrap(c.Subtitle, s.Width)), "\n")...)
		lines = append(lines, "")
	}

	addCard := func(icon, title, value, action string, target int) {
		row := len(lines)
		lines = append(lines,
			icon+" "+st.Title.Render(title),
			"  "+st.Body.Render(value),
			"  "+st.Accent.Render(action),
		)
		hits.Add(layout.RegionCopy, target, 0, layout.Rect{X: 0, Y: row, W: s.Width, H: 3})
		lines = append(lines, "")
	}
	if c.Email != "" {
		addCard(icons.Envelope.Get(), "Email", c.Email, "[e] copy address", CopyEmail)
	}
	if c.Phone != "" {
		addCard(icons.Telephone.Get(), "Phone", c.Phone, "[p] copy number", CopyPhone)
	}

	if len(c.Socials) > 0 {
		lines = append(lines, st.Title.Render("Find Me On"))
		for i, social := range c.Socials {
			label := icons.ByName(social.Icon) + " " + social.Name
			if social.Key != "" {
				label += " " + st.Muted.Render("["+social.Key+"]")
			}
			hits.Add(layout.RegionSocial, i, 0, layout.Rect{X: 0, Y: len(lines), W: s.Width, H: 1})
			lines = append(lines, "  "+label)
		}
		lines = append(lines, "")
	}

	if len(c.Form) > 0 {
		lines = append(lines, strings.Split(renderForm(s), "\n")...)
	}

	return clip(strings.Join(lines, "\n"), s.Width), hits
}

// renderForm draws the message form. It is display only.
func renderForm(s State) string {
	st := s.Styles
	fieldW := min(s.Width-4, 48)
	if fieldW < 8 {
		fieldW = 8
	}
	field := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(st.Palette.BorderMuted)).
		Foreground(lipgloss.Color(st.Palette.TextMuted)).
		Width(fieldW)

	parts := []string{st.Title.Render("Send Me a Message")}
	for i, placeholder := range s.Content.Contact.Form {
		f := field
		if i == len(s.Content.Contact.Form)-1 {
			f = f.Height(3)
		}
		parts = append(parts, f.Render(placeholder))
	}
	parts = append(parts, st.Button.Render("Send Message ✉"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
