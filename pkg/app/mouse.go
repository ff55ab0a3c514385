package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"folio/pkg/gui/layout"
	"folio/pkg/gui/sections"
)

// overNav reports whether (x, y) keeps the menu open: the trigger, and the
// panel while it is shown.
func (m *Model) overNav(x, y int) bool {
	if m.layout.NavTrigger().Contains(x, y) {
		return true
	}
	if !m.nav.IsOpen() {
		return false
	}
	w, h := m.navPanel.Size()
	return m.layout.NavPanel(w, h).Contains(x, y)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.intro.Visible() || m.showHelp || m.showDebug {
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd

	case msg.Action == tea.MouseActionMotion:
		return m.pointerMoved(msg.X, msg.Y)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.click(msg.X, msg.Y)
	}
	return nil
}

// pointerMoved turns motion into enter and leave transitions for the menu
// and the project cards.
func (m *Model) pointerMoved(x, y int) tea.Cmd {
	var cmds []tea.Cmd
	over := m.overNav(x, y)
	if over != m.navHovered {
		m.navHovered = over
		if over {
			cmds = append(cmds, m.nav.Enter())
		} else {
			cmds = append(cmds, m.nav.Leave())
		}
	}

	card := -1
	if !over {
		if px, py, ok := m.layout.ToPage(x, y, m.viewport.YOffset); ok {
			if region, hit := m.page.Hits.Find(layout.RegionCard, px, py); hit {
				card = region.Index
			}
		}
	}
	cmds = append(cmds, m.hoverCard(card))
	return tea.Batch(cmds...)
}

func (m *Model) click(x, y int) tea.Cmd {
	if m.nav.IsOpen() {
		w, h := m.navPanel.Size()
		panel := m.layout.NavPanel(w, h)
		if panel.Contains(x, y) {
			region, ok := m.navPanel.Hits().At(x-panel.X, y-panel.Y)
			if !ok {
				return nil
			}
			switch region.Kind {
			case layout.RegionNavItem:
				return m.nav.Select(scrollTo(sections.ID(region.Index)))
			case layout.RegionNavTheme:
				m.toggleTheme()
			}
			return nil
		}
	}
	if m.layout.NavTrigger().Contains(x, y) {
		return m.nav.Enter()
	}

	px, py, ok := m.layout.ToPage(x, y, m.viewport.YOffset)
	if !ok {
		return nil
	}
	region, ok := m.page.Hits.At(px, py)
	if !ok {
		return nil
	}
	switch region.Kind {
	case layout.RegionButton:
		return scrollTo(sections.ID(region.Index))
	case layout.RegionDot:
		if card := m.Carousel(region.Index); card != nil {
			card.SelectIndex(region.Sub)
		}
	case layout.RegionCopy:
		if region.Index == sections.CopyPhone {
			return m.copy("phone", m.content.Contact.Phone)
		}
		return m.copy("email", m.content.Contact.Email)
	case layout.RegionSocial:
		if region.Index < len(m.content.Contact.Socials) {
			social := m.content.Contact.Socials[region.Index]
			return m.openURL(social.Name, social.URL)
		}
	}
	return nil
}
