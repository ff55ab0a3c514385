// Package sections renders the static page: hero, about, skills, projects,
// contact and footer. Rendering is a pure function of the content and the
// controller state it is handed; the interactive regions it produces let the
// app map pointer events back to cards, dots and buttons.
package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"folio/pkg/content"
	"folio/pkg/gui/components"
	"folio/pkg/gui/layout"
	"folio/pkg/gui/theme"
)

// ID names a navigable section
type ID int

const (
	Home ID = iota
	About
	Skills
	Projects
	Contact
)

// Count is the number of navigable sections
const Count = 5

var names = [Count]string{"Home", "About", "Skills", "Projects", "Contact"}

// String returns the section label
func (id ID) String() string {
	if id < 0 || int(id) >= Count {
		return "Unknown"
	}
	return names[id]
}

// Names returns the section labels in page order
func Names() []string {
	return names[:]
}

// State is everything the page needs besides the content
type State struct {
	Content *content.Content
	Styles  theme.Styles
	Width   int

	// Profile photo rotation
	PhotoActive int
	PhotoRoles  []components.Role

	// Active screenshot per project, and which card the pointer is on (-1
	// for none) and whether its carousel is playing
	Shots       []int
	HoveredCard int
	Playing     bool
}

// Page is a rendered page
type Page struct {
	Body    string
	Anchors [Count]int
	Hits    *layout.HitMap
}

// Height returns the number of rows
func (p Page) Height() int {
	if p.Body == "" {
		return 0
	}
	return strings.Count(p.Body, "\n") + 1
}

// Anchor returns the first row of a section
func (p Page) Anchor(id ID) int {
	if id < 0 || int(id) >= Count {
		return 0
	}
	return p.Anchors[id]
}

// SectionAt returns the section that contains row
func (p Page) SectionAt(row int) ID {
	current := Home
	for id := Home; int(id) < Count; id++ {
		if row >= p.Anchors[id] {
			current = id
		}
	}
	return current
}

// builder stacks blocks vertically and keeps their regions in page coordinates
type builder struct {
	lines []string
	hits  layout.HitMap
}

func (b *builder) row() int {
	return len(b.lines)
}

func (b *builder) add(block string, hits *layout.HitMap) {
	b.hits.Merge(hits, 0, b.row())
	b.lines = append(b.lines, strings.Split(block, "\n")...)
}

func (b *builder) gap(n int) {
	for i := 0; i < n; i++ {
		b.lines = append(b.lines, "")
	}
}

// Render draws the whole page at s.Width
func Render(s State) Page {
	if s.Content == nil || s.Width <= 0 {
		return Page{Hits: &layout.HitMap{}}
	}
	var b builder
	var page Page

	page.Anchors[Home] = b.row()
	b.add(renderHero(s))
	b.gap(2)

	page.Anchors[About] = b.row()
	b.add(renderAbout(s))
	b.gap(2)

	page.Anchors[Skills] = b.row()
	b.add(renderSkills(s), nil)
	b.gap(2)

	page.Anchors[Projects] = b.row()
	b.add(renderProjects(s))
	b.gap(2)

	page.Anchors[Contact] = b.row()
	b.add(renderContact(s))
	b.gap(2)

	b.add(renderFooter(s))

	page.Body = strings.Join(b.lines, "\n")
	page.Hits = &b.hits
	return page
}

// sectionTitle renders a heading with one accented word
func sectionTitle(s State, before, accent, after string) string {
	title := s.Styles.Title.Render(before) + s.Styles.Accent.Render(accent) + s.Styles.Title.Render(after)
	return title
}

// wrap word-wraps text to width and drops the trailing newline
func wrap(text string, width int) string {
	if width < 1 {
		width = 1
	}
	return strings.TrimRight(wordwrap.String(strings.TrimSpace(text), width), "\n")
}

// clip shortens every line of block to width
func clip(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = truncate.StringWithTail(line, uint(width), "…")
		}
	}
	return strings.Join(lines, "\n")
}

// flow lays out styled chips left to right, wrapping at width
func flow(chips []string, width int) []string {
	var rows []string
	var current string
	for _, chip := range chips {
		if current == "" {
			current = chip
			continue
		}
		if lipgloss.Width(current)+1+lipgloss.Width(chip) > width {
			rows = append(rows, current)
			current = chip
			continue
		}
		current += " " + chip
	}
	if current != "" {
		rows = append(rows, current)
	}
	return rows
}

// button renders a one-row button and its region at (x, y)
func button(style lipgloss.Style, label string, target ID, x, y int, hits *layout.HitMap) (string, int) {
	view := style.Render(label)
	w := lipgloss.Width(view)
	hits.Add(layout.RegionButton, int(target), 0, layout.Rect{X: x, Y: y, W: w, H: 1})
	return view, w
}
