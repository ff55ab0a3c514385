package layout

const (
	FooterRows       = 1
	HorizontalMargin = 2
	MaxPageWidth     = 96
	MinPageWidth     = 24

	// NavTriggerWidth is the clickable width of the "⋮" trigger
	NavTriggerWidth = 3
)

// Layout computes screen geometry for the page: the scrolling viewport, the
// centered page column and the corner navigation trigger.
type Layout struct {
	width  int
	height int

	pageWidth      int
	pageMargin     int
	viewportHeight int
}

// NewLayout creates a new layout with the given terminal dimensions
func NewLayout(width, height int) *Layout {
	l := &Layout{
		width:  width,
		height: height,
	}
	l.calculate()
	return l
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

func (l *Layout) calculate() {
	usable := l.width - HorizontalMargin*2
	if usable > MaxPageWidth {
		usable = MaxPageWidth
	}
	if usable < MinPageWidth {
		usable = MinPageWidth
	}
	l.pageWidth = usable

	l.pageMargin = (l.width - usable) / 2
	if l.pageMargin < 0 {
		l.pageMargin = 0
	}

	l.viewportHeight = l.height - FooterRows
	if l.viewportHeight < 1 {
		l.viewportHeight = 1
	}
}

// GetWidth returns the layout width
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the layout height
func (l *Layout) GetHeight() int {
	return l.height
}

// PageWidth is the width sections render at
func (l *Layout) PageWidth() int {
	return l.pageWidth
}

// PageMargin is the left offset of the page column
func (l *Layout) PageMargin() int {
	return l.pageMargin
}

// ViewportHeight is the number of rows available to the scrolling page
func (l *Layout) ViewportHeight() int {
	return l.viewportHeight
}

// NavTrigger is the screen rectangle of the menu trigger, top right
func (l *Layout) NavTrigger() Rect {
	x := l.width - NavTriggerWidth - 1
	if x < 0 {
		x = 0
	}
	return Rect{X: x, Y: 0, W: NavTriggerWidth, H: 1}
}

// NavPanel is where an open menu panel of the given size is drawn: under the
// trigger, right aligned with it.
func (l *Layout) NavPanel(w, h int) Rect {
	trigger := l.NavTrigger()
	x := trigger.X + trigger.W - w
	if x < 0 {
		x = 0
	}
	return Rect{X: x, Y: trigger.Y + trigger.H, W: w, H: h}
}

// ToPage converts a screen position inside the viewport to page coordinates.
// Positions on the footer row are not on the page.
func (l *Layout) ToPage(x, y, yOffset int) (px, py int, ok bool) {
	if y < 0 || y >= l.viewportHeight {
		return 0, 0, false
	}
	return x - l.pageMargin, y + yOffset, true
}
