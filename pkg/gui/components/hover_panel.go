package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/pkg/timing"
)

// DefaultHoverCloseDelay is how long a panel stays open after the pointer leaves.
const DefaultHoverCloseDelay = 3000 * time.Millisecond

type hoverCloseMsg struct {
	id  int
	tag int
}

// HoverPanel opens on pointer enter and closes a fixed delay after the
// pointer leaves. Re-entering or selecting an item before the delay elapses
// cancels the pending close.
type HoverPanel struct {
	id       int
	tag      int
	open     bool
	pending  bool
	disposed bool
	delay    time.Duration
	sched    timing.Scheduler
}

// NewHoverPanel returns a closed panel. A non-positive delay uses
// DefaultHoverCloseDelay and a nil scheduler uses tea.Tick.
func NewHoverPanel(delay time.Duration, sched timing.Scheduler) *HoverPanel {
	if delay <= 0 {
		delay = DefaultHoverCloseDelay
	}
	return &HoverPanel{
		id:    nextID(),
		delay: delay,
		sched: timing.OrDefault(sched),
	}
}

// IsOpen reports whether the panel is open
func (p *HoverPanel) IsOpen() bool {
	return p != nil && p.open
}

// HasPendingClose reports whether a close is scheduled
func (p *HoverPanel) HasPendingClose() bool {
	return p != nil && p.pending
}

// Delay returns the close delay
func (p *HoverPanel) Delay() time.Duration {
	return p.delay
}

// cancel invalidates any scheduled close. Bumping the tag turns the message
// already in flight into a stale one.
func (p *HoverPanel) cancel() {
	if p.pending {
		p.tag++
		p.pending = false
	}
}

// Enter opens the panel and cancels a pending close. Calling it while open
// changes nothing else.
func (p *HoverPanel) Enter() tea.Cmd {
	if p == nil || p.disposed {
		return nil
	}
	p.cancel()
	p.open = true
	return nil
}

// Leave schedules a close after the delay. A closed panel ignores it.
func (p *HoverPanel) Leave() tea.Cmd {
	if p == nil || p.disposed || !p.open {
		return nil
	}
	p.cancel()
	p.tag++
	p.pending = true
	return p.sched.After(p.delay, hoverCloseMsg{id: p.id, tag: p.tag})
}

// Select closes the panel at once and returns action, the caller's
// navigation side effect.
func (p *HoverPanel) Select(action tea.Cmd) tea.Cmd {
	if p == nil || p.disposed {
		return nil
	}
	p.cancel()
	p.open = false
	return action
}

// Close shuts the panel immediately without an action
func (p *HoverPanel) Close() {
	if p == nil || p.disposed {
		return
	}
	p.cancel()
	p.open = false
}

// Update applies a scheduled close if it is still the current one
func (p *HoverPanel) Update(msg tea.Msg) tea.Cmd {
	if p == nil || p.disposed {
		return nil
	}
	m, ok := msg.(hoverCloseMsg)
	if !ok || m.id != p.id || m.tag != p.tag || !p.pending {
		return nil
	}
	p.pending = false
	p.open = false
	return nil
}

// Dispose cancels the pending close and detaches the panel from all timers
func (p *HoverPanel) Dispose() {
	if p == nil {
		return
	}
	p.cancel()
	p.disposed = true
}
