package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/pkg/timing"
)

// Role is how an index should be drawn during a crossfade
type Role int

const (
	RoleHidden Role = iota
	RoleActive
	RolePrevious
)

func (r Role) String() string {
	switch r {
	case RoleActive:
		return "active"
	case RolePrevious:
		return "previous"
	default:
		return "hidden"
	}
}

type rotateTickMsg struct {
	id  int
	tag int
}

// Rotator cycles an index through [0, n) on a fixed interval. It can be
// paused, resumed and seeked. With n <= 1 it never schedules a tick.
type Rotator struct {
	id       int
	tag      int
	n        int
	active   int
	interval time.Duration
	sched    timing.Scheduler

	running bool // rotation wanted
	ticking bool // a tick is scheduled
	stopped bool
}

// NewRotator returns a stopped rotator over n items starting at index 0
func NewRotator(n int, interval time.Duration, sched timing.Scheduler) *Rotator {
	if n < 0 {
		n = 0
	}
	return &Rotator{
		id:       nextID(),
		n:        n,
		interval: interval,
		sched:    timing.OrDefault(sched),
	}
}

// Active returns the current index
func (r *Rotator) Active() int {
	return r.active
}

// Previous returns the index shown before the active one
func (r *Rotator) Previous() int {
	if r.n <= 1 {
		return r.active
	}
	return (r.active - 1 + r.n) % r.n
}

// Role reports how index i relates to the active index
func (r *Rotator) Role(i int) Role {
	switch {
	case i == r.active:
		return RoleActive
	case r.n > 1 && i == r.Previous():
		return RolePrevious
	default:
		return RoleHidden
	}
}

// Len returns the number of items
func (r *Rotator) Len() int {
	return r.n
}

// Running reports whether rotation is enabled
func (r *Rotator) Running() bool {
	return r.running
}

// Interval returns the tick interval
func (r *Rotator) Interval() time.Duration {
	return r.interval
}

func (r *Rotator) cancel() {
	r.tag++
	r.ticking = false
}

func (r *Rotator) schedule() tea.Cmd {
	r.cancel()
	if r.n <= 1 || r.interval <= 0 {
		return nil
	}
	r.ticking = true
	return r.sched.After(r.interval, rotateTickMsg{id: r.id, tag: r.tag})
}

// Start enables rotation and schedules the first tick
func (r *Rotator) Start() tea.Cmd {
	if r.stopped {
		return nil
	}
	r.running = true
	return r.schedule()
}

// Pause cancels the recurring tick and keeps the active index
func (r *Rotator) Pause() {
	if r.stopped || !r.running {
		return
	}
	r.running = false
	r.cancel()
}

// Resume restarts rotation a full interval from now. Resuming a running
// rotator does nothing, so repeated hover events keep the cadence.
func (r *Rotator) Resume() tea.Cmd {
	if r.stopped || r.running {
		return nil
	}
	return r.Start()
}

// SelectIndex jumps to i without touching the tick schedule. Out of range
// indexes are ignored.
func (r *Rotator) SelectIndex(i int) {
	if r.stopped || i < 0 || i >= r.n {
		return
	}
	r.active = i
}

// SetLen resizes the sequence and clamps the active index into range. A
// running rotator that grows past one item starts ticking.
func (r *Rotator) SetLen(n int) tea.Cmd {
	if n < 0 {
		n = 0
	}
	r.n = n
	switch {
	case n == 0:
		r.active = 0
	case r.active >= n:
		r.active = n - 1
	}
	if n <= 1 {
		r.cancel()
		return nil
	}
	if r.running && !r.ticking && !r.stopped {
		return r.schedule()
	}
	return nil
}

// Update advances on the current tick and schedules the next one. Ticks
// from before a pause, resume or stop are dropped.
func (r *Rotator) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(rotateTickMsg)
	if !ok || m.id != r.id || m.tag != r.tag || r.stopped || !r.running {
		return nil
	}
	r.ticking = false
	if r.n <= 1 {
		return nil
	}
	r.active = (r.active + 1) % r.n
	return r.schedule()
}

// Stop cancels rotation for good
func (r *Rotator) Stop() {
	r.running = false
	r.stopped = true
	r.cancel()
}
