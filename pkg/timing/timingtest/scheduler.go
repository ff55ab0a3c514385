// Package timingtest provides a virtual-clock timing.Scheduler.
package timingtest

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type entry struct {
	at  time.Duration
	seq int
	msg tea.Msg
}

// Scheduler records scheduled messages against a virtual clock that only
// moves when Advance is called. The zero value is ready to use.
type Scheduler struct {
	now     time.Duration
	seq     int
	pending []entry
}

// New returns a scheduler at virtual time zero
func New() *Scheduler {
	return &Scheduler{}
}

// After records msg for delivery at Now()+d. The returned command carries
// no message; delivery happens through Advance.
func (s *Scheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	s.seq++
	s.pending = append(s.pending, entry{at: s.now + d, seq: s.seq, msg: msg})
	return func() tea.Msg { return nil }
}

// Now returns the virtual time elapsed since creation
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns how many messages are waiting, including ones their
// receiver will treat as stale.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Advance moves the clock forward by d, handing every message that comes due
// to deliver in deadline order. Messages scheduled by deliver itself are
// delivered too if they fall inside the window. The clock reads each
// message's deadline while it is delivered.
func (s *Scheduler) Advance(d time.Duration, deliver func(tea.Msg)) {
	target := s.now + d
	for {
		next, ok := s.popDue(target)
		if !ok {
			break
		}
		s.now = next.at
		deliver(next.msg)
	}
	s.now = target
}

func (s *Scheduler) popDue(target time.Duration) (entry, bool) {
	if len(s.pending) == 0 {
		return entry{}, false
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	first := s.pending[0]
	if first.at > target {
		return entry{}, false
	}
	s.pending = s.pending[1:]
	return first, true
}
