// Package timing abstracts how page controllers schedule delayed messages,
// so the same controller runs on tea.Tick in the program and on a virtual
// clock in tests.
package timing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns "deliver msg after d" into a command for the event loop.
type Scheduler interface {
	After(d time.Duration, msg tea.Msg) tea.Cmd
}

// Tea schedules with tea.Tick.
type Tea struct{}

// After implements Scheduler
func (Tea) After(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Default is the scheduler used when none is injected.
var Default Scheduler = Tea{}

// OrDefault returns s, or Default when s is nil
func OrDefault(s Scheduler) Scheduler {
	if s == nil {
		return Default
	}
	return s
}
