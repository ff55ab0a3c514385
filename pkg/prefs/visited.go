package prefs

import (
	"errors"

	"folio/internal/debug"
	"folio/pkg/storage"

	"go.uber.org/zap"
)

// VisitedKey is the session storage key recording that the intro has run.
const VisitedKey = "hasVisited"

// VisitFlag reads and writes the once-per-session intro flag
type VisitFlag struct {
	store storage.Store
}

// NewVisitFlag binds the flag to a session-scoped store
func NewVisitFlag(store storage.Store) *VisitFlag {
	return &VisitFlag{store: store}
}

// Visited reports whether the intro already ran this session. Absent or
// unreadable storage means not visited.
func (f *VisitFlag) Visited() bool {
	if f == nil || f.store == nil {
		return false
	}
	raw, err := f.store.Get(VisitedKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			debug.Log().Debug("visit flag unavailable", zap.Error(err))
		}
		return false
	}
	return raw == "true"
}

// MarkVisited sets the flag for the rest of the session
func (f *VisitFlag) MarkVisited() error {
	if f == nil || f.store == nil {
		return nil
	}
	if err := f.store.Set(VisitedKey, "true"); err != nil {
		debug.Log().Warn("failed to save visit flag", zap.Error(err))
		return err
	}
	return nil
}

// Reset clears the flag so the next start shows the intro again
func (f *VisitFlag) Reset() error {
	if f == nil || f.store == nil {
		return nil
	}
	return f.store.Delete(VisitedKey)
}
