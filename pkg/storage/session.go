package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	sessionFilePrefix = "session-"
	sessionFileSuffix = ".json"
)

// staleSessionAge is how long a session file whose liveness cannot be
// checked is kept.
const staleSessionAge = 7 * 24 * time.Hour

// SessionStore is a FileStore scoped to one terminal session. Its file lives
// in a temp directory and is removed once the session is gone.
type SessionStore struct {
	*FileStore
	id string
}

// OpenSession returns the store for session id under dir. An empty id means
// the current terminal session.
func OpenSession(dir, id string) (*SessionStore, error) {
	if id == "" {
		id = CurrentSessionID()
	}
	id = sanitizeSessionID(id)
	if id == "" {
		return nil, errors.New("storage: empty session id")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating session directory: %w", err)
	}
	path := filepath.Join(dir, sessionFilePrefix+id+sessionFileSuffix)
	return &SessionStore{FileStore: NewFileStore(path), id: id}, nil
}

// ID returns the session identifier
func (s *SessionStore) ID() string {
	return s.id
}

// Clear forgets everything stored for this session
func (s *SessionStore) Clear() error {
	err := os.Remove(s.Path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// PruneSessions removes session files under dir whose session has ended.
// It returns the number of files removed.
func PruneSessions(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, sessionFilePrefix) || !strings.HasSuffix(name, sessionFileSuffix) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(name, sessionFilePrefix), sessionFileSuffix)

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if sessionAlive(id, info.ModTime()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err == nil {
			removed++
		}
	}
	return removed, nil
}

func sanitizeSessionID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

var (
	processSessionOnce sync.Once
	processSessionID   string
)

// processSession identifies this process when no terminal session is
// available; the flag then lasts for a single run.
func processSession() string {
	processSessionOnce.Do(func() {
		processSessionID = "proc-" + uuid.NewString()
	})
	return processSessionID
}

func olderThan(mod time.Time, age time.Duration) bool {
	return time.Since(mod) > age
}
