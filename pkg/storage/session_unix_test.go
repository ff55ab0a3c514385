//go:build !windows

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPruneSessionsRemovesDeadTerminalSession(t *testing.T) {
	dir := t.TempDir()

	// PID 0x7ffffffe is far above any pid_max.
	dead := filepath.Join(dir, sessionFilePrefix+"sid2147483646"+sessionFileSuffix)
	if err := os.WriteFile(dead, []byte(`{"version":1,"values":{"hasVisited":"true"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(dir, sessionFilePrefix+"pinned"+sessionFileSuffix)
	if err := os.WriteFile(stale, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-2 * staleSessionAge)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatal(err)
	}
	fresh := filepath.Join(dir, sessionFilePrefix+"fresh"+sessionFileSuffix)
	if err := os.WriteFile(fresh, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := PruneSessions(dir)
	if err != nil {
		t.Fatalf("PruneSessions: %v", err)
	}
	if n != 2 {
		t.Fatalf("removed %d files, want 2", n)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh pinned session removed: %v", err)
	}
}
