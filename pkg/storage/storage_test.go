package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"folio/pkg/config"
	"folio/pkg/storage"
	"folio/pkg/storage/storagetest"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	storagetest.TestStore(t, func(t *testing.T) storage.Store {
		return storage.NewFileStore(path)
	}, true)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	storagetest.TestStore(t, func(t *testing.T) storage.Store {
		s, err := storage.OpenBolt(path)
		if err != nil {
			t.Fatalf("OpenBolt: %v", err)
		}
		return s
	}, true)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.sqlite")
	storagetest.TestStore(t, func(t *testing.T) storage.Store {
		s, err := storage.OpenSQLite(path)
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		return s
	}, true)
}

func TestMemoryStore(t *testing.T) {
	storagetest.TestStore(t, func(t *testing.T) storage.Store {
		return storage.NewMemoryStore()
	}, false)
}

func TestSessionStore(t *testing.T) {
	dir := t.TempDir()
	storagetest.TestStore(t, func(t *testing.T) storage.Store {
		s, err := storage.OpenSession(dir, "test-session")
		if err != nil {
			t.Fatalf("OpenSession: %v", err)
		}
		return s
	}, true)
}

func TestFileStoreCorruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := storage.NewFileStore(path)
	if _, err := s.Get("theme"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get on corrupt file err = %v, want ErrNotFound", err)
	}
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set should repair the file: %v", err)
	}
	if got, _ := s.Get("theme"); got != "dark" {
		t.Fatalf("Get = %q, want dark", got)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []config.StorageBackend{config.BackendFile, config.BackendBolt, config.BackendSQLite} {
		s, err := storage.Open(backend, filepath.Join(dir, string(backend)))
		if err != nil {
			t.Fatalf("Open(%s): %v", backend, err)
		}
		if err := s.Set("k", "v"); err != nil {
			t.Fatalf("%s Set: %v", backend, err)
		}
		_ = s.Close()
	}

	if _, err := storage.Open("redis", filepath.Join(dir, "x")); !errors.Is(err, storage.ErrUnknownBackend) {
		t.Fatalf("Open(redis) err = %v, want ErrUnknownBackend", err)
	}
}

func TestSessionStoresAreIsolated(t *testing.T) {
	dir := t.TempDir()
	a, err := storage.OpenSession(dir, "tab-a")
	if err != nil {
		t.Fatal(err)
	}
	b, err := storage.OpenSession(dir, "tab-b")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Set("hasVisited", "true"); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Get("hasVisited"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("session b sees session a's flag: err = %v", err)
	}

	if err := a.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := a.Get("hasVisited"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("flag survived Clear: err = %v", err)
	}
	if err := a.Clear(); err != nil {
		t.Fatalf("Clear twice: %v", err)
	}
}

func TestOpenSessionSanitizesID(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.OpenSession(dir, "../../etc/passwd")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(s.Path()) != dir {
		t.Fatalf("session file escaped its directory: %s", s.Path())
	}
}

func TestCurrentSessionIDIsStable(t *testing.T) {
	first := storage.CurrentSessionID()
	if first == "" {
		t.Fatal("empty session id")
	}
	if second := storage.CurrentSessionID(); second != first {
		t.Fatalf("session id changed within one process: %q then %q", first, second)
	}
}

func TestPruneSessionsKeepsCurrent(t *testing.T) {
	dir := t.TempDir()
	current, err := storage.OpenSession(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := current.Set("hasVisited", "true"); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := storage.PruneSessions(dir); err != nil {
		t.Fatalf("PruneSessions: %v", err)
	}
	if got, err := current.Get("hasVisited"); err != nil || got != "true" {
		t.Fatalf("current session pruned: %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "unrelated.txt")); err != nil {
		t.Fatalf("non-session file removed: %v", err)
	}
}

func TestPruneSessionsMissingDir(t *testing.T) {
	n, err := storage.PruneSessions(filepath.Join(t.TempDir(), "absent"))
	if err != nil || n != 0 {
		t.Fatalf("PruneSessions(absent) = %d, %v", n, err)
	}
}
