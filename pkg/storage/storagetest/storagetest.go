// Package storagetest provides a conformance suite run against every
// storage.Store implementation.
package storagetest

import (
	"errors"
	"testing"

	"folio/pkg/storage"
)

// Opener opens a store at a fixed location. Calling it twice must reopen the
// same underlying data unless the store is not durable.
type Opener func(t *testing.T) storage.Store

// TestStore runs the conformance suite. durable says whether values must
// survive Close and a second open.
func TestStore(t *testing.T, open Opener, durable bool) {
	t.Run("missing key", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		if _, err := s.Get("never-set"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
		}
	})

	t.Run("set get overwrite", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		if err := s.Set("theme", "light"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := s.Set("theme", "dark"); err != nil {
			t.Fatalf("Set overwrite: %v", err)
		}
		got, err := s.Get("theme")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "dark" {
			t.Fatalf("Get = %q, want dark", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		if err := s.Set("hasVisited", "true"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := s.Delete("hasVisited"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := s.Get("hasVisited"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("Get after Delete err = %v, want ErrNotFound", err)
		}
		if err := s.Delete("hasVisited"); err != nil {
			t.Fatalf("Delete missing key: %v", err)
		}
	})

	if !durable {
		return
	}

	t.Run("survives reopen", func(t *testing.T) {
		s := open(t)
		if err := s.Set("persist", "yes"); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}

		s = open(t)
		defer s.Close()
		got, err := s.Get("persist")
		if err != nil {
			t.Fatalf("Get after reopen: %v", err)
		}
		if got != "yes" {
			t.Fatalf("Get after reopen = %q, want yes", got)
		}
	})
}
