// Package storage provides the small key-value stores behind folio's two
// persisted flags: a durable store for preferences and a session-scoped
// store that lives only as long as the terminal session.
package storage

import (
	"errors"
	"fmt"

	"folio/pkg/config"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("storage: key not found")

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Store is a string key-value store. Implementations are safe for use by a
// single process; concurrent writers from other processes are last-writer-wins.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Open opens the durable store for the given backend at path.
func Open(backend config.StorageBackend, path string) (Store, error) {
	switch backend {
	case config.BackendFile, "":
		return NewFileStore(path), nil
	case config.BackendBolt:
		return OpenBolt(path)
	case config.BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
