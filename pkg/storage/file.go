package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const currentFileVersion = 1

// fileState is the on-disk layout of a FileStore.
type fileState struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

func (s *fileState) normalize() {
	if s.Version == 0 {
		s.Version = currentFileVersion
	}
	if s.Values == nil {
		s.Values = map[string]string{}
	}
}

// FileStore keeps all keys in a single JSON document. Every operation
// re-reads the file so that a second process sees the latest write.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the JSON file at path. The file and
// its directory are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) load() (*fileState, error) {
	state := &fileState{}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		state.normalize()
		return state, nil
	} else if err != nil {
		return nil, err
	}

	// A truncated or hand-edited file reads as empty rather than failing.
	if len(data) > 0 {
		if err := json.Unmarshal(data, state); err != nil {
			state = &fileState{}
		}
	}
	state.normalize()
	return state, nil
}

func (f *FileStore) save(state *fileState) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	state.normalize()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Get returns the value stored under key
func (f *FileStore) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := state.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores value under key
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return err
	}
	state.Values[key] = value
	return f.save(state)
}

// Delete removes key; deleting a missing key is not an error
func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := state.Values[key]; !ok {
		return nil
	}
	delete(state.Values, key)
	return f.save(state)
}

// Close is a no-op; the file is not held open
func (f *FileStore) Close() error {
	return nil
}
