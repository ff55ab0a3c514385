package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketPrefs = "prefs"

// boltOpenTimeout bounds how long Open waits for another process holding the
// database lock.
const boltOpenTimeout = time.Second

// BoltStore keeps keys in a single bbolt bucket
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens or creates the bbolt database at path.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening bolt store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPrefs))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing bolt store: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get returns the value stored under key
func (s *BoltStore) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPrefs))
		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		value = string(v)
		return nil
	})
	return value, err
}

// Set stores value under key
func (s *BoltStore) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPrefs))
		return b.Put([]byte(key), []byte(value))
	})
}

// Delete removes key
func (s *BoltStore) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketPrefs))
		return b.Delete([]byte(key))
	})
}

// Close releases the database lock
func (s *BoltStore) Close() error {
	return s.db.Close()
}
