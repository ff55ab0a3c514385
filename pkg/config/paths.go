// Package config provides configuration loading and on-disk locations
// for the folio application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// HomeEnvVar overrides the location of the .folio directory.
const HomeEnvVar = "FOLIO_HOME"

// GetFolioDir returns the path to the .folio directory
func GetFolioDir() (string, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".folio"), nil
}

// EnsureFolioDir creates the .folio directory if it doesn't exist
func EnsureFolioDir() error {
	folioDir, err := GetFolioDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(folioDir, 0755)
}

// DefaultConfigPath returns ~/.folio/config.yml
func DefaultConfigPath() string {
	folioDir, err := GetFolioDir()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(folioDir, "config.yml")
}

// defaultSessionDir is a per-user directory under the system temp dir.
// The OS clears it on reboot, which bounds how long session flags live.
func defaultSessionDir() string {
	return filepath.Join(os.TempDir(), "folio-"+strconv.Itoa(os.Getuid()))
}

func defaultStorePath(backend StorageBackend) string {
	folioDir, err := GetFolioDir()
	if err != nil {
		folioDir = "."
	}
	switch backend {
	case BackendBolt:
		return filepath.Join(folioDir, "state.db")
	case BackendSQLite:
		return filepath.Join(folioDir, "state.sqlite")
	default:
		return filepath.Join(folioDir, "state.json")
	}
}

func defaultLogPath() string {
	folioDir, err := GetFolioDir()
	if err != nil {
		return "debug.log"
	}
	return filepath.Join(folioDir, "debug.log")
}

// ResolvePaths fills in any path left empty with its default location.
func (c *Config) ResolvePaths() {
	if c.Storage.Path == "" {
		c.Storage.Path = defaultStorePath(c.Storage.Backend)
	}
	if c.Session.Dir == "" {
		c.Session.Dir = defaultSessionDir()
	}
	if c.Log.Path == "" {
		c.Log.Path = defaultLogPath()
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("storage=%s(%s) session=%s content=%q", c.Storage.Backend, c.Storage.Path, c.Session.Dir, c.Content.Path)
}
