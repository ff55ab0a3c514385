//go:build windows

package storage

import "time"

// CurrentSessionID falls back to a per-process identifier on Windows.
func CurrentSessionID() string {
	return processSession()
}

func sessionAlive(_ string, modTime time.Time) bool {
	return !olderThan(modTime, staleSessionAge)
}
