//go:build !windows

package storage

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

const sidPrefix = "sid"

// CurrentSessionID identifies the terminal session this process belongs to.
// Every shell started in the same terminal window shares it.
func CurrentSessionID() string {
	sid, err := unix.Getsid(0)
	if err != nil || sid <= 0 {
		return processSession()
	}
	return sidPrefix + strconv.Itoa(sid)
}

func sessionAlive(id string, modTime time.Time) bool {
	if !strings.HasPrefix(id, sidPrefix) {
		return !olderThan(modTime, staleSessionAge)
	}
	sid, err := strconv.Atoi(strings.TrimPrefix(id, sidPrefix))
	if err != nil || sid <= 0 {
		return !olderThan(modTime, staleSessionAge)
	}
	err = unix.Kill(sid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
