package components

import "sync/atomic"

var lastID atomic.Int64

// nextID returns a process-unique controller id so timer messages from one
// controller are never mistaken for another's.
func nextID() int {
	return int(lastID.Add(1))
}
