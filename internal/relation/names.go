package relation

import (
	"strconv"
	"sync/atomic"
)

// Namer allocates distinct display names for derived tables by appending
// a monotonically increasing counter to the base table's name. The
// counter starts at 0 and is never reset; the increment is atomic so a
// namer stays safe if tables are ever derived from more than one
// goroutine.
type Namer struct {
	n atomic.Int64
}

// NewNamer creates a namer with its counter at 0.
func NewNamer() *Namer {
	return &Namer{}
}

// Next returns base with the next counter value appended.
func (nm *Namer) Next(base string) string {
	return base + strconv.FormatInt(nm.n.Add(1)-1, 10)
}
