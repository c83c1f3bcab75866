package session

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lockStripes = 64

// stripedLocks serialises events per session without tracking every session id.
type stripedLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *stripedLocks) lock(id string) func() {
	m := &l.stripes[xxhash.Sum64String(id)%lockStripes]
	m.Lock()

	return m.Unlock
}
