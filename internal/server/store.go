// internal/server/store.go
package server

import (
	"sync"

	"candy-defense/internal/app"
)

// SnapshotStore keeps the latest published world snapshot. The game loop
// writes, HTTP handlers read.
type SnapshotStore struct {
	mu     sync.RWMutex
	latest app.Snapshot
	ok     bool
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish implements app.SnapshotSink.
func (s *SnapshotStore) Publish(snap app.Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.ok = true
	s.mu.Unlock()
}

// Latest returns the last snapshot and whether anything was published yet.
func (s *SnapshotStore) Latest() (app.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.ok
}
