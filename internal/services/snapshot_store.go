package services

import (
	"sync"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// SnapshotStore holds the current analytics snapshot. Snapshots are
// replaced wholesale by the refresh workflow; readers always see a
// consistent set of records and rollups. Stored snapshots are treated
// as immutable and must not be mutated by callers.
type SnapshotStore struct {
	mu      sync.RWMutex
	current *domain.Snapshot
}

// NewSnapshotStore creates an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Current returns the latest snapshot, or ErrNoSnapshot when no
// refresh has completed yet.
func (s *SnapshotStore) Current() (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoSnapshot
	}
	return s.current, nil
}

// Set atomically replaces the current snapshot.
func (s *SnapshotStore) Set(snapshot *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snapshot
}

// Ready reports whether a snapshot is available.
func (s *SnapshotStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
