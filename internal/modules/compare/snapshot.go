// README: Ephemeral snapshot store correlating compare results with choose.
package compare

import (
	"context"
	"sync"
	"time"

	"farecast/internal/modules/fare"
)

type snapshotEntry struct {
	estimate  fare.Estimate
	expiresAt time.Time
}

// SnapshotStore keeps the exact priced estimate shown to a user until the
// matching choose consumes it. Entries expire after the TTL so abandoned
// snapshots do not accumulate; a background sweep reclaims them.
type SnapshotStore struct {
	mu      sync.Mutex
	entries map[string]snapshotEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewSnapshotStore(ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{
		entries: make(map[string]snapshotEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Save associates the estimate with the id, replacing any previous entry.
func (s *SnapshotStore) Save(id string, estimate fare.Estimate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = snapshotEntry{
		estimate:  estimate,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Get returns the live estimate for the id. Expired entries behave as
// absent and are reclaimed on the spot.
func (s *SnapshotStore) Get(id string) (fare.Estimate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return fare.Estimate{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return fare.Estimate{}, false
	}
	return e.estimate, true
}

// Remove deletes the entry. Removing an absent id is a no-op.
func (s *SnapshotStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len reports the number of live entries, expired included until swept.
func (s *SnapshotStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// RunSweeper reclaims expired snapshots until the context is done.
func (s *SnapshotStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SnapshotStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
