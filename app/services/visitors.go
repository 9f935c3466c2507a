package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"mvpi-scorecard/app/storage"
)

type visitState struct {
	Count     int       `json:"count"`
	LastVisit time.Time `json:"last_visit"`
}

// VisitorTracker counts dashboard visits. It is constructed once at
// application start and passed to the routes that need it; it replaces the
// lazily-instantiated process-wide singleton the old code used.
type VisitorTracker struct {
	mu    sync.Mutex
	store storage.Store
	now   func() time.Time
	state visitState
}

func NewVisitorTracker(s storage.Store) *VisitorTracker {
	t := &VisitorTracker{store: s, now: time.Now}

	raw, ok, err := s.Get(storage.KeyVisits)
	if err != nil {
		log.Printf("visitors: failed to load visit state: %v", err)
		return t
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &t.state); err != nil {
			log.Printf("visitors: discarding unreadable visit state: %v", err)
			t.state = visitState{}
		}
	}
	return t
}

// Record counts one visit and persists the counter.
func (t *VisitorTracker) Record() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.Count++
	t.state.LastVisit = t.now()

	data, err := json.Marshal(t.state)
	if err == nil {
		if err := t.store.Set(storage.KeyVisits, string(data)); err != nil {
			log.Printf("visitors: failed to persist visit state: %v", err)
		}
	}
	return t.state.Count
}

// Snapshot returns the current count and last visit time.
func (t *VisitorTracker) Snapshot() (int, time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Count, t.state.LastVisit
}
