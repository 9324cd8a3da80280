package state

import (
	"sync"
	"time"

	"github.com/sentinelhq/sentinel/internal/feed"
)

// Snapshot represents the latest feed data available to the UI.
type Snapshot struct {
	Entries   []feed.Entry // newest first, at most feed.HistoryLimit
	LastFired time.Time
	Fired     int // total entries pushed since start
}

// Store coordinates the feed scheduler's writes with the UI's reads.
type Store struct {
	mu        sync.RWMutex
	history   feed.History
	lastFired time.Time
	fired     int
}

// Push records a freshly generated entry.
func (s *Store) Push(e feed.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history.Push(e)
	s.lastFired = e.At
	s.fired++
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Entries:   s.history.Entries(),
		LastFired: s.lastFired,
		Fired:     s.fired,
	}
}
