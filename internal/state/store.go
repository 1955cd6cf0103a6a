package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/brevity/internal/grid"
	"github.com/five82/brevity/internal/location"
)

// Snapshot is the latest presentation location, shared with readers
// outside the UI event loop.
type Snapshot struct {
	Presentation string
	Title        string
	Counts       []int
	Token        string
	Position     grid.Position
	Busy         bool
	LastOutcome  string
	Navigations  int
	LastUpdated  time.Time
	LastError    error
}

// Loaded reports whether a presentation has been recorded.
func (s Snapshot) Loaded() bool {
	return len(s.Counts) > 0
}

// Store coordinates concurrent access to the snapshot. The zero value is
// ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetPresentation records the loaded presentation and clears any previous
// load error.
func (s *Store) SetPresentation(path, title string, counts []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Presentation = path
	s.snapshot.Title = title
	s.snapshot.Counts = cloneCounts(counts)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
}

// Publish records a published location token.
func (s *Store) Publish(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Token = token
	s.snapshot.Position = location.Decode(token, grid.Position{})
	s.snapshot.LastUpdated = time.Now()
}

// Record stores the outcome of a navigation request.
func (s *Store) Record(outcome string, busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastOutcome = outcome
	s.snapshot.Busy = busy
	s.snapshot.Navigations++
	s.snapshot.LastUpdated = time.Now()
}

// SetBusy updates the animation flag.
func (s *Store) SetBusy(busy bool) {
	s.mu.Lock()
	s.snapshot.Busy = busy
	s.mu.Unlock()
}

// Fail records an error (for example a failed reload) while keeping the
// previous data.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Counts = cloneCounts(s.snapshot.Counts)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneCounts(counts []int) []int {
	if len(counts) == 0 {
		return nil
	}
	dup := make([]int, len(counts))
	copy(dup, counts)
	return dup
}
