package sites

import (
	"sync"
	"sync/atomic"

	"github.com/gyeh/sitecards/internal/model"
)

// Store holds the current record set. Loads take a generation from Begin and
// hand their result to Commit; a result older than the applied set is
// discarded so a slow load can never overwrite a newer one.
type Store struct {
	next atomic.Uint64

	mu      sync.RWMutex
	rows    []model.SiteRow
	applied uint64
	summary *model.LoadSummary
}

func NewStore() *Store {
	return &Store{rows: []model.SiteRow{}}
}

// Begin reserves the next load generation.
func (s *Store) Begin() uint64 {
	return s.next.Add(1)
}

// Commit replaces the record set with rows if gen is newer than the applied
// generation. It reports whether the rows were applied. The summary, if any,
// is recorded alongside.
func (s *Store) Commit(gen uint64, rows []model.SiteRow, summary *model.LoadSummary) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.applied {
		return false
	}
	if rows == nil {
		rows = []model.SiteRow{}
	}
	s.rows = rows
	s.applied = gen
	if summary != nil {
		summary.Applied = true
		s.summary = summary
	}
	return true
}

// Snapshot returns the current rows and their generation. The slice is shared
// and must not be modified.
func (s *Store) Snapshot() ([]model.SiteRow, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows, s.applied
}

// Len returns the number of rows in the current set.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// LastSummary returns the summary of the applied load, or nil before the first.
func (s *Store) LastSummary() *model.LoadSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.summary == nil {
		return nil
	}
	cp := *s.summary
	return &cp
}
