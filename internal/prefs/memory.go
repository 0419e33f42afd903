package prefs

import (
	"context"
	"sync"
)

// MemoryStore keeps preferences for the life of the process.
type MemoryStore struct {
	mu    sync.Mutex
	prefs *Prefs
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (Prefs, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prefs == nil {
		return Prefs{}, ErrNotFound
	}
	return *m.prefs, nil
}

func (m *MemoryStore) Save(ctx context.Context, p Prefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs = &p
	return nil
}
