package store

import (
	"context"
	"sync"

	"github.com/2beens/fitrollup/internal/rollup"
)

// Memory keeps entries in process, per owner. Used for local development and tests.
type Memory[E Entry[E]] struct {
	mutex   sync.RWMutex
	lastID  int
	byOwner map[string][]E
}

func NewMemory[E Entry[E]]() *Memory[E] {
	return &Memory[E]{
		byOwner: make(map[string][]E),
	}
}

func (m *Memory[E]) Read(_ context.Context, owner string, w rollup.Window) ([]E, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	entries := make([]E, 0)
	for _, e := range m.byOwner[owner] {
		if w.Contains(e.DayKey()) {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *Memory[E]) Write(_ context.Context, owner string, e E) (E, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.lastID++
	stored := e.WithID(m.lastID)
	m.byOwner[owner] = append(m.byOwner[owner], stored)
	return stored, nil
}

func (m *Memory[E]) Count(owner string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.byOwner[owner])
}
