// internal/store/memory.go
//
// In-memory implementation of the Store interface.
//
// Characteristics:
//   - Keeps outcomes in a slice in insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu       sync.RWMutex // guards outcomes
	outcomes []Outcome
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) Record(_ context.Context, o Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, o)
	return nil
}

func (m *memory) Stats(_ context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	results := make([]result, 0, len(m.outcomes))
	for _, o := range m.outcomes {
		results = append(results, result{won: o.Won, attempts: o.Attempts})
	}
	return summarize(results), nil
}

func (m *memory) PlayedDaily(_ context.Context, date string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.outcomes {
		if o.Mode == ModeDaily && o.Date == date {
			return true, nil
		}
	}
	return false, nil
}
