package history

import (
	"context"
	"sync"
)

// MemoryRepository is the default archive: a mutex-guarded slice, newest last.
type MemoryRepository struct {
	mu      sync.RWMutex
	matches []Match
	nextID  int64
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Save(_ context.Context, match Match) (Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	match.ID = r.nextID
	r.nextID++
	r.matches = append(r.matches, match)
	return match, nil
}

func (r *MemoryRepository) List(_ context.Context, room string, limit int) ([]Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]Match, 0, limit)
	for i := len(r.matches) - 1; i >= 0 && len(matches) < limit; i-- {
		m := r.matches[i]
		if room != "" && m.Room != room {
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}
