package room

import (
	"sort"
	"sync"
	"time"
)

// Store keeps the live rooms. Live state is in-memory by design: rooms are
// throwaway and expire after a few minutes; only the match archive is durable.
type Store interface {
	GetOrCreate(name string, create func() *Room) (rm *Room, created bool)
	Get(name string) (*Room, bool)
	Delete(name string)
	List() []*Room
	Sweep(ttl time.Duration, now time.Time) int
	Len() int
}

// MemoryStore is a mutex-guarded map of rooms keyed by name.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: make(map[string]*Room),
	}
}

func (s *MemoryStore) GetOrCreate(name string, create func() *Room) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rm, ok := s.rooms[name]; ok {
		return rm, false
	}

	rm := create()
	s.rooms[name] = rm
	return rm, true
}

func (s *MemoryStore) Get(name string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rm, ok := s.rooms[name]
	return rm, ok
}

func (s *MemoryStore) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, name)
}

func (s *MemoryStore) List() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Room, 0, len(s.rooms))
	for _, rm := range s.rooms {
		list = append(list, rm)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].name < list[j].name
	})

	return list
}

// Sweep removes rooms idle longer than ttl and returns how many were removed.
func (s *MemoryStore) Sweep(ttl time.Duration, now time.Time) int {
	s.mu.RLock()
	var expired []string
	for name, rm := range s.rooms {
		if rm.Expired(ttl, now) {
			expired = append(expired, name)
		}
	}
	s.mu.RUnlock()

	if len(expired) == 0 {
		return 0
	}

	removed := 0
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range expired {
		rm, ok := s.rooms[name]
		// A join may have revived the room between the two passes.
		if !ok || !rm.Expired(ttl, now) {
			continue
		}
		delete(s.rooms, name)
		removed++
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
