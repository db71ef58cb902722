package candidates

import (
	"sync"

	"mentionbox/internal/domain"
)

// Store provides read access to the candidate dataset
type Store interface {
	All() []domain.Candidate
	Get(id int) (domain.Candidate, bool)
	Len() int
}

// MemoryStore is an in-memory Store that keeps dataset order
type MemoryStore struct {
	mu    sync.RWMutex
	order []domain.Candidate
	byID  map[int]int // id -> position in order
}

// NewMemoryStore creates a store over a copy of cands
func NewMemoryStore(cands []domain.Candidate) *MemoryStore {
	s := &MemoryStore{
		order: make([]domain.Candidate, len(cands)),
		byID:  make(map[int]int, len(cands)),
	}
	copy(s.order, cands)
	for i, c := range s.order {
		if _, dup := s.byID[c.ID]; !dup {
			s.byID[c.ID] = i
		}
	}
	return s
}

// All returns a copy to prevent external modification
func (s *MemoryStore) All() []domain.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Candidate, len(s.order))
	copy(out, s.order)
	return out
}

func (s *MemoryStore) Get(id int) (domain.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Candidate{}, false
	}
	return s.order[i], true
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
