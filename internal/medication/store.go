package medication

import (
	"sync"
	"time"
)

// Store is the in-memory ordered medication list. Mutations run under the
// lock; reads return copies in insertion order.
type Store struct {
	mu     sync.RWMutex
	meds   []Medication
	nextID int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Create(m *Medication) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	m.ID = s.nextID
	s.nextID++
	m.CreatedAt = now
	m.UpdatedAt = now
	s.meds = append(s.meds, *m)
}

func (s *Store) Get(id int64) (*Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.meds {
		if s.meds[i].ID == id {
			m := s.meds[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Update(m *Medication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meds {
		if s.meds[i].ID == m.ID {
			m.CreatedAt = s.meds[i].CreatedAt
			m.UpdatedAt = time.Now()
			s.meds[i] = *m
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meds {
		if s.meds[i].ID == id {
			s.meds = append(s.meds[:i], s.meds[i+1:]...)
			return
		}
	}
}

func (s *Store) List() []Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Medication, len(s.meds))
	copy(out, s.meds)
	return out
}
