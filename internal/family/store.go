package family

import (
	"sync"
	"time"
)

// Store is the in-memory ordered list of family members. Insertion order is
// display order; every mutation runs under the lock and returns copies so
// callers never alias stored records.
type Store struct {
	mu      sync.RWMutex
	members []FamilyMember
	nextID  int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Create(m *FamilyMember) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	m.ID = s.nextID
	s.nextID++
	m.CreatedAt = now
	m.UpdatedAt = now
	s.members = append(s.members, *m)
}

func (s *Store) Get(id int64) (*FamilyMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.members {
		if s.members[i].ID == id {
			m := s.members[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

// Update replaces the stored record with the same ID. CreatedAt is kept
// from the stored record; UpdatedAt is refreshed.
func (s *Store) Update(m *FamilyMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == m.ID {
			m.CreatedAt = s.members[i].CreatedAt
			m.UpdatedAt = time.Now()
			s.members[i] = *m
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the member with the given ID. Deleting an unknown ID is a
// no-op.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of all members in insertion order.
func (s *Store) List() []FamilyMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]FamilyMember, len(s.members))
	copy(out, s.members)
	return out
}
