package appointment

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the in-memory ordered appointment list. IDs are UUIDs so rapid
// successive creations can never collide. Reads return copies in insertion
// order.
type Store struct {
	mu    sync.RWMutex
	appts []Appointment
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Create(a *Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	a.ID = uuid.New().String()
	a.CreatedAt = now
	a.UpdatedAt = now
	s.appts = append(s.appts, *a)
}

func (s *Store) Get(id string) (*Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.appts {
		if s.appts[i].ID == id {
			a := s.appts[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Update(a *Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appts {
		if s.appts[i].ID == a.ID {
			a.CreatedAt = s.appts[i].CreatedAt
			a.UpdatedAt = time.Now()
			s.appts[i] = *a
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appts {
		if s.appts[i].ID == id {
			s.appts = append(s.appts[:i], s.appts[i+1:]...)
			return
		}
	}
}

func (s *Store) List() []Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Appointment, len(s.appts))
	copy(out, s.appts)
	return out
}
