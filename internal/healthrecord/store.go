package healthrecord

import (
	"sync"
	"time"
)

// Store is the in-memory ordered health-record list.
type Store struct {
	mu      sync.RWMutex
	records []HealthRecord
	nextID  int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Create(r *HealthRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r.ID = s.nextID
	s.nextID++
	r.CreatedAt = now
	r.UpdatedAt = now
	s.records = append(s.records, *r)
}

func (s *Store) Get(id int64) (*HealthRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Update(r *HealthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == r.ID {
			r.CreatedAt = s.records[i].CreatedAt
			r.UpdatedAt = time.Now()
			s.records[i] = *r
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

func (s *Store) List() []HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]HealthRecord, len(s.records))
	copy(out, s.records)
	return out
}
