package auth

import (
	"sync"
	"time"
)

// Session is the process-wide login state: empty at startup, set on a
// successful login, cleared on logout. Consumers read it through the auth
// service rather than any ambient global.
type Session struct {
	mu        sync.RWMutex
	active    bool
	profileID string
	email     string
	loginAt   time.Time
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) set(profileID, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.profileID = profileID
	s.email = email
	s.loginAt = time.Now()
}

func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.profileID = ""
	s.email = ""
	s.loginAt = time.Time{}
}

// Active reports whether someone is logged in.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// ProfileID returns the logged-in profile's ID, or "" when logged out.
func (s *Session) ProfileID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileID
}
