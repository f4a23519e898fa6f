package profile

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesikahq/family-health/internal/activity"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrEmailRequired = errors.New("email is required")
)

type Service interface {
	Initialize(ctx context.Context, p *UserProfile) error
	Get(ctx context.Context) (*UserProfile, error)
	Update(ctx context.Context, req *UpdateRequest) (*UserProfile, error)
}

// service owns the single user profile. The record is process-local; the
// mutex scopes every read and mutation.
type service struct {
	mu       sync.RWMutex
	profile  *UserProfile
	activity activity.Service
}

func NewService(act activity.Service) Service {
	return &service{activity: act}
}

// Initialize installs the profile. Call once at startup (seed) or on first
// login; the email set here can never change afterwards.
func (s *service) Initialize(ctx context.Context, p *UserProfile) error {
	if p.Email == "" {
		return ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.profile = p.clone()
	return nil
}

func (s *service) Get(ctx context.Context) (*UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil, ErrNotFound
	}
	return s.profile.clone(), nil
}

// Update applies the non-nil fields of req. Email and CreatedAt are never
// touched; UpdatedAt is refreshed.
func (s *service) Update(ctx context.Context, req *UpdateRequest) (*UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil, ErrNotFound
	}

	p := s.profile
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		p.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Address != nil {
		p.Address = req.Address
	}
	if req.EmergencyContact != nil {
		p.EmergencyContact = req.EmergencyContact
	}
	if req.MedicalInfo != nil {
		p.MedicalInfo = req.MedicalInfo
	}
	if req.Avatar != nil {
		p.Avatar = *req.Avatar
	}
	if req.Preferences != nil {
		p.Preferences = req.Preferences
	}
	p.UpdatedAt = time.Now()

	// Detach from the request's sub-records before storing.
	s.profile = p.clone()

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventUpdate,
		Action:     "UPDATE_PROFILE",
		Resource:   "profile",
		ResourceID: p.ID,
	})

	return s.profile.clone(), nil
}
