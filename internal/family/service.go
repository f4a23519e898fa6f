package family

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesikahq/family-health/internal/activity"
)

var (
	ErrNotFound         = errors.New("family member not found")
	ErrNameRequired     = errors.New("full name is required")
	ErrRelationRequired = errors.New("relation type is required")
)

// Counter reports how many records in another entity list belong to a
// family member. The medication, appointment and health-record services
// all satisfy it.
type Counter interface {
	CountByFamilyMember(ctx context.Context, memberID int64) int
}

type Service interface {
	Create(ctx context.Context, m *FamilyMember) error
	Get(ctx context.Context, id int64) (*FamilyMember, error)
	Update(ctx context.Context, m *FamilyMember) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]FamilyMember, error)
	Counts(ctx context.Context, memberID int64) (*MemberCounts, error)
	MemberName(ctx context.Context, memberID int64) (string, error)
}

type service struct {
	store        *Store
	activity     activity.Service
	records      Counter
	medications  Counter
	appointments Counter
}

func NewService(store *Store, act activity.Service, records, medications, appointments Counter) Service {
	return &service{
		store:        store,
		activity:     act,
		records:      records,
		medications:  medications,
		appointments: appointments,
	}
}

func (s *service) Create(ctx context.Context, m *FamilyMember) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.store.Create(m)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventCreate,
		Action:     "CREATE",
		Resource:   "family_member",
		ResourceID: fmt.Sprintf("%d", m.ID),
		Details:    m.FullName,
	})
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*FamilyMember, error) {
	return s.store.Get(id)
}

func (s *service) Update(ctx context.Context, m *FamilyMember) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if err := s.store.Update(m); err != nil {
		return err
	}

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventUpdate,
		Action:     "UPDATE",
		Resource:   "family_member",
		ResourceID: fmt.Sprintf("%d", m.ID),
		Details:    m.FullName,
	})
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.store.Delete(id)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventDelete,
		Action:     "DELETE",
		Resource:   "family_member",
		ResourceID: fmt.Sprintf("%d", id),
	})
	return nil
}

func (s *service) List(ctx context.Context) ([]FamilyMember, error) {
	return s.store.List(), nil
}

// MemberName resolves a member's display name for denormalization onto
// records that show it (appointments).
func (s *service) MemberName(ctx context.Context, memberID int64) (string, error) {
	m, err := s.store.Get(memberID)
	if err != nil {
		return "", err
	}
	return m.FullName, nil
}

// Counts derives per-member rollups from the authoritative entity lists.
func (s *service) Counts(ctx context.Context, memberID int64) (*MemberCounts, error) {
	if _, err := s.store.Get(memberID); err != nil {
		return nil, err
	}
	return &MemberCounts{
		HealthRecords: s.records.CountByFamilyMember(ctx, memberID),
		Medications:   s.medications.CountByFamilyMember(ctx, memberID),
		Appointments:  s.appointments.CountByFamilyMember(ctx, memberID),
	}, nil
}
