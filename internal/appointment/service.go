package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/mesikahq/family-health/internal/activity"
)

var (
	ErrNotFound         = errors.New("appointment not found")
	ErrTitleRequired    = errors.New("appointment title is required")
	ErrMemberRequired   = errors.New("family member is required")
	ErrDateTimeRequired = errors.New("appointment date and time are required")
	ErrInvalidType      = errors.New("invalid appointment type")
	ErrInvalidStatus    = errors.New("invalid appointment status")
	ErrInvalidPriority  = errors.New("invalid appointment priority")
)

// MemberNamer resolves a family member's display name for denormalization
// onto the appointment record. The family service satisfies it.
type MemberNamer interface {
	MemberName(ctx context.Context, memberID int64) (string, error)
}

type Service interface {
	Create(ctx context.Context, a *Appointment) error
	Get(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f Filters) ([]Appointment, error)
	ChangeStatus(ctx context.Context, id string, status Status) (*Appointment, error)
	Summarize(ctx context.Context, now time.Time) (*Summary, error)
	CountByFamilyMember(ctx context.Context, memberID int64) int
}

type service struct {
	store    *Store
	activity activity.Service
	members  MemberNamer
}

func NewService(store *Store, act activity.Service, members MemberNamer) Service {
	return &service{store: store, activity: act, members: members}
}

func (s *service) Create(ctx context.Context, a *Appointment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	// Defaults match the appointment form's initial state.
	if a.Type == "" {
		a.Type = TypeGeneralCheckup
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
	if a.Location.Type == "" {
		a.Location.Type = LocationInPerson
	}
	a.DateTime = a.DateTime.UTC()

	if s.members != nil {
		if name, err := s.members.MemberName(ctx, a.FamilyMemberID); err == nil {
			a.FamilyMemberName = name
		}
	}

	s.store.Create(a)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventCreate,
		Action:     "CREATE",
		Resource:   "appointment",
		ResourceID: a.ID,
		Details:    a.Title,
	})
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.store.Get(id)
}

func (s *service) Update(ctx context.Context, a *Appointment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.DateTime = a.DateTime.UTC()

	if s.members != nil {
		if name, err := s.members.MemberName(ctx, a.FamilyMemberID); err == nil {
			a.FamilyMemberName = name
		}
	}

	if err := s.store.Update(a); err != nil {
		return err
	}

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventUpdate,
		Action:     "UPDATE",
		Resource:   "appointment",
		ResourceID: a.ID,
		Details:    a.Title,
	})
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.store.Delete(id)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventDelete,
		Action:     "DELETE",
		Resource:   "appointment",
		ResourceID: id,
	})
	return nil
}

func (s *service) List(ctx context.Context, f Filters) ([]Appointment, error) {
	return Filter(s.store.List(), f), nil
}

// ChangeStatus sets only the status and refreshes UpdatedAt. The quick
// actions in the list view move Scheduled appointments forward to
// Confirmed, Rescheduled or Cancelled; any valid status remains reachable
// here because the edit form allows it.
func (s *service) ChangeStatus(ctx context.Context, id string, status Status) (*Appointment, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	a, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	a.Status = status
	if err := s.store.Update(a); err != nil {
		return nil, err
	}

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventUpdate,
		Action:     "CHANGE_STATUS",
		Resource:   "appointment",
		ResourceID: id,
		Details:    string(status),
	})
	return s.store.Get(id)
}

func (s *service) Summarize(ctx context.Context, now time.Time) (*Summary, error) {
	return Summarize(s.store.List(), now), nil
}

func (s *service) CountByFamilyMember(ctx context.Context, memberID int64) int {
	return len(Filter(s.store.List(), Filters{FamilyMemberID: &memberID}))
}
