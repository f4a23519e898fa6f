package medication

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mesikahq/family-health/internal/activity"
)

var (
	ErrNotFound          = errors.New("medication not found")
	ErrNameRequired      = errors.New("medication name is required")
	ErrDosageRequired    = errors.New("dosage is required")
	ErrFrequencyRequired = errors.New("frequency is required")
	ErrMemberRequired    = errors.New("family member is required")
)

type Service interface {
	Create(ctx context.Context, m *Medication) error
	Get(ctx context.Context, id int64) (*Medication, error)
	Update(ctx context.Context, m *Medication) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Medication, error)
	ListByMember(ctx context.Context, memberID *int64) ([]Medication, error)
	SetActive(ctx context.Context, id int64, active bool) (*Medication, error)
	Summarize(ctx context.Context, memberID *int64, now time.Time) (*Summary, error)
	CountByFamilyMember(ctx context.Context, memberID int64) int
}

type service struct {
	store    *Store
	activity activity.Service
}

func NewService(store *Store, act activity.Service) Service {
	return &service{store: store, activity: act}
}

func (s *service) Create(ctx context.Context, m *Medication) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.store.Create(m)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventCreate,
		Action:     "CREATE",
		Resource:   "medication",
		ResourceID: fmt.Sprintf("%d", m.ID),
		Details:    m.Name,
	})
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*Medication, error) {
	return s.store.Get(id)
}

func (s *service) Update(ctx context.Context, m *Medication) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if err := s.store.Update(m); err != nil {
		return err
	}

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventUpdate,
		Action:     "UPDATE",
		Resource:   "medication",
		ResourceID: fmt.Sprintf("%d", m.ID),
		Details:    m.Name,
	})
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.store.Delete(id)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventDelete,
		Action:     "DELETE",
		Resource:   "medication",
		ResourceID: fmt.Sprintf("%d", id),
	})
	return nil
}

func (s *service) List(ctx context.Context) ([]Medication, error) {
	return s.store.List(), nil
}

// ListByMember filters by owning family member. A nil memberID means "all
// members" and returns the full list unchanged.
func (s *service) ListByMember(ctx context.Context, memberID *int64) ([]Medication, error) {
	return FilterByMember(s.store.List(), memberID), nil
}

// SetActive toggles the active flag only; every other field of the record
// is left untouched.
func (s *service) SetActive(ctx context.Context, id int64, active bool) (*Medication, error) {
	m, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	m.IsActive = active
	if err := s.store.Update(m); err != nil {
		return nil, err
	}

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventUpdate,
		Action:     "SET_ACTIVE",
		Resource:   "medication",
		ResourceID: fmt.Sprintf("%d", id),
		Details:    fmt.Sprintf("active=%t", active),
	})
	return s.store.Get(id)
}

func (s *service) Summarize(ctx context.Context, memberID *int64, now time.Time) (*Summary, error) {
	return Summarize(FilterByMember(s.store.List(), memberID), now), nil
}

func (s *service) CountByFamilyMember(ctx context.Context, memberID int64) int {
	return len(FilterByMember(s.store.List(), &memberID))
}

// FilterByMember is a pure, stable filter: the result keeps the input's
// relative order, and a nil memberID satisfies every record.
func FilterByMember(meds []Medication, memberID *int64) []Medication {
	if memberID == nil {
		return meds
	}
	out := make([]Medication, 0)
	for _, m := range meds {
		if m.FamilyMemberID == *memberID {
			out = append(out, m)
		}
	}
	return out
}

// Summarize computes the rollup cards in a single pass. "Ending soon" means
// an active medication whose end date falls within the next seven days;
// "daily" matches the frequency text case-insensitively.
func Summarize(meds []Medication, now time.Time) *Summary {
	sum := &Summary{}
	horizon := now.Add(7 * 24 * time.Hour)
	for _, m := range meds {
		sum.Total++
		if m.IsActive {
			sum.Active++
			if m.EndDate != nil && !m.EndDate.After(horizon) {
				sum.EndingSoon++
			}
			if strings.Contains(strings.ToLower(m.Frequency), "daily") {
				sum.Daily++
			}
		} else {
			sum.Inactive++
		}
	}
	return sum
}
