package healthrecord

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesikahq/family-health/internal/activity"
)

var (
	ErrNotFound       = errors.New("health record not found")
	ErrTitleRequired  = errors.New("record title is required")
	ErrTypeRequired   = errors.New("record type is required")
	ErrMemberRequired = errors.New("family member is required")
	ErrDateRequired   = errors.New("record date is required")
)

type Service interface {
	Create(ctx context.Context, r *HealthRecord) error
	Get(ctx context.Context, id int64) (*HealthRecord, error)
	Update(ctx context.Context, r *HealthRecord) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]HealthRecord, error)
	ListByMember(ctx context.Context, memberID *int64) ([]HealthRecord, error)
	CountByFamilyMember(ctx context.Context, memberID int64) int
}

type service struct {
	store    *Store
	activity activity.Service
}

func NewService(store *Store, act activity.Service) Service {
	return &service{store: store, activity: act}
}

func (s *service) Create(ctx context.Context, r *HealthRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}

	s.store.Create(r)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventCreate,
		Action:     "CREATE",
		Resource:   "health_record",
		ResourceID: fmt.Sprintf("%d", r.ID),
		Details:    r.Title,
	})
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*HealthRecord, error) {
	return s.store.Get(id)
}

func (s *service) Update(ctx context.Context, r *HealthRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if err := s.store.Update(r); err != nil {
		return err
	}

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventUpdate,
		Action:     "UPDATE",
		Resource:   "health_record",
		ResourceID: fmt.Sprintf("%d", r.ID),
		Details:    r.Title,
	})
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	s.store.Delete(id)

	s.activity.LogEvent(ctx, &activity.Event{
		EventType:  activity.EventDelete,
		Action:     "DELETE",
		Resource:   "health_record",
		ResourceID: fmt.Sprintf("%d", id),
	})
	return nil
}

func (s *service) List(ctx context.Context) ([]HealthRecord, error) {
	return s.store.List(), nil
}

// ListByMember filters by owning family member; nil means all members.
func (s *service) ListByMember(ctx context.Context, memberID *int64) ([]HealthRecord, error) {
	records := s.store.List()
	if memberID == nil {
		return records, nil
	}
	out := make([]HealthRecord, 0)
	for _, r := range records {
		if r.FamilyMemberID == *memberID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *service) CountByFamilyMember(ctx context.Context, memberID int64) int {
	records, _ := s.ListByMember(ctx, &memberID)
	return len(records)
}
