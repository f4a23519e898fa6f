package activity

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type EventType string

const (
	EventCreate EventType = "CREATE"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
	EventLogin  EventType = "LOGIN"
	EventLogout EventType = "LOGOUT"
)

// Event is one entry in the dashboard's recent-activity feed.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	EventType  EventType `json:"event_type"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id"`
	Details    string    `json:"details,omitempty"`
}

type Service interface {
	LogEvent(ctx context.Context, event *Event) error
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// service keeps a fixed number of events in memory, newest first on read.
// All state is process-local and lost on restart.
type service struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	logger   *logrus.Logger
}

const defaultCapacity = 200

func NewService(capacity int) Service {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	return &service{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

func (s *service) LogEvent(_ context.Context, event *Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	s.mu.Lock()
	s.events = append(s.events, *event)
	if len(s.events) > s.capacity {
		s.events = s.events[len(s.events)-s.capacity:]
	}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"event_type":  event.EventType,
		"action":      event.Action,
		"resource":    event.Resource,
		"resource_id": event.ResourceID,
	}).Info("Activity recorded")

	return nil
}

// Recent returns up to limit events, most recent first.
func (s *service) Recent(_ context.Context, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}

	out := make([]Event, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}
