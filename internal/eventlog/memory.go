// Package eventlog provides an in-memory append-only log of attendance
// events for the audit worker. It is support infrastructure, not the system
// of record; the authoritative store lives with the capture layer.
package eventlog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/attendance/internal/domain"
)

// InMemoryLog stores attendance events keyed by event ID.
type InMemoryLog struct {
	mu     sync.RWMutex
	events map[string]domain.AttendanceEvent
}

// NewInMemoryLog constructs an empty log.
func NewInMemoryLog() *InMemoryLog {
	return &InMemoryLog{events: make(map[string]domain.AttendanceEvent)}
}

// Append records an event if its ID has not been seen before and reports
// whether the event was newly inserted. Re-delivery of the same event ID is
// a no-op, which keeps at-least-once consumers idempotent.
func (l *InMemoryLog) Append(event domain.AttendanceEvent) (bool, error) {
	if err := event.Validate(); err != nil {
		return false, err
	}
	if strings.TrimSpace(event.ID) == "" {
		event.ID = uuid.NewString()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.events[event.ID]; exists {
		return false, nil
	}
	l.events[event.ID] = event
	return true, nil
}

// All returns a copy of every stored event.
func (l *InMemoryLog) All() []domain.AttendanceEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.AttendanceEvent, 0, len(l.events))
	for _, event := range l.events {
		out = append(out, event)
	}
	return out
}

// ByActor returns a copy of the actor's events.
func (l *InMemoryLog) ByActor(actorID string) []domain.AttendanceEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.AttendanceEvent
	for _, event := range l.events {
		if event.ActorID == actorID {
			out = append(out, event)
		}
	}
	return out
}

// ByActorOn returns the actor's events for one calendar day.
func (l *InMemoryLog) ByActorOn(actorID string, day time.Time, cal domain.Calendar) []domain.AttendanceEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.AttendanceEvent
	for _, event := range l.events {
		if event.ActorID == actorID && cal.SameDay(event.RecordedAt, day) {
			out = append(out, event)
		}
	}
	return out
}

// Len reports the number of stored events.
func (l *InMemoryLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
