package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"example.com/attendance/internal/domain"
	"example.com/attendance/internal/events"
	"example.com/attendance/internal/eventlog"
)

// RecordHandler appends attendance.recorded events to the in-memory event
// log the audit worker scans. It is idempotent by event ID, so Kafka
// redeliveries are harmless.
type RecordHandler struct {
	log *eventlog.InMemoryLog
}

// NewRecordHandler constructs a handler backed by the provided log.
func NewRecordHandler(log *eventlog.InMemoryLog) *RecordHandler {
	return &RecordHandler{log: log}
}

// Handle decodes and stores one attendance event. Events of other types are
// ignored.
func (h *RecordHandler) Handle(_ context.Context, msg Message) error {
	if msg.EventType != events.EventTypeAttendanceRecorded {
		return nil
	}

	var evt events.AttendanceRecorded
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode attendance payload: %w", err)
	}

	record := domain.AttendanceEvent{
		ID:            evt.EventID,
		ActorID:       evt.ActorID,
		Action:        domain.Action(strings.TrimSpace(evt.Action)),
		RecordedAt:    evt.RecordedAt,
		OriginAddress: evt.OriginAddress,
		Location:      evt.Location,
		DeviceInfo:    evt.DeviceInfo,
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = msg.Timestamp
	}
	if strings.TrimSpace(record.OriginAddress) == "" {
		record.OriginAddress = domain.OriginUnknown
	}

	inserted, err := h.log.Append(record)
	if err != nil {
		return fmt.Errorf("append event %s: %w", evt.EventID, err)
	}
	if !inserted {
		recordDuplicate(msg.Topic)
	}
	return nil
}

// EncodeAttendanceRecorded renders the Kafka message value and headers for
// an attendance event. Shared by the producer side of tests and tooling.
func EncodeAttendanceRecorded(evt events.AttendanceRecorded) ([]byte, map[string]string, error) {
	if evt.RecordedAt.IsZero() {
		evt.RecordedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, nil, err
	}
	headers := map[string]string{
		"event_type": events.EventTypeAttendanceRecorded,
		"actor_id":   evt.ActorID,
	}
	return payload, headers, nil
}
