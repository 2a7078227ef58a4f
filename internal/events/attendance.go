// Package events defines the wire payloads exchanged over the attendance
// event topic.
package events

import "time"

// EventTypeAttendanceRecorded is the event_type header value for attendance
// facts emitted by the capture layer.
const EventTypeAttendanceRecorded = "attendance.recorded"

// AttendanceRecorded is emitted every time an actor performs a check-in or
// check-out. Records are immutable facts; corrections are new events.
type AttendanceRecorded struct {
	EventID       string    `json:"event_id"`
	ActorID       string    `json:"actor_id"`
	Action        string    `json:"action"`
	RecordedAt    time.Time `json:"recorded_at"`
	OriginAddress string    `json:"origin_address"`
	Location      string    `json:"location,omitempty"`
	DeviceInfo    string    `json:"device_info,omitempty"`
	Source        string    `json:"source,omitempty"`
	Version       string    `json:"version,omitempty"`
}
