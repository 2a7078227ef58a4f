// Package domain implements the attendance rule engine: per-action
// validation, day aggregation, streaks, and history integrity auditing.
// Every entry point is a pure function over its inputs; persistence and
// transport belong to the caller.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Action identifies the kind of attendance event an actor performs.
type Action string

const (
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
)

// KnownAction reports whether the action belongs to the supported vocabulary.
func KnownAction(a Action) bool {
	return a == ActionCheckIn || a == ActionCheckOut
}

// OriginUnknown is the sentinel the caller supplies when the network origin
// of a request could not be determined.
const OriginUnknown = "unknown"

// AttendanceEvent is one immutable attendance fact. Events are append-only;
// the engine never mutates them.
type AttendanceEvent struct {
	ID            string    `json:"id"`
	ActorID       string    `json:"actor_id"`
	Action        Action    `json:"action"`
	RecordedAt    time.Time `json:"recorded_at"`
	OriginAddress string    `json:"origin_address"`
	Location      string    `json:"location,omitempty"`
	DeviceInfo    string    `json:"device_info,omitempty"`
}

var errMissingField = errors.New("missing required field")

// Validate enforces the fixed event schema at the boundary. A failure here
// is a malformed record from the caller, not a business-rule violation.
func (e AttendanceEvent) Validate() error {
	if strings.TrimSpace(e.ActorID) == "" {
		return fmt.Errorf("%w: actor_id", errMissingField)
	}
	if !KnownAction(e.Action) {
		return fmt.Errorf("unknown action %q", e.Action)
	}
	if e.RecordedAt.IsZero() {
		return fmt.Errorf("%w: recorded_at", errMissingField)
	}
	return nil
}

// DayState classifies an actor's progress through one attendance day.
type DayState string

const (
	DayStateNone     DayState = "none"
	DayStatePartial  DayState = "partial"
	DayStateComplete DayState = "complete"
)

// DayStatus is the derived per-actor-per-date summary. It is recomputed from
// the raw event set on every query and never cached authoritatively.
type DayStatus struct {
	Date         time.Time  `json:"date"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	State        DayState   `json:"state"`
	HoursWorked  float64    `json:"hours_worked"`
}

// HasCheckIn reports whether a check-in has been observed for the day.
func (d DayStatus) HasCheckIn() bool { return d.CheckInTime != nil }

// HasCheckOut reports whether a check-out has been observed for the day.
func (d DayStatus) HasCheckOut() bool { return d.CheckOutTime != nil }
