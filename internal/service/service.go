// Package service is the caller-facing surface of the attendance engine. It
// joins the pure rule engine with the event log so callers can validate a
// proposed action against an actor's live day state, and it records verdict
// metrics on every call.
package service

import (
	"time"

	"example.com/attendance/internal/domain"
	"example.com/attendance/internal/eventlog"
	"example.com/attendance/internal/observability"
)

// Service answers attendance queries for one deployment.
type Service struct {
	engine            *domain.Engine
	log               *eventlog.InMemoryLog
	authorizedOrigins []string
}

// NewService constructs a Service. The authorized origin list may be empty,
// which disables membership checks.
func NewService(engine *domain.Engine, log *eventlog.InMemoryLog, authorizedOrigins []string) *Service {
	return &Service{engine: engine, log: log, authorizedOrigins: authorizedOrigins}
}

// DayStatus derives the actor's status for the day containing at.
func (s *Service) DayStatus(actorID string, at time.Time) domain.DayStatus {
	events := s.log.ByActorOn(actorID, at, s.engine.Calendar())
	return s.engine.AggregateDay(events)
}

// ValidateAction checks whether the actor may perform the action now, using
// the actor's current day state from the event log. The verdict includes a
// preview of the resulting state; committing the event stays with the
// caller. Concurrent attempts for the same actor must be serialized by the
// caller for the sequencing check to be authoritative.
func (s *Service) ValidateAction(actorID string, action domain.Action, origin string, now time.Time) domain.Verdict {
	verdict := s.engine.ValidateAction(domain.ValidateInput{
		Action:            action,
		OriginAddress:     origin,
		Day:               s.DayStatus(actorID, now),
		AuthorizedOrigins: s.authorizedOrigins,
		Now:               now,
	})
	observability.RecordVerdict(action, verdict)
	return verdict
}

// Streak computes the actor's consecutive complete-day streaks as of now.
func (s *Service) Streak(actorID string, now time.Time) domain.StreakResult {
	days := s.completeDays(actorID)
	return s.engine.CalculateStreak(days, now)
}

// Summary reduces the actor's history between from and to (inclusive) into
// period statistics. Days without any events count toward the total so the
// attendance rate reflects absences.
func (s *Service) Summary(actorID string, from, to time.Time) domain.PeriodStatistics {
	cal := s.engine.Calendar()
	start := cal.DayOf(from)
	end := cal.DayOf(to)

	var statuses []domain.DayStatus
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		statuses = append(statuses, s.DayStatus(actorID, day))
	}
	return s.engine.Summarize(statuses)
}

// Audit runs a full integrity pass over every actor in the log.
func (s *Service) Audit() domain.IntegrityReport {
	report := s.engine.AuditIntegrity(s.log.All())
	observability.RecordAudit(report, time.Now().UTC())
	return report
}

// completeDays collects the dates on which the actor reached complete
// status, one entry per day.
func (s *Service) completeDays(actorID string) []time.Time {
	cal := s.engine.Calendar()
	byDay := make(map[string][]domain.AttendanceEvent)
	for _, event := range s.log.ByActor(actorID) {
		key := cal.DayKey(event.RecordedAt)
		byDay[key] = append(byDay[key], event)
	}

	var days []time.Time
	for _, bucket := range byDay {
		status := s.engine.AggregateDay(bucket)
		if status.State == domain.DayStateComplete {
			days = append(days, status.Date)
		}
	}
	return days
}
