// Package worker runs the periodic integrity audit over the event log.
package worker

import (
	"context"
	"log"
	"time"

	"example.com/attendance/internal/domain"
	"example.com/attendance/internal/eventlog"
	"example.com/attendance/internal/observability"
)

// Runner executes audit passes on a fixed interval.
type Runner struct {
	engine   *domain.Engine
	log      *eventlog.InMemoryLog
	interval time.Duration
	logger   *log.Logger
	now      func() time.Time
}

// Option configures optional Runner behaviour.
type Option func(*Runner)

// WithLogger overrides the logger used to report audit outcomes.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner constructs a Runner over the provided engine and event log.
func NewRunner(engine *domain.Engine, eventLog *eventlog.InMemoryLog, interval time.Duration, opts ...Option) *Runner {
	if interval <= 0 {
		interval = time.Minute
	}
	r := &Runner{
		engine:   engine,
		log:      eventLog,
		interval: interval,
		logger:   log.New(log.Writer(), "[audit] ", log.LstdFlags),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunOnce executes a single audit pass and returns the report.
func (r *Runner) RunOnce() domain.IntegrityReport {
	report := r.engine.AuditIntegrity(r.log.All())
	observability.RecordAudit(report, r.now())

	if report.Valid {
		r.logger.Printf("audit clean (days=%d, rate=%d%%)", report.Statistics.TotalDays, report.Statistics.AttendanceRate)
	} else {
		r.logger.Printf("audit found %d issues (days=%d, rate=%d%%)", len(report.Issues), report.Statistics.TotalDays, report.Statistics.AttendanceRate)
		for _, issue := range report.Issues {
			r.logger.Printf("issue actor=%s date=%s type=%s: %s", issue.ActorID, issue.Date.Format(time.DateOnly), issue.Type, issue.Message)
		}
	}
	for _, rec := range report.Recommendations {
		r.logger.Printf("recommendation [%s] %s", rec.Severity, rec.Message)
	}
	return report
}

// Run executes audit passes until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.RunOnce()
		}
	}
}
