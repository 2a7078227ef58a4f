package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/attendance/internal/domain"
)

var (
	verdictCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attendance",
		Subsystem: "engine",
		Name:      "verdicts_total",
		Help:      "Number of action validations grouped by action and outcome.",
	}, []string{"action", "outcome"})

	verdictCodeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attendance",
		Subsystem: "engine",
		Name:      "verdict_codes_total",
		Help:      "Number of rejection and warning codes emitted by the validator.",
	}, []string{"code"})

	integrityIssueCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attendance",
		Subsystem: "audit",
		Name:      "integrity_issues_total",
		Help:      "Number of integrity issues detected grouped by issue type.",
	}, []string{"type"})

	lastAuditGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "attendance",
		Subsystem: "audit",
		Name:      "last_audit_timestamp_seconds",
		Help:      "Unix timestamp of the most recent completed audit pass.",
	})

	attendanceRateGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "attendance",
		Subsystem: "audit",
		Name:      "attendance_rate_percent",
		Help:      "Attendance rate from the most recent audit pass.",
	})
)

func init() {
	prometheus.MustRegister(verdictCounter, verdictCodeCounter, integrityIssueCounter, lastAuditGauge, attendanceRateGauge)
}

// RecordVerdict tracks one validation outcome.
func RecordVerdict(action domain.Action, verdict domain.Verdict) {
	outcome := "accepted"
	if !verdict.Valid {
		outcome = "rejected"
	}
	verdictCounter.WithLabelValues(string(action), outcome).Inc()
	for _, code := range verdict.Errors {
		verdictCodeCounter.WithLabelValues(code).Inc()
	}
	for _, code := range verdict.Warnings {
		verdictCodeCounter.WithLabelValues(code).Inc()
	}
}

// RecordAudit tracks the outcome of one audit pass.
func RecordAudit(report domain.IntegrityReport, at time.Time) {
	for _, issue := range report.Issues {
		integrityIssueCounter.WithLabelValues(issue.Type).Inc()
	}
	attendanceRateGauge.Set(float64(report.Statistics.AttendanceRate))
	if !at.IsZero() {
		lastAuditGauge.Set(float64(at.Unix()))
	}
}
