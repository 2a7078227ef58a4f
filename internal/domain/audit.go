package domain

import (
	"fmt"
	"sort"
	"time"
)

// Issue types reported by the integrity auditor.
const (
	IssueSequenceError     = "sequence-error"
	IssueUnmatchedCheckIn  = "unmatched-check-in"
	IssueUnmatchedCheckOut = "unmatched-check-out"
)

// Recommendation severities.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// IntegrityIssue is one detected anomaly in the historical event stream.
// Issues never block anything; they are purely reported.
type IntegrityIssue struct {
	ActorID  string    `json:"actor_id"`
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Message  string    `json:"message"`
	EventRef string    `json:"event_ref,omitempty"`
}

// Recommendation is an advisory heuristic over the audited statistics.
type Recommendation struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// IntegrityReport is the result of one full-history audit pass.
type IntegrityReport struct {
	Valid           bool             `json:"valid"`
	Issues          []IntegrityIssue `json:"issues"`
	Statistics      PeriodStatistics `json:"statistics"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// AuditIntegrity scans a full event history for structural corruption. It
// groups events by (actor, day), replays each group in timestamp order with
// an expecting-check-out flag, and flags out-of-order or unpaired actions.
// The report is valid iff no issues were found.
func (e *Engine) AuditIntegrity(events []AttendanceEvent) IntegrityReport {
	groups := e.groupByActorDay(events)

	keys := make([]actorDay, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].actor != keys[j].actor {
			return keys[i].actor < keys[j].actor
		}
		return keys[i].day < keys[j].day
	})

	report := IntegrityReport{Issues: []IntegrityIssue{}}
	days := make([]DayStatus, 0, len(keys))
	for _, key := range keys {
		bucket := groups[key]
		report.Issues = append(report.Issues, e.auditDay(key, bucket)...)
		days = append(days, e.AggregateDay(bucket))
	}

	report.Valid = len(report.Issues) == 0
	report.Statistics = Summarize(days)
	report.Recommendations = e.recommend(report.Statistics, report.Issues)
	return report
}

// auditDay replays one (actor, day) bucket. Bucket order is already by
// timestamp.
func (e *Engine) auditDay(key actorDay, bucket []AttendanceEvent) []IntegrityIssue {
	var issues []IntegrityIssue
	date := e.calendar.DayOf(bucket[0].RecordedAt)

	issue := func(kind, msg, ref string) {
		issues = append(issues, IntegrityIssue{
			ActorID:  key.actor,
			Date:     date,
			Type:     kind,
			Message:  msg,
			EventRef: ref,
		})
	}

	expectingCheckOut := false
	checkIns, checkOuts := 0, 0
	for _, event := range bucket {
		switch event.Action {
		case ActionCheckIn:
			checkIns++
			if expectingCheckOut {
				issue(IssueSequenceError, "multiple check-ins without checkout", event.ID)
			}
			expectingCheckOut = true
		case ActionCheckOut:
			checkOuts++
			if !expectingCheckOut {
				issue(IssueSequenceError, "checkout without prior checkin", event.ID)
			}
			expectingCheckOut = false
		}
	}

	if checkIns > checkOuts+1 {
		issue(IssueUnmatchedCheckIn, fmt.Sprintf("%d check-ins but only %d check-outs", checkIns, checkOuts), "")
	}
	if checkOuts > checkIns {
		issue(IssueUnmatchedCheckOut, fmt.Sprintf("%d check-outs but only %d check-ins", checkOuts, checkIns), "")
	}
	return issues
}

// recommend derives advisory messages from the audited statistics. These are
// informational only and never affect report validity.
func (e *Engine) recommend(stats PeriodStatistics, issues []IntegrityIssue) []Recommendation {
	var recs []Recommendation

	if stats.CompleteDays > 0 && stats.AverageHours < e.rules.LowAverageHours {
		recs = append(recs, Recommendation{
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("average session is %.1f hours, below the %.1f hour guideline", stats.AverageHours, e.rules.LowAverageHours),
		})
	}
	if stats.TotalDays > 0 && stats.AttendanceRate < e.rules.LowAttendanceRate {
		recs = append(recs, Recommendation{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("attendance rate is %d%%, below the %d%% guideline", stats.AttendanceRate, e.rules.LowAttendanceRate),
		})
	}
	for _, iss := range issues {
		if iss.Type == IssueSequenceError {
			recs = append(recs, Recommendation{
				Severity: SeverityWarning,
				Message:  "sequence errors present; review device clocks and duplicate submissions",
			})
			break
		}
	}
	return recs
}
