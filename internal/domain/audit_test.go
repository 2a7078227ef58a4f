package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func pairedDay(actor string, day time.Time, hours int) []AttendanceEvent {
	checkIn := day.Add(9 * time.Hour)
	return []AttendanceEvent{
		event(actor, ActionCheckIn, checkIn),
		event(actor, ActionCheckOut, checkIn.Add(time.Duration(hours)*time.Hour)),
	}
}

func TestAuditCleanHistoryIsValid(t *testing.T) {
	engine := engineForTest(t)
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	var events []AttendanceEvent
	for day := 0; day < 5; day++ {
		events = append(events, pairedDay("intern-1", monday.AddDate(0, 0, day), 8)...)
	}

	report := engine.AuditIntegrity(events)

	require.True(t, report.Valid)
	require.Empty(t, report.Issues)
	require.Equal(t, 5, report.Statistics.TotalDays)
	require.Equal(t, 5, report.Statistics.CompleteDays)
	require.Equal(t, 100, report.Statistics.AttendanceRate)
	require.InDelta(t, 8.0, report.Statistics.AverageHours, 0.001)
}

func TestAuditLoneCheckOut(t *testing.T) {
	engine := engineForTest(t)
	checkOut := time.Date(2026, time.March, 2, 17, 0, 0, 0, time.UTC)

	report := engine.AuditIntegrity([]AttendanceEvent{event("intern-1", ActionCheckOut, checkOut)})

	require.False(t, report.Valid)

	var unmatched []IntegrityIssue
	for _, issue := range report.Issues {
		if issue.Type == IssueUnmatchedCheckOut {
			unmatched = append(unmatched, issue)
		}
	}
	require.Len(t, unmatched, 1)
	require.Equal(t, "intern-1", unmatched[0].ActorID)
	require.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), unmatched[0].Date)
}

func TestAuditDoubleCheckIn(t *testing.T) {
	engine := engineForTest(t)
	morning := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	report := engine.AuditIntegrity([]AttendanceEvent{
		event("intern-1", ActionCheckIn, morning),
		event("intern-1", ActionCheckIn, morning.Add(2*time.Hour)),
	})

	require.False(t, report.Valid)

	types := make(map[string]int)
	for _, issue := range report.Issues {
		types[issue.Type]++
	}
	require.Equal(t, 1, types[IssueSequenceError])
	require.Equal(t, 1, types[IssueUnmatchedCheckIn])
}

func TestAuditSequenceErrorCarriesEventRef(t *testing.T) {
	engine := engineForTest(t)
	morning := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	second := event("intern-1", ActionCheckIn, morning.Add(2*time.Hour))

	report := engine.AuditIntegrity([]AttendanceEvent{
		event("intern-1", ActionCheckIn, morning),
		second,
		event("intern-1", ActionCheckOut, morning.Add(8*time.Hour)),
	})

	require.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	require.Equal(t, IssueSequenceError, report.Issues[0].Type)
	require.Equal(t, second.ID, report.Issues[0].EventRef)
}

func TestAuditGroupsByActorAndDay(t *testing.T) {
	engine := engineForTest(t)
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	// intern-1 is clean across two days; intern-2 has a lone check-out on
	// the same dates.
	events := pairedDay("intern-1", monday, 8)
	events = append(events, pairedDay("intern-1", monday.AddDate(0, 0, 1), 8)...)
	events = append(events, event("intern-2", ActionCheckOut, monday.Add(17*time.Hour)))

	report := engine.AuditIntegrity(events)

	require.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	require.Equal(t, "intern-2", report.Issues[0].ActorID)
	require.Equal(t, 3, report.Statistics.TotalDays)
	require.Equal(t, 2, report.Statistics.CompleteDays)
}

func TestAuditEmptyHistory(t *testing.T) {
	engine := engineForTest(t)

	report := engine.AuditIntegrity(nil)

	require.True(t, report.Valid)
	require.Empty(t, report.Issues)
	require.Zero(t, report.Statistics.TotalDays)
	require.Zero(t, report.Statistics.AttendanceRate)
}

func TestAuditRecommendations(t *testing.T) {
	engine := engineForTest(t)
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	// Short complete days plus a sequence error should produce advisory
	// recommendations without affecting issue semantics.
	events := pairedDay("intern-1", monday, 3)
	events = append(events, pairedDay("intern-1", monday.AddDate(0, 0, 1), 3)...)
	events = append(events, event("intern-1", ActionCheckOut, monday.AddDate(0, 0, 2).Add(17*time.Hour)))

	report := engine.AuditIntegrity(events)

	require.False(t, report.Valid)
	require.NotEmpty(t, report.Recommendations)

	severities := map[string]bool{}
	for _, rec := range report.Recommendations {
		severities[rec.Severity] = true
		require.NotEmpty(t, rec.Message)
	}
	require.True(t, severities[SeverityInfo] || severities[SeverityWarning])
}

func TestAuditDayBoundarySplitsPairs(t *testing.T) {
	engine := engineForTest(t)

	// An overnight shift crosses midnight: the check-in day has no matching
	// check-out and the following day has a lone check-out.
	checkIn := time.Date(2026, time.March, 2, 22, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 3, 6, 0, 0, 0, time.UTC)

	report := engine.AuditIntegrity([]AttendanceEvent{
		event("intern-1", ActionCheckIn, checkIn),
		event("intern-1", ActionCheckOut, checkOut),
	})

	require.False(t, report.Valid)
	types := make(map[string]int)
	for _, issue := range report.Issues {
		types[issue.Type]++
	}
	require.Equal(t, 1, types[IssueUnmatchedCheckOut])
}
