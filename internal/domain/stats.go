package domain

import "math"

// PeriodStatistics aggregates day statuses over a reporting period. Computed
// on demand; never stored.
type PeriodStatistics struct {
	TotalDays      int     `json:"total_days"`
	CompleteDays   int     `json:"complete_days"`
	PartialDays    int     `json:"partial_days"`
	TotalHours     float64 `json:"total_hours"`
	AverageHours   float64 `json:"average_hours"`
	AttendanceRate int     `json:"attendance_rate"`
}

// Summarize reduces day statuses to period statistics. Zero days is a normal
// input and yields zero values, never a division failure. The attendance
// rate is the percentage of days with at least partial status, rounded to
// the nearest integer.
func Summarize(days []DayStatus) PeriodStatistics {
	stats := PeriodStatistics{TotalDays: len(days)}
	for _, day := range days {
		switch day.State {
		case DayStateComplete:
			stats.CompleteDays++
			stats.TotalHours += day.HoursWorked
		case DayStatePartial:
			stats.PartialDays++
		}
	}
	if stats.CompleteDays > 0 {
		stats.AverageHours = stats.TotalHours / float64(stats.CompleteDays)
	}
	if stats.TotalDays > 0 {
		attended := float64(stats.CompleteDays + stats.PartialDays)
		stats.AttendanceRate = int(math.Round(attended / float64(stats.TotalDays) * 100))
	}
	return stats
}

// Summarize on the engine mirrors the package-level reduction so callers
// holding an Engine do not need both entry points.
func (e *Engine) Summarize(days []DayStatus) PeriodStatistics {
	return Summarize(days)
}
