package domain

import (
	"sort"
	"time"
)

// StreakResult holds the consecutive complete-day counts for one actor.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// CalculateStreak walks the actor's complete-day dates and computes the
// current and longest consecutive runs. Dates may arrive in any order and
// with duplicates; only days inside the configured scan window are
// considered. The current streak counts only when the most recent complete
// day is today or the previous working day; an older gap ends it at zero
// regardless of history.
//
// Two complete days are consecutive when they are exactly one working day
// apart under the injected workday policy (by default every calendar day is
// a working day, so weekends are not skipped).
func (e *Engine) CalculateStreak(completeDates []time.Time, now time.Time) StreakResult {
	today := e.calendar.DayOf(now)
	horizon := today.AddDate(0, 0, -e.rules.StreakWindowDays)

	seen := make(map[string]struct{}, len(completeDates))
	days := make([]time.Time, 0, len(completeDates))
	for _, d := range completeDates {
		day := e.calendar.DayOf(d)
		if day.Before(horizon) || day.After(today) {
			continue
		}
		key := day.Format(time.DateOnly)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		return StreakResult{}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	var result StreakResult
	run := 1
	for i := 1; i <= len(days); i++ {
		if i < len(days) && days[i].Equal(e.previousWorkday(days[i-1])) {
			run++
			continue
		}
		if run > result.Longest {
			result.Longest = run
		}
		if i < len(days) {
			run = 1
		}
	}

	mostRecent := days[0]
	if mostRecent.Equal(today) || mostRecent.Equal(e.previousWorkday(today)) {
		result.Current = e.firstRunLength(days)
	}
	return result
}

// previousWorkday steps back from day to the nearest working day, bounded by
// the scan window so a degenerate policy cannot loop forever.
func (e *Engine) previousWorkday(day time.Time) time.Time {
	prev := day.AddDate(0, 0, -1)
	for i := 0; i < e.rules.StreakWindowDays && !e.workday(prev); i++ {
		prev = prev.AddDate(0, 0, -1)
	}
	return prev
}

func (e *Engine) firstRunLength(days []time.Time) int {
	run := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(e.previousWorkday(days[i-1])) {
			break
		}
		run++
	}
	return run
}
