package domain

import "time"

// TimingResult carries the measured session duration and any threshold
// warnings. A negative duration is the caller's cue to reject outright; the
// evaluator itself never escalates.
type TimingResult struct {
	Duration time.Duration
	Warnings []string
}

// Hours converts the duration to fractional hours, clamped at zero.
func (t TimingResult) Hours() float64 {
	if t.Duration < 0 {
		return 0
	}
	return t.Duration.Hours()
}

// EvaluateTiming measures a check-in/check-out pair against the session
// thresholds in the rule table.
func (e *Engine) EvaluateTiming(checkIn, checkOut time.Time) TimingResult {
	result := TimingResult{Duration: checkOut.Sub(checkIn)}
	if result.Duration < 0 {
		return result
	}
	if result.Duration < e.rules.MinSession {
		result.Warnings = append(result.Warnings, CodeShortSession)
	}
	if result.Duration > e.rules.MaxSession {
		result.Warnings = append(result.Warnings, CodeLongSession)
	}
	return result
}
