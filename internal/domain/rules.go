package domain

import "time"

// Stable verdict codes returned by the action validator. Callers translate
// codes into user-facing text; the engine never formats prose for these.
const (
	CodeMissingAction      = "missing-action"
	CodeInvalidAction      = "invalid-action"
	CodeMissingOrigin      = "missing-origin"
	CodeIPDetectionFailed  = "ip-detection-failed"
	CodeUnauthorizedOrigin = "unauthorized-origin"
	CodeAlreadyCheckedIn   = "already-checked-in"
	CodeNoCheckinFound     = "no-checkin-found"
	CodeAlreadyCheckedOut  = "already-checked-out"
	CodeInvalidTiming      = "invalid-timing"
	CodeShortSession       = "short-session"
	CodeLongSession        = "long-session"
)

// Rules captures the tunable thresholds and policy switches of the engine.
// Values are configuration, not hardcoded business law.
type Rules struct {
	// MinSession is the session duration below which a check-out draws a
	// short-session warning.
	MinSession time.Duration
	// MaxSession is the session duration above which a check-out draws a
	// long-session warning.
	MaxSession time.Duration
	// StreakWindowDays bounds how far back the streak calculator scans.
	StreakWindowDays int
	// LowAverageHours is the recommendation threshold for average daily hours.
	LowAverageHours float64
	// LowAttendanceRate is the recommendation threshold in whole percent.
	LowAttendanceRate int
	// UnrestrictedOrigins disables origin authorization entirely. Intended
	// for local development only; it is an explicit switch, never inferred
	// from the environment.
	UnrestrictedOrigins bool
}

// DefaultRules returns the production thresholds.
func DefaultRules() Rules {
	return Rules{
		MinSession:        15 * time.Minute,
		MaxSession:        16 * time.Hour,
		StreakWindowDays:  90,
		LowAverageHours:   6,
		LowAttendanceRate: 75,
	}
}
