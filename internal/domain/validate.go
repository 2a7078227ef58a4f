package domain

import (
	"strings"
	"time"
)

// ValidateInput is the payload for one action validation request. Day must
// reflect a consistent snapshot of the actor's prior events for the day;
// serializing concurrent attempts for the same actor is the caller's job.
type ValidateInput struct {
	Action            Action
	OriginAddress     string
	Day               DayStatus
	AuthorizedOrigins []string
	Now               time.Time
}

// Verdict is the ephemeral result of one validation call. Errors block the
// action; warnings do not.
type Verdict struct {
	Valid          bool     `json:"valid"`
	Errors         []string `json:"errors,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	ExpectedState  DayState `json:"expected_state,omitempty"`
	ProjectedHours float64  `json:"projected_hours"`
}

func reject(codes ...string) Verdict {
	return Verdict{Errors: codes}
}

// ValidateAction decides whether the proposed check-in or check-out is legal
// given the actor's current day state and network origin. Checks run in
// order and short-circuit on the first hard error; timing breaches accumulate
// as warnings on an otherwise valid verdict.
//
// The sequencing check encodes the day state machine:
// none -> (check-in) -> partial -> (check-out) -> complete, with complete
// terminal for the day.
func (e *Engine) ValidateAction(input ValidateInput) Verdict {
	if input.Action == "" {
		return reject(CodeMissingAction)
	}
	if !KnownAction(input.Action) {
		return reject(CodeInvalidAction)
	}
	if strings.TrimSpace(input.OriginAddress) == "" {
		return reject(CodeMissingOrigin)
	}

	if !e.rules.UnrestrictedOrigins {
		if code := checkOrigin(input.OriginAddress, input.AuthorizedOrigins); code != "" {
			return reject(code)
		}
	}

	switch input.Action {
	case ActionCheckIn:
		return e.validateCheckIn(input)
	default:
		return e.validateCheckOut(input)
	}
}

// checkOrigin returns a rejection code, or "" when the origin is acceptable.
// An empty allowlist means no restriction is configured.
func checkOrigin(origin string, authorized []string) string {
	if origin == OriginUnknown {
		return CodeIPDetectionFailed
	}
	if len(authorized) == 0 {
		return ""
	}
	for _, allowed := range authorized {
		if origin == allowed {
			return ""
		}
	}
	return CodeUnauthorizedOrigin
}

func (e *Engine) validateCheckIn(input ValidateInput) Verdict {
	if input.Day.HasCheckIn() {
		return reject(CodeAlreadyCheckedIn)
	}
	return Verdict{
		Valid:         true,
		ExpectedState: DayStatePartial,
	}
}

func (e *Engine) validateCheckOut(input ValidateInput) Verdict {
	if !input.Day.HasCheckIn() {
		return reject(CodeNoCheckinFound)
	}
	if input.Day.HasCheckOut() {
		return reject(CodeAlreadyCheckedOut)
	}

	timing := e.EvaluateTiming(*input.Day.CheckInTime, input.Now)
	if timing.Duration < 0 {
		return reject(CodeInvalidTiming)
	}

	return Verdict{
		Valid:          true,
		Warnings:       timing.Warnings,
		ExpectedState:  DayStateComplete,
		ProjectedHours: timing.Hours(),
	}
}
