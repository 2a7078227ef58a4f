package domain

import "time"

// Engine bundles the rule table with calendar policy. It holds no mutable
// state; a single Engine is safe for concurrent use from any number of
// goroutines.
type Engine struct {
	rules    Rules
	calendar Calendar
	workday  WorkdayFunc
}

// Option configures optional Engine behaviour.
type Option func(*Engine)

// WithCalendar overrides the day-boundary calendar.
func WithCalendar(c Calendar) Option {
	return func(e *Engine) { e.calendar = c }
}

// WithWorkdayPolicy injects the calendar-skip policy used by the streak
// calculator.
func WithWorkdayPolicy(fn WorkdayFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.workday = fn
		}
	}
}

// NewEngine constructs an Engine from the provided rules.
func NewEngine(rules Rules, opts ...Option) *Engine {
	e := &Engine{
		rules:    rules,
		calendar: NewCalendar(time.UTC),
		workday:  EveryDay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules exposes the engine's rule table.
func (e *Engine) Rules() Rules { return e.rules }

// Calendar exposes the engine's day-boundary calendar.
func (e *Engine) Calendar() Calendar { return e.calendar }
