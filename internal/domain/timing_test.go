package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEvaluateTiming(t *testing.T) {
	engine := engineForTest(t)
	checkIn := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkOut time.Time
		warnings []string
	}{
		{name: "normal session", checkOut: checkIn.Add(8 * time.Hour), warnings: nil},
		{name: "exactly minimum", checkOut: checkIn.Add(15 * time.Minute), warnings: nil},
		{name: "short session", checkOut: checkIn.Add(10 * time.Minute), warnings: []string{CodeShortSession}},
		{name: "exactly maximum", checkOut: checkIn.Add(16 * time.Hour), warnings: nil},
		{name: "long session", checkOut: checkIn.Add(17 * time.Hour), warnings: []string{CodeLongSession}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.EvaluateTiming(checkIn, tc.checkOut)
			require.Equal(t, tc.checkOut.Sub(checkIn), result.Duration)
			require.Equal(t, tc.warnings, result.Warnings)
		})
	}
}

func TestEvaluateTimingNegativeDuration(t *testing.T) {
	engine := engineForTest(t)
	checkIn := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	result := engine.EvaluateTiming(checkIn, checkIn.Add(-time.Hour))

	require.Negative(t, result.Duration)
	require.Empty(t, result.Warnings)
	require.Zero(t, result.Hours())
}

func TestTimingThresholdsAreTunable(t *testing.T) {
	rules := DefaultRules()
	rules.MinSession = time.Hour
	rules.MaxSession = 4 * time.Hour
	engine := NewEngine(rules)
	checkIn := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	require.Equal(t, []string{CodeShortSession}, engine.EvaluateTiming(checkIn, checkIn.Add(30*time.Minute)).Warnings)
	require.Equal(t, []string{CodeLongSession}, engine.EvaluateTiming(checkIn, checkIn.Add(5*time.Hour)).Warnings)
	require.Empty(t, engine.EvaluateTiming(checkIn, checkIn.Add(2*time.Hour)).Warnings)
}
