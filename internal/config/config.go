// Package config centralises configuration parsing for the audit worker.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"example.com/attendance/internal/domain"
)

// Config captures runtime configuration values for the audit worker.
type Config struct {
	MetricsAddress    string
	KafkaBrokers      []string
	ConsumerTopic     string
	ConsumerGroupID   string
	AuditInterval     time.Duration
	AuthorizedOrigins []string // Origin allowlist; empty means unrestricted membership.
	Timezone          string   // IANA zone used for day boundaries.
	Rules             domain.Rules
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev.
func Load() Config {
	rules := domain.DefaultRules()
	rules.MinSession = getDurationEnv("MIN_SESSION", rules.MinSession)
	rules.MaxSession = getDurationEnv("MAX_SESSION", rules.MaxSession)
	rules.StreakWindowDays = getIntEnv("STREAK_WINDOW_DAYS", rules.StreakWindowDays)
	rules.LowAttendanceRate = getIntEnv("LOW_ATTENDANCE_RATE", rules.LowAttendanceRate)
	rules.LowAverageHours = getFloatEnv("LOW_AVERAGE_HOURS", rules.LowAverageHours)
	// UnrestrictedOrigins must be an explicit opt-in; it is never derived
	// from the runtime environment name.
	rules.UnrestrictedOrigins = getBoolEnv("ATTENDANCE_UNRESTRICTED_ORIGINS", false)

	return Config{
		MetricsAddress:    getEnv("METRICS_ADDRESS", ":9090"),
		KafkaBrokers:      splitAndTrim(getEnv("KAFKA_BROKERS", "kafka:9092")),
		ConsumerTopic:     getEnv("CONSUMER_TOPIC", "attendance_events"),
		ConsumerGroupID:   getEnv("CONSUMER_GROUP_ID", "attendance-audit"),
		AuditInterval:     getDurationEnv("AUDIT_INTERVAL", time.Minute),
		AuthorizedOrigins: splitAndTrim(getEnv("AUTHORIZED_ORIGINS", "")),
		Timezone:          getEnv("TIMEZONE", "UTC"),
		Rules:             rules,
	}
}

// Location resolves the configured timezone, falling back to UTC when the
// name cannot be loaded.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
