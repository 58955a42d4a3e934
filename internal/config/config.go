package config

import (
	"os"
	"strconv"
	"strings"
)

// Config carries everything the service needs that used to live in
// scattered globals: connection details, the owner email whitelist and
// the restaurant's fixed UTC offset. It is built once in main and
// passed into constructors so tests can substitute values freely.
type Config struct {
	DatabaseURL string
	Port        string
	JWTSecret   string

	// AllowedEmails is the owner whitelist for the dashboard.
	AllowedEmails []string

	// UTCOffsetMinutes is the restaurant's fixed timezone offset.
	// Nairobi (EAT) is +180; there are no DST transitions to model.
	UTCOffsetMinutes int
}

// Load reads configuration from the environment, applying defaults
// where a value is optional.
func Load() Config {
	cfg := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             getEnv("APP_PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		AllowedEmails:    splitList(os.Getenv("ALLOWED_EMAILS")),
		UTCOffsetMinutes: getEnvInt("UTC_OFFSET_MINUTES", 180),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
