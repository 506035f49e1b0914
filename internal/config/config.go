// Package config centralises configuration parsing for the fitdash binaries.
package config

import (
	"os"
	"time"
)

// Config captures runtime configuration values, shared by both binaries.
type Config struct {
	HTTPAddress  string        // authserver listen address
	AuthBaseURL  string        // where the client reaches the auth endpoint
	StorePath    string        // badger directory backing the session store
	LoginTimeout time.Duration // HTTP timeout for the login call
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev.
func Load() Config {
	return Config{
		HTTPAddress:  getEnv("HTTP_ADDRESS", ":8080"),
		AuthBaseURL:  getEnv("AUTH_BASE_URL", "http://localhost:8080"),
		StorePath:    getEnv("STORE_PATH", "./data/session"),
		LoginTimeout: getDurationEnv("LOGIN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
