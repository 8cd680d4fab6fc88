package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted backend used when nothing else is configured.
const DefaultBaseURL = "https://smartcart-backend-8pu4.onrender.com"

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionFile    string
}

func Load() Config {
	timeout := parseDuration(getenv("SMARTCART_TIMEOUT", "10s"), 10*time.Second)

	return Config{
		BaseURL:        getenv("SMARTCART_BASE_URL", DefaultBaseURL),
		RequestTimeout: timeout,
		SessionFile:    getenv("SMARTCART_SESSION_FILE", defaultSessionFile()),
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".smartcart-session.json"
	}
	return filepath.Join(home, ".smartcart", "session.json")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
