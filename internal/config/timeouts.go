package config

import (
	"os"
	"time"
)

// Timeouts holds configurable timeout values for provider operations.
// These values can be customized via environment variables.
type Timeouts struct {
	Teardown time.Duration // Timeout for the whole teardown sequence
	Poll     time.Duration // Timeout for a single long-running deletion
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - AZCLEANVM_TIMEOUT_TEARDOWN (default: 30m)
//   - AZCLEANVM_TIMEOUT_POLL (default: 10m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Teardown: parseDuration("AZCLEANVM_TIMEOUT_TEARDOWN", 30*time.Minute),
		Poll:     parseDuration("AZCLEANVM_TIMEOUT_POLL", 10*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
