package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Recognized environment variables.
const (
	envDatabaseURI   = "DATABASE_URI"
	envTokenSecret   = "TOKEN_SECRET"
	envTokenValidity = "TOKEN_VALIDITY"
	envPort          = "PORT"
)

// parseEnv overlays Config fields from environment variables. A variable
// that is set but empty is rejected rather than silently falling back to
// the default.
func parseEnv(config *Config) error {
	if value, exist := os.LookupEnv(envDatabaseURI); exist {
		if value == "" {
			return fmt.Errorf("%s environment variable is empty", envDatabaseURI)
		}
		config.DatabaseDSN = value
	}

	if value, exist := os.LookupEnv(envTokenSecret); exist {
		if value == "" {
			return fmt.Errorf("%s environment variable is empty", envTokenSecret)
		}
		config.TokenSecret = value
	}

	if value, exist := os.LookupEnv(envTokenValidity); exist {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", envTokenValidity, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid %s: %s", envTokenValidity, value)
		}
		config.TokenValidityDuration = d
	}

	if value, exist := os.LookupEnv(envPort); exist {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", envPort, err)
		}
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s: %s", envPort, value)
		}
		config.Port = port
	}

	return nil
}
