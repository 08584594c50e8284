package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMinimumAge applies when USER_MINIMUM_AGE is unset.
const DefaultMinimumAge = 18

// Config holds the runtime configuration, sourced from the environment
// (optionally seeded from a .env file).
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string
	// MinimumAge is the minimum age in whole years a user must have
	// reached for writes that set a date of birth to be accepted.
	MinimumAge int
}

// Load reads configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:       "8080",
		MinimumAge: DefaultMinimumAge,
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if raw := os.Getenv("USER_MINIMUM_AGE"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse USER_MINIMUM_AGE %q: %w", raw, err)
		}
		if age <= 0 {
			return Config{}, fmt.Errorf("USER_MINIMUM_AGE must be positive, got %d", age)
		}
		cfg.MinimumAge = age
	}

	return cfg, nil
}
