package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds client configuration.
type Config struct {
	// APIURL is the backend base URL, without a trailing /api.
	APIURL string `env:"API_URL" envDefault:"http://localhost:8000"`

	// Mission is the mission loaded at startup.
	Mission string `env:"MISSION" envDefault:"dax-basics"`

	// User signs in a local guest profile under this id. Empty means the
	// shared guest placeholder.
	User string `env:"USER_ID"`

	// DBPath overrides the local cache location.
	DBPath string `env:"DB"`

	// LogMode is "dev" or "prod".
	LogMode string `env:"LOG_MODE" envDefault:"dev"`

	// HTTPTimeout bounds every backend request.
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
}

// envPrefix namespaces every variable, e.g. DAXVENGERS_API_URL.
const envPrefix = "DAXVENGERS_"

// Load reads configuration from the environment. If dotenv names a file, it
// is loaded first; a missing file is not an error and variables already set
// in the environment win.
func Load(dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required values are usable.
func (c Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("%sAPI_URL must not be empty", envPrefix)
	}
	if c.Mission == "" {
		return fmt.Errorf("%sMISSION must not be empty", envPrefix)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%sHTTP_TIMEOUT must be positive, got %s", envPrefix, c.HTTPTimeout)
	}
	return nil
}
