package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default.
type Config struct {
	// Server
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	// Apprise instance. A zero timeout leaves the HTTP transport default in place.
	AppriseDomain  string        `envconfig:"APPRISE_DOMAIN" default:"https://apprise.org"`
	AppriseTimeout time.Duration `envconfig:"APPRISE_TIMEOUT" default:"0s"`

	// Upper bound on items accepted by one execute request.
	MaxBatchSize int `envconfig:"MAX_BATCH_SIZE" default:"1000"`

	// debug, info, warn, error
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if c.MaxBatchSize < 1 {
		return nil, fmt.Errorf("loading config: MAX_BATCH_SIZE must be positive, got %d", c.MaxBatchSize)
	}
	return &c, nil
}
