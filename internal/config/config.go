// Package config provides configuration loading and validation for the recommender.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the settings for the HTTP server and the CLI commands that
// talk to the database. Values come from the environment. ScoringTablesPath
// optionally points at a YAML override for the built-in scoring tables.
type ServerConfig struct {
	Port              int    `env:"PORT" envDefault:"8080"`
	DatabaseURL       string `env:"DATABASE_URL"`
	ScoringTablesPath string `env:"SCORING_TABLES_PATH"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"json"`
	SnapshotLimit     int    `env:"SNAPSHOT_LIMIT" envDefault:"10"`
}

// LoadServerConfig parses ServerConfig from the environment.
func LoadServerConfig() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration has valid values.
// DatabaseURL is checked separately by commands that need a database.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.SnapshotLimit < 1 {
		return fmt.Errorf("config error: SNAPSHOT_LIMIT must be at least 1, got %d", c.SnapshotLimit)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("config error: LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}

// RequireDatabase returns an error if no database URL is configured.
func (c *ServerConfig) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return nil
}
