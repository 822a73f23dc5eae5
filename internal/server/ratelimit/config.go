package ratelimit

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// envConfig mirrors the RATE_LIMIT_* environment variables.
type envConfig struct {
	Enabled         bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	DefaultLimit    int           `env:"RATE_LIMIT_DEFAULT_LIMIT" envDefault:"600"`
	DefaultWindow   time.Duration `env:"RATE_LIMIT_DEFAULT_WINDOW" envDefault:"1m"`
	CleanupInterval time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"5m"`
	IdleTimeout     time.Duration `env:"RATE_LIMIT_IDLE_TIMEOUT" envDefault:"1h"`
	Whitelist       []string      `env:"RATE_LIMIT_WHITELIST"`
	Blacklist       []string      `env:"RATE_LIMIT_BLACKLIST"`
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() (*Config, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("parse rate limit env: %w", err)
	}
	if !ec.Enabled {
		return &Config{Enabled: false}, nil
	}
	if ec.DefaultLimit < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_DEFAULT_LIMIT must not be negative, got %d", ec.DefaultLimit)
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    ec.DefaultLimit,
		DefaultWindow:   ec.DefaultWindow,
		CleanupInterval: ec.CleanupInterval,
		IdleTimeout:     ec.IdleTimeout,
		Whitelist:       ipSet(ec.Whitelist),
		Blacklist:       ipSet(ec.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}, nil
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Snapshot writes run the engine and a transaction.
		{Path: "/onboarding/recommendations", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},

		// Onboarding answer and selection writes.
		{Path: "/onboarding/", Method: http.MethodPost, Limit: 60, Window: time.Minute, Burst: 10},

		// Reads use the default limit; /health and /metrics are unlimited.
	}
}

// ipSet builds a lookup set from a list of addresses, ignoring blanks.
func ipSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
