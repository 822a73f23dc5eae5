package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "DATABASE_URL", "SCORING_TABLES_PATH", "LOG_LEVEL", "LOG_FORMAT", "SNAPSHOT_LIMIT")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10, cfg.SnapshotLimit)
	assert.Empty(t, cfg.ScoringTablesPath)
	require.NoError(t, cfg.Validate())
	assert.ErrorContains(t, cfg.RequireDatabase(), "DATABASE_URL")
}

func TestLoadServerConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/recommender")
	t.Setenv("SCORING_TABLES_PATH", "/etc/recommender/tables.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SNAPSHOT_LIMIT", "5")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/recommender", cfg.DatabaseURL)
	assert.Equal(t, "/etc/recommender/tables.yaml", cfg.ScoringTablesPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 5, cfg.SnapshotLimit)
	assert.NoError(t, cfg.RequireDatabase())
}

func TestLoadServerConfig_InvalidNumber(t *testing.T) {
	t.Setenv("PORT", "eighty")

	cfg, err := LoadServerConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "parse env")
}

func TestServerConfig_Validate(t *testing.T) {
	valid := ServerConfig{Port: 8080, LogFormat: "json", SnapshotLimit: 10}

	tests := []struct {
		name    string
		mutate  func(c *ServerConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *ServerConfig) {}},
		{name: "port zero", mutate: func(c *ServerConfig) { c.Port = 0 }, wantErr: "PORT"},
		{name: "port too large", mutate: func(c *ServerConfig) { c.Port = 70000 }, wantErr: "PORT"},
		{name: "snapshot limit zero", mutate: func(c *ServerConfig) { c.SnapshotLimit = 0 }, wantErr: "SNAPSHOT_LIMIT"},
		{name: "unknown log format", mutate: func(c *ServerConfig) { c.LogFormat = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
