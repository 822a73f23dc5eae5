package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/app-recommender/internal/config"
	"github.com/jonathan/app-recommender/internal/recommend"
	"github.com/jonathan/app-recommender/internal/server"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	for _, cmd := range []*cobra.Command{serveCmd, recommendCmd, tokenCmd, tablesCmd} {
		resetFlags(cmd.Flags())
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores defaults so flags set by one test do not leak into the next.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestTablesCommand_Default(t *testing.T) {
	out, err := execute(t, "tables")
	require.NoError(t, err)

	tables, err := recommend.ParseTables([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, recommend.DefaultTables(), tables)
}

func TestTablesCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
interests:
  music_bands:
    - route: music-network
      weight: 5
`), 0o644))

	out, err := execute(t, "tables", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "music_bands")
	assert.NotContains(t, out, "employment_jobs")
}

func TestTablesCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
interests:
  music_bands:
    - route: music-network
      weight: -5
`), 0o644))

	_, err := execute(t, "tables", "-f", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load scoring tables")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret-with-enough-length-123")
	unsetEnv(t, "JWT_EXPIRATION_HOURS")
	userID := uuid.New()

	out, err := execute(t, "token", "--user", userID.String())
	require.NoError(t, err)

	jwtConfig, err := config.NewJWTConfig()
	require.NoError(t, err)
	claims, err := server.NewJWTService(jwtConfig).ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenCommand_Errors(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret-with-enough-length-123")

	_, err := execute(t, "token")
	assert.Error(t, err, "user flag is required")

	_, err = execute(t, "token", "--user", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid user ID")

	unsetEnv(t, "JWT_SECRET")
	_, err = execute(t, "token", "--user", uuid.NewString())
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestRecommendCommand_Errors(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "PORT", "LOG_FORMAT", "SNAPSHOT_LIMIT")

	_, err := execute(t, "recommend")
	assert.Error(t, err, "user flag is required")

	_, err = execute(t, "recommend", "--user", "42")
	assert.ErrorContains(t, err, "invalid user ID")

	_, err = execute(t, "recommend", "--user", uuid.NewString())
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestServeCommand_RequiresDatabase(t *testing.T) {
	unsetEnv(t, "DATABASE_URL", "PORT", "LOG_FORMAT", "SNAPSHOT_LIMIT")

	_, err := execute(t, "serve")
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = execute(t, "serve", "--port", "70000")
	assert.ErrorContains(t, err, "PORT must be between")
}
