package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "school", cfg.Database.DBName)
	require.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
	require.Equal(t, "school-api", cfg.JWT.Issuer)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
database:
  dbname: school_test
jwt:
  access_token_expiration: 30m
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "school_test", cfg.Database.DBName)
	require.Equal(t, "30m", cfg.JWT.AccessTokenExpiration)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server:\n  port: \"9090\"\n"), 0o600))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	require.Equal(t, "7070", cfg.Server.Port)
	require.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigRejectsBadExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "never")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")

	require.Equal(t, "value", GetEnv("SOME_TEST_KEY", "fallback"))
	require.Equal(t, "fallback", GetEnv("MISSING_TEST_KEY", "fallback"))
}
