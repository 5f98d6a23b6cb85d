package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with the token variables unset.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{TokenEnvVar, "TODOIST_BASE_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestLoad_FromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(TokenEnvVar, "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIToken)
	assert.Equal(t, "https://api.todoist.com/rest/v2", cfg.BaseURL)
}

func TestLoad_MissingToken(t *testing.T) {
	isolate(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
	assert.Contains(t, err.Error(), TokenEnvVar)
}

func TestLoad_EmptyToken(t *testing.T) {
	isolate(t)
	t.Setenv(TokenEnvVar, "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_DotenvInWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TODOIST_API_TOKEN=from-dotenv\nTODOIST_BASE_URL=http://localhost:9999\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv(TokenEnvVar)
		_ = os.Unsetenv("TODOIST_BASE_URL")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.APIToken)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
}

func TestLoad_EnvironmentWinsOverDotenv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TODOIST_API_TOKEN=from-dotenv\n"), 0o600))
	t.Setenv(TokenEnvVar, "from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIToken)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)
	t.Setenv(TokenEnvVar, "secret")

	_, err := Load("missing.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load env files")
}

func TestConfig_LogValueMasksToken(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("config", "config", Config{APIToken: "super-secret-token", BaseURL: "https://example.com"})

	assert.NotContains(t, buf.String(), "super-secret-token")
	assert.Contains(t, buf.String(), "[token:18 chars]")
}
