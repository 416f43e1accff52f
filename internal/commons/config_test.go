package commons

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdash/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
dataset:
  source: mysql
  reloadSchedule: "@every 10m"
database:
  connMaxLifetime: 2m
insight:
  model: gemini-2.0-flash
  timeout: 5s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.DatasetSourceMySQL, cfg.Dataset.Source)
	assert.Equal(t, "@every 10m", cfg.Dataset.ReloadSchedule)
	assert.Equal(t, 2*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "gemini-2.0-flash", cfg.Insight.Model)
	assert.Equal(t, 5*time.Second, cfg.Insight.Timeout)
	// untouched defaults survive
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 6, cfg.Insight.RatePerMinute)
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	path := writeConfig(t, "insight:\n  apiKey: from-file\n")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Insight.APIKey)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadConfig_UnknownSource(t *testing.T) {
	path := writeConfig(t, "dataset:\n  source: s3\n")

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "unknown dataset source")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoadConfig_BundledFile(t *testing.T) {
	cfg, err := LoadConfig("../config/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, config.DatasetSourceFile, cfg.Dataset.Source)
	assert.Equal(t, "gemini-2.5-flash", cfg.Insight.Model)
	assert.Equal(t, 30*time.Second, cfg.Insight.Timeout)
}
