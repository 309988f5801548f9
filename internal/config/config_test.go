package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "database:\n  path: "+filepath.Join(t.TempDir(), "test.db")+"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitRPS)
	assert.Equal(t, 90, cfg.Availability.MaxRangeDays)
	assert.Equal(t, []string{"2025-11-20"}, cfg.Schedule.BlackoutDates)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL())
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_ADMIN_KEY", "sekret")
	path := writeConfig(t, `
server:
  admin_api_key: ${TEST_ADMIN_KEY}
database:
  path: `+filepath.Join(t.TempDir(), "test.db")+`
redis:
  cache_ttl_seconds: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sekret", cfg.Server.AdminAPIKey)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
}

func TestBlackoutDates(t *testing.T) {
	cfg := &Config{}
	cfg.Schedule.BlackoutDates = []string{"2025-11-20", "2026-01-01"}

	dates, err := cfg.BlackoutDates()
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC), dates[0])

	cfg.Schedule.BlackoutDates = []string{"20.11.2025"}
	_, err = cfg.BlackoutDates()
	assert.Error(t, err)
}
