package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Adda-Baaj/bazar-khobor/internal/config"
	"github.com/Adda-Baaj/bazar-khobor/pkg/gdelt"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, 3, cfg.Days)
	require.Equal(t, 25, cfg.Limit)
	require.True(t, cfg.EnglishOnly)
	require.Equal(t, gdelt.DefaultEndpoint, cfg.Endpoint)
	require.Equal(t, 15*time.Second, cfg.Timeout())
	require.False(t, cfg.Enrich.Enabled)
	require.Empty(t, cfg.Cache.Path)
}

func TestLoad_File(t *testing.T) {
	path := writeTempConfig(t, `
days: 7
limit: 100
english_only: false
timeout_seconds: 30
enrich:
  enabled: true
  workers: 3
  delay_ms: 50
cache:
  path: /tmp/bazar-khobor/history.db
publishers_file: publishers.yaml
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Days)
	require.Equal(t, 100, cfg.Limit)
	require.False(t, cfg.EnglishOnly)
	require.True(t, cfg.Enrich.Enabled)
	require.Equal(t, 3, cfg.Enrich.Workers)
	require.Equal(t, 50*time.Millisecond, cfg.EnrichDelay())
	require.Equal(t, "/tmp/bazar-khobor/history.db", cfg.Cache.Path)
	require.Equal(t, "publishers.yaml", cfg.Publishers)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative days", "days: -1"},
		{"zero limit", "limit: 0"},
		{"limit above cap", "limit: 251"},
		{"zero timeout", "timeout_seconds: 0"},
		{"zero workers", "enrich:\n  workers: 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)
			_, err := config.Load(path)
			require.Error(t, err)
		})
	}
}
