package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8090
backend:
  base_url: http://localhost:8000/
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Server.Port)
	// trailing slash is trimmed so the /api prefix concatenates cleanly
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ewizz.db", cfg.Session.DBPath)
}

func TestLoadRequiresBaseURL(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("EWIZZ_BACKEND_BASE_URL", "http://api.example.com")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 3000, cfg.Server.Port)
}
