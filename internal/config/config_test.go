package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "0.0.0.0:5000", cfg.ListenAddr)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 30*time.Second, cfg.NotifyPollInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("SEARCH_DEBOUNCE", "150ms")
	t.Setenv("NOTIFY_POLL_INTERVAL", "10s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 10*time.Second, cfg.NotifyPollInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
