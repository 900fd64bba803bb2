package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PEXELS_API_KEY")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.PexelsAPIKey)
	assert.Equal(t, "https://api.pexels.com/v1/search", cfg.PexelsBaseURL)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15, cfg.DefaultPerPage)
	assert.Equal(t, 80, cfg.MaxPerPage)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "test-key")
	t.Setenv("PEXELS_BASE_URL", "http://localhost:9999/search")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("DEFAULT_PER_PAGE", "20")
	t.Setenv("CACHE_DB", "")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/search", cfg.PexelsBaseURL)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.DefaultPerPage)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.CacheDB, "explicitly empty CACHE_DB disables caching")
}

func TestLoadIgnoresGarbageNumbers(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "test-key")
	t.Setenv("DEFAULT_PER_PAGE", "lots")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.DefaultPerPage)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
