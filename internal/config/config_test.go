package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("PORT", "")
	t.Setenv("INDEX_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "web/index.html", cfg.IndexFile)
}

func TestLoadPlaceholderKeyMeansUnconfigured(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", "YOUR_TOMORROW_API_KEY")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.APIKey)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOMORROW_API_KEY", "abc123")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "9090", cfg.Port)
}
