package config

import (
	"fmt"
	"os"
	"time"
)

// placeholderKey is the value shipped in .env templates; it means "not configured".
const placeholderKey = "YOUR_TOMORROW_API_KEY"

type AppConfig struct {
	// APIKey is the Tomorrow.io credential. Empty means the lookup is not
	// configured and /weather answers with a setup hint instead of data.
	APIKey string

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	// IndexFile is the HTML page served at /.
	IndexFile string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.APIKey = os.Getenv("TOMORROW_API_KEY")
	if cfg.APIKey == placeholderKey {
		cfg.APIKey = ""
	}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.IndexFile = getenvDefault("INDEX_FILE", "web/index.html")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
