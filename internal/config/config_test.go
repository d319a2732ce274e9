package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-pos/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":           "",
		"PORT":              "",
		"REDIS_URL":         "",
		"DATABASE_URL":      "",
		"CURRENCY_CODE":     "",
		"CATALOG_CACHE_TTL": "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "USD", cfg.CurrencyCode)
	require.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	require.Empty(t, cfg.RedisURL)
	require.Empty(t, cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"PORT":                 "9090",
		"CURRENCY_CODE":        "EUR",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
		"RATE_LIMIT_WINDOW":    "30s",
		"RATE_LIMIT_MAX":       "10",
	})
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, "EUR", cfg.CurrencyCode)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	require.Equal(t, 10, cfg.RateLimitMax)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"CATALOG_CACHE_TTL": "not-a-duration",
	})
	require.NoError(t, err)
	require.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
}
