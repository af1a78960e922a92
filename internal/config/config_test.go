package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dukaan-labs/billing-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":               "",
		"PORT":                  "",
		"RATE_LIMIT":            "",
		"OBS_ENABLE_PROMETHEUS": "",
		"OBS_ENABLE_TRACING":    "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "300-M", cfg.RateLimit)
	require.True(t, cfg.MetricsEnabled)
	require.False(t, cfg.TracingEnabled)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":                    "production",
		"PORT":                       "9090",
		"CORS_ALLOWED_ORIGINS":       "https://pos.example.com, https://admin.example.com",
		"OBS_ENABLE_PROMETHEUS":      "off",
		"OBS_ENABLE_TRACING":         "true",
		"OBS_TRACING_SAMPLING_RATIO": "0.25",
		"RATE_LIMIT":                 "60-S",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, []string{"https://pos.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	require.False(t, cfg.MetricsEnabled)
	require.True(t, cfg.TracingEnabled)
	require.InDelta(t, 0.25, cfg.TracingSamplingRatio, 1e-9)
	require.Equal(t, "60-S", cfg.RateLimit)
}
