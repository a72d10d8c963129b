package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.Geocode)
	assert.Equal(t, 10*time.Second, cfg.Timeouts.Nearby)
	assert.Equal(t, 30*time.Second, cfg.Timeouts.Completion)
	assert.Equal(t, 60*time.Second, cfg.Timeouts.FlightSearch)
	assert.Equal(t, "llama3-70b-8192", cfg.Credentials.GroqModel)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "airports.csv", cfg.App.AirportsCSVPath)
	assert.False(t, cfg.App.MockMode)
	assert.True(t, cfg.App.Summarize)
	assert.False(t, cfg.App.UseModelExtractor)
	assert.False(t, cfg.App.AllowSyntheticCodes)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RAPIDAPI_KEY", "test-key")
	t.Setenv("GEONAMES_USERNAME", "demo")
	t.Setenv("MOCK_MODE", "true")
	t.Setenv("TIMEOUT_FLIGHT_SEARCH", "90s")
	t.Setenv("ALLOW_SYNTHETIC_CODES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Credentials.RapidAPIKey)
	assert.Equal(t, "demo", cfg.Credentials.GeonamesUsername)
	assert.True(t, cfg.App.MockMode)
	assert.Equal(t, 90*time.Second, cfg.Timeouts.FlightSearch)
	assert.True(t, cfg.App.AllowSyntheticCodes)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "SERVER_PORT", "70000"},
		{"bad log level", "LOG_LEVEL", "chatty"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"bad environment", "APP_ENV", "qa"},
		{"zero rate limit", "RATE_LIMIT_RPS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_EnvironmentHelpers(t *testing.T) {
	cfg := &Config{App: AppConfig{Env: "development"}}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Env = "production"
	assert.True(t, cfg.IsProduction())
}
