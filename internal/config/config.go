// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Credentials CredentialConfig
	Timeouts    TimeoutConfig
	RateLimit   RateLimitConfig
	Logging     LoggingConfig
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
}

// CredentialConfig holds credentials for the external services. Any of them
// may be absent; the dependent pipeline stage then fails softly instead of
// aborting the process.
type CredentialConfig struct {
	// RapidAPIKey authenticates against the FlyScraper flight API
	RapidAPIKey string `env:"RAPIDAPI_KEY"`

	// GroqAPIKey authenticates against the Groq completion API
	GroqAPIKey string `env:"GROQ_API_KEY"`

	// GroqModel selects the completion model
	GroqModel string `env:"GROQ_MODEL" envDefault:"llama3-70b-8192"`

	// GeonamesUsername authenticates against the GeoNames airport search
	GeonamesUsername string `env:"GEONAMES_USERNAME"`
}

// TimeoutConfig holds per-stage timeouts for the sequential pipeline.
// Calls are single-shot: a timeout is immediate stage failure, no retry.
type TimeoutConfig struct {
	Geocode      time.Duration `env:"TIMEOUT_GEOCODE" envDefault:"10s"`
	Nearby       time.Duration `env:"TIMEOUT_NEARBY" envDefault:"10s"`
	Completion   time.Duration `env:"TIMEOUT_COMPLETION" envDefault:"30s"`
	FlightSearch time.Duration `env:"TIMEOUT_FLIGHT_SEARCH" envDefault:"60s"`
}

// RateLimitConfig holds the default outbound rate limit per external host.
type RateLimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	BurstSize         int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// MockMode bypasses all external calls and serves a fixed canned result
	MockMode bool `env:"MOCK_MODE" envDefault:"false"`

	// Summarize enables the conversational reply via the completion service
	Summarize bool `env:"SUMMARIZE" envDefault:"true"`

	// UseModelExtractor selects the model-based query extractor over the
	// pattern-based one
	UseModelExtractor bool `env:"USE_MODEL_EXTRACTOR" envDefault:"false"`

	// AllowSyntheticCodes lets the resolver fall back to fabricated
	// <CITY>A codes when every tier misses (degraded mode, flagged)
	AllowSyntheticCodes bool `env:"ALLOW_SYNTHETIC_CODES" envDefault:"false"`

	// AirportsCSVPath points at the local airport table
	AirportsCSVPath string `env:"AIRPORTS_CSV_PATH" envDefault:"airports.csv"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	warnMissingCredentials(cfg)

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Geocode <= 0 || cfg.Timeouts.Nearby <= 0 ||
		cfg.Timeouts.Completion <= 0 || cfg.Timeouts.FlightSearch <= 0 {
		return fmt.Errorf("all stage timeouts must be positive")
	}

	if cfg.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if cfg.RateLimit.BurstSize < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// warnMissingCredentials logs a warning per absent credential. A missing
// credential is not a startup failure; the stage that needs it degrades at
// call time.
func warnMissingCredentials(cfg *Config) {
	if cfg.App.MockMode {
		return
	}
	if cfg.Credentials.RapidAPIKey == "" {
		log.Warn().Msg("RAPIDAPI_KEY is not set; flight search and airport search will fail")
	}
	if cfg.Credentials.GroqAPIKey == "" {
		log.Warn().Msg("GROQ_API_KEY is not set; model extraction and summaries will fail")
	}
	if cfg.Credentials.GeonamesUsername == "" {
		log.Warn().Msg("GEONAMES_USERNAME is not set; nearby-airport lookup will fail")
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
