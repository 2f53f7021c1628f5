package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetcher   FetcherConfig
	Extractor ExtractorConfig
	Enrich    EnrichConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetcherConfig controls the product-page fetcher.
type FetcherConfig struct {
	// Timeout is the deadline for one page fetch, redirects included.
	Timeout time.Duration // default: 15s

	// MaxRedirects caps the redirect chain before the fetch is aborted.
	MaxRedirects int // default: 10

	// MaxBodyBytes caps how much of the response body is read.
	MaxBodyBytes int64 // default: 10 MB
}

// ExtractorConfig controls the field extraction heuristics.
type ExtractorConfig struct {
	// Currency is the deployment's currency code. Every extracted price is
	// reported in this currency; the price patterns are tuned for it.
	Currency string // default: "DZD"
}

// EnrichConfig controls the generative enrichment client.
//
// The credential lives here, injected at construction time, so business
// logic never reads the process environment and both the configured and
// unconfigured branches are testable.
type EnrichConfig struct {
	// APIKey is the generative-service credential. When empty, enrichment
	// silently uses the deterministic template fallback.
	APIKey string

	// BaseURL is the OpenAI-compatible API base. default: "https://api.openai.com/v1"
	BaseURL string

	// Model is the chat model used for copy generation. default: "gpt-4o-mini"
	Model string

	// Timeout is the deadline for one enrichment call.
	Timeout time.Duration // default: 20s
}

// RateLimitConfig controls per-client rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client IP.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per client IP.
	Burst int // default: 10
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("IMPORTD_HOST", "0.0.0.0"),
			Port: envIntOr("IMPORTD_PORT", 8080),
			Mode: envOr("IMPORTD_MODE", "release"),
		},
		Fetcher: FetcherConfig{
			Timeout:      envDurationOr("IMPORTD_FETCH_TIMEOUT", 15*time.Second),
			MaxRedirects: envIntOr("IMPORTD_FETCH_MAX_REDIRECTS", 10),
			MaxBodyBytes: envInt64Or("IMPORTD_FETCH_MAX_BODY", 10<<20),
		},
		Extractor: ExtractorConfig{
			Currency: envOr("IMPORTD_CURRENCY", "DZD"),
		},
		Enrich: EnrichConfig{
			APIKey:  os.Getenv("IMPORTD_OPENAI_API_KEY"),
			BaseURL: envOr("IMPORTD_OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   envOr("IMPORTD_OPENAI_MODEL", "gpt-4o-mini"),
			Timeout: envDurationOr("IMPORTD_ENRICH_TIMEOUT", 20*time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("IMPORTD_RATE_RPS", 5.0),
			Burst:             envIntOr("IMPORTD_RATE_BURST", 10),
		},
		Log: LogConfig{
			Level:  envOr("IMPORTD_LOG_LEVEL", "info"),
			Format: envOr("IMPORTD_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
