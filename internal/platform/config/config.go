// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Model      ModelConfig      `koanf:"model"`
	Storage    StorageConfig    `koanf:"storage"`
	Extraction ExtractionConfig `koanf:"extraction"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings. RequestTimeout bounds handler
// execution and must stay below WriteTimeout so the 504 can still be sent.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ModelConfig holds settings for the Ollama model endpoint used by LLM
// extraction. Timeout bounds a single extraction call; MaxInputBytes caps the
// text sent to the model (0 disables truncation). StructuredOutput asks the
// server to constrain the answer to a JSON array of strings.
type ModelConfig struct {
	BaseURL          string               `koanf:"base_url"`
	Name             string               `koanf:"name"`
	Timeout          time.Duration        `koanf:"timeout"`
	MaxInputBytes    int                  `koanf:"max_input_bytes"`
	StructuredOutput bool                 `koanf:"structured_output"`
	Retry            RetryConfig          `koanf:"retry"`
	CircuitBreaker   CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit        RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. A zero RequestsPerSecond
// disables rate limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// StorageConfig holds SQLite settings.
type StorageConfig struct {
	Path        string        `koanf:"path"`
	BusyTimeout time.Duration `koanf:"busy_timeout"`
}

// ExtractionConfig holds extraction service policy.
type ExtractionConfig struct {
	// DefaultStrategy is used when a request does not name one.
	DefaultStrategy string `koanf:"default_strategy"`
	// FallbackToHeuristic runs the heuristic when the model is unavailable
	// instead of returning an error.
	FallbackToHeuristic bool `koanf:"fallback_to_heuristic"`
	// BatchWorkers bounds concurrent extractions in a batch request.
	BatchWorkers int `koanf:"batch_workers"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
