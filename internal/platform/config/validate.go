package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Model.validate(),
		c.Storage.validate(),
		c.Extraction.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 || s.RequestTimeout >= s.WriteTimeout {
		errs = append(errs, fmt.Errorf("server.request_timeout must be positive and below server.write_timeout (%s), got %s",
			s.WriteTimeout, s.RequestTimeout))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (m *ModelConfig) validate() error {
	var errs []error

	if u, err := url.Parse(m.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("model.base_url must be an absolute URL, got %q", m.BaseURL))
	}
	if m.Name == "" {
		errs = append(errs, errors.New("model.name must not be empty"))
	}
	if m.Timeout <= 0 {
		errs = append(errs, errors.New("model.timeout must be positive"))
	}
	if m.MaxInputBytes < 0 {
		errs = append(errs, fmt.Errorf("model.max_input_bytes must be >= 0, got %d", m.MaxInputBytes))
	}
	if m.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("model.retry.max_attempts must be >= 1, got %d", m.Retry.MaxAttempts))
	}
	if m.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("model.retry.multiplier must be positive, got %f", m.Retry.Multiplier))
	}
	if m.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("model.circuit_breaker.max_failures must be >= 1, got %d",
			m.CircuitBreaker.MaxFailures))
	}
	if m.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("model.rate_limit.requests_per_second must be >= 0, got %f",
			m.RateLimit.RequestsPerSecond))
	}
	if m.RateLimit.RequestsPerSecond > 0 && m.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("model.rate_limit.burst_size must be >= 1, got %d", m.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *StorageConfig) validate() error {
	var errs []error

	if s.Path == "" {
		errs = append(errs, errors.New("storage.path must not be empty"))
	}
	if s.BusyTimeout < 0 {
		errs = append(errs, errors.New("storage.busy_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (e *ExtractionConfig) validate() error {
	var errs []error

	switch e.DefaultStrategy {
	case "heuristic", "llm":
		// Valid strategies.
	default:
		errs = append(errs, fmt.Errorf("extraction.default_strategy must be one of: heuristic, llm; got %q",
			e.DefaultStrategy))
	}
	if e.BatchWorkers < 1 {
		errs = append(errs, fmt.Errorf("extraction.batch_workers must be >= 1, got %d", e.BatchWorkers))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
