package config

const (
	defaultServerPort = 8080

	defaultModelMaxInputBytes = 32 * 1024

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 5

	defaultBatchWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "90s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "80s",

		"log.level":  "info",
		"log.format": "json",

		"model.base_url":                        "http://localhost:11434",
		"model.name":                            "llama3.1:8b",
		"model.timeout":                         "60s",
		"model.max_input_bytes":                 defaultModelMaxInputBytes,
		"model.structured_output":               false,
		"model.retry.max_attempts":              defaultRetryMaxAttempts,
		"model.retry.initial_interval":          "100ms",
		"model.retry.max_interval":              "2s",
		"model.retry.multiplier":                defaultRetryMultiplier,
		"model.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"model.circuit_breaker.timeout":         "30s",
		"model.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"model.rate_limit.requests_per_second":  0,
		"model.rate_limit.burst_size":           defaultRateLimitBurst,

		"storage.path":         "data/app.db",
		"storage.busy_timeout": "5s",

		"extraction.default_strategy":      "heuristic",
		"extraction.fallback_to_heuristic": false,
		"extraction.batch_workers":         defaultBatchWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "action-items",
	}
}
