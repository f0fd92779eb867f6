package ports

import "context"

// HealthChecker reports the health of one dependency: the SQLite store or
// the model endpoint.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "sqlite" or
	// "ollama".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects HealthCheckers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every registered check and returns the results keyed by
	// name. A nil value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
