package ports

import "context"

// HealthChecker reports whether a component is working normally. The
// navigator implements it on top of its transition breaker.
type HealthChecker interface {
	// Name identifies the checker in results, e.g. "navigator".
	Name() string

	// HealthCheck returns nil when healthy or an error naming the degradation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry polls a set of checkers on behalf of the host.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error

	// Failing lists the names of unhealthy checkers, sorted.
	Failing(ctx context.Context) []string
}
