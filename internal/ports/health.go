package ports

import "context"

// HealthChecker reports whether the daemon is able to serve calls.
type HealthChecker interface {
	// IsHealthy returns false once shutdown has begun.
	IsHealthy(ctx context.Context) bool
}
