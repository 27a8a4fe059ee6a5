package ports

import (
	"context"

	"github.com/sre-monitoring/hello-world-app/internal/core/domain/health"
)

// HealthChecker abstracts a dependency health probe.
// Implementations should return error if unhealthy.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// DatabaseHandle is the liveness surface of the relational database client.
type DatabaseHandle interface {
	IsConnectionActive(ctx context.Context) (bool, error)
}

// CacheHandle is the liveness surface of the key-value cache client.
type CacheHandle interface {
	Ping(ctx context.Context) (string, error)
}

// HealthService probes dependencies and never fails: every error becomes
// health.StatusDisconnected.
type HealthService interface {
	CheckDatabase(ctx context.Context) health.Status
	CheckRedis(ctx context.Context) health.Status
	Report(ctx context.Context) *health.Report
}
