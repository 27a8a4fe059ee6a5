package health

import (
	"context"
	"fmt"

	"github.com/sre-monitoring/hello-world-app/internal/core/domain/health"
	"github.com/sre-monitoring/hello-world-app/internal/core/ports"
)

// dbHealthChecker wraps the database handle for health checks.
type dbHealthChecker struct{ db ports.DatabaseHandle }

func (d *dbHealthChecker) Name() string { return health.ServiceDatabase }

func (d *dbHealthChecker) Check(ctx context.Context) error {
	if d.db == nil {
		return fmt.Errorf("%w: no database handle", health.ErrDependencyUnavailable)
	}
	active, err := d.db.IsConnectionActive(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", health.ErrDependencyUnavailable, err)
	}
	if !active {
		return fmt.Errorf("%w: connection inactive", health.ErrDependencyUnavailable)
	}
	return nil
}

// redisHealthChecker wraps the cache handle for health checks.
type redisHealthChecker struct{ cache ports.CacheHandle }

func (r *redisHealthChecker) Name() string { return health.ServiceRedis }

func (r *redisHealthChecker) Check(ctx context.Context) error {
	if r.cache == nil {
		return fmt.Errorf("%w: no redis handle", health.ErrDependencyUnavailable)
	}
	reply, err := r.cache.Ping(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", health.ErrDependencyUnavailable, err)
	}
	// exact match, "pong" is not an acknowledgement
	if reply != health.PingAck {
		return fmt.Errorf("%w: unexpected ping reply %q", health.ErrDependencyUnavailable, reply)
	}
	return nil
}

// NewDBHealthChecker creates a health checker for the database.
func NewDBHealthChecker(db ports.DatabaseHandle) ports.HealthChecker { return &dbHealthChecker{db: db} }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(cache ports.CacheHandle) ports.HealthChecker {
	return &redisHealthChecker{cache: cache}
}
