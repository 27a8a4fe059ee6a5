package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sre-monitoring/hello-world-app/internal/core/domain/health"
	"github.com/sre-monitoring/hello-world-app/internal/core/ports"
)

const DefaultProbeTimeout = 2 * time.Second

type HealthServiceConfig struct {
	// ProbeTimeout bounds each probe; expiry reports the dependency as disconnected.
	ProbeTimeout time.Duration
	// Now is the report clock. Defaults to time.Now.
	Now func() time.Time
}

type HealthService struct {
	database ports.HealthChecker
	redis    ports.HealthChecker
	timeout  time.Duration
	now      func() time.Time
	logger   *logrus.Logger
}

func NewHealthService(database, redis ports.HealthChecker, cfg *HealthServiceConfig, logger *logrus.Logger) ports.HealthService {
	s := &HealthService{
		database: database,
		redis:    redis,
		timeout:  DefaultProbeTimeout,
		now:      time.Now,
		logger:   logger,
	}
	if cfg != nil {
		if cfg.ProbeTimeout > 0 {
			s.timeout = cfg.ProbeTimeout
		}
		if cfg.Now != nil {
			s.now = cfg.Now
		}
	}
	return s
}

func (s *HealthService) CheckDatabase(ctx context.Context) health.Status {
	return s.probe(ctx, health.ServiceDatabase, s.database)
}

func (s *HealthService) CheckRedis(ctx context.Context) health.Status {
	return s.probe(ctx, health.ServiceRedis, s.redis)
}

// Report probes both dependencies concurrently and never fails.
func (s *HealthService) Report(ctx context.Context) *health.Report {
	var dbStatus, redisStatus health.Status

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dbStatus = s.CheckDatabase(gctx)
		return nil
	})
	g.Go(func() error {
		redisStatus = s.CheckRedis(gctx)
		return nil
	})
	// probes never return an error
	_ = g.Wait()

	return health.NewReport(s.now(), map[string]health.Status{
		health.ServiceDatabase: dbStatus,
		health.ServiceRedis:    redisStatus,
	})
}

func (s *HealthService) probe(ctx context.Context, name string, hc ports.HealthChecker) health.Status {
	err := s.run(ctx, name, hc)
	if err != nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"service": name, "error": err.Error()}).Warn("dependency probe failed")
	}
	return health.StatusFromError(err)
}

// run executes one check under the probe deadline. The check is raced
// against the deadline so a client that ignores ctx cannot stall the caller.
func (s *HealthService) run(ctx context.Context, name string, hc ports.HealthChecker) error {
	if hc == nil {
		return fmt.Errorf("%w: no %s checker configured", health.ErrDependencyUnavailable, name)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		// a panicking client must not take the process down
		defer func() {
			if r := recover(); r != nil {
				errCh <- fmt.Errorf("%w: %s check panicked: %v", health.ErrDependencyUnavailable, name, r)
			}
		}()
		errCh <- hc.Check(ctx)
	}()

	select {
	case err := <-errCh:
		return health.WrapUnavailable(err)
	case <-ctx.Done():
		return fmt.Errorf("%w: %s probe: %w", health.ErrDependencyUnavailable, name, ctx.Err())
	}
}
