package mocks

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sre-monitoring/hello-world-app/internal/core/domain/health"
)

// DatabaseHandleMock is a lightweight mock for ports.DatabaseHandle
type DatabaseHandleMock struct {
	IsConnectionActiveFn func(ctx context.Context) (bool, error)
	calls                atomic.Int64
}

func (m *DatabaseHandleMock) IsConnectionActive(ctx context.Context) (bool, error) {
	m.calls.Add(1)
	if m.IsConnectionActiveFn != nil {
		return m.IsConnectionActiveFn(ctx)
	}
	return true, nil
}

// Calls returns how many times IsConnectionActive ran.
func (m *DatabaseHandleMock) Calls() int { return int(m.calls.Load()) }

// CacheHandleMock is a lightweight mock for ports.CacheHandle
type CacheHandleMock struct {
	PingFn func(ctx context.Context) (string, error)
	calls  atomic.Int64
}

func (m *CacheHandleMock) Ping(ctx context.Context) (string, error) {
	m.calls.Add(1)
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return health.PingAck, nil
}

func (m *CacheHandleMock) Calls() int { return int(m.calls.Load()) }

// HealthCheckerMock is a lightweight mock for ports.HealthChecker
type HealthCheckerMock struct {
	NameValue string
	CheckFn   func(ctx context.Context) error
}

func (m *HealthCheckerMock) Name() string { return m.NameValue }
func (m *HealthCheckerMock) Check(ctx context.Context) error {
	if m.CheckFn != nil {
		return m.CheckFn(ctx)
	}
	return nil
}

// HealthServiceMock is a lightweight mock for ports.HealthService
type HealthServiceMock struct {
	CheckDatabaseFn func(ctx context.Context) health.Status
	CheckRedisFn    func(ctx context.Context) health.Status
	ReportFn        func(ctx context.Context) *health.Report
}

func (m *HealthServiceMock) CheckDatabase(ctx context.Context) health.Status {
	if m.CheckDatabaseFn != nil {
		return m.CheckDatabaseFn(ctx)
	}
	return health.StatusConnected
}
func (m *HealthServiceMock) CheckRedis(ctx context.Context) health.Status {
	if m.CheckRedisFn != nil {
		return m.CheckRedisFn(ctx)
	}
	return health.StatusConnected
}
func (m *HealthServiceMock) Report(ctx context.Context) *health.Report {
	if m.ReportFn != nil {
		return m.ReportFn(ctx)
	}
	return health.NewReport(time.Now(), map[string]health.Status{
		health.ServiceDatabase: m.CheckDatabase(ctx),
		health.ServiceRedis:    m.CheckRedis(ctx),
	})
}

// Unreachable returns a probe func that fails like a refused connection.
func Unreachable[T any]() func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var zero T
		return zero, fmt.Errorf("dial tcp 127.0.0.1:6379: connect: connection refused")
	}
}

// Hang returns a probe func that blocks until release is closed, ignoring ctx.
func Hang[T any](release <-chan struct{}) func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		<-release
		var zero T
		return zero, nil
	}
}
