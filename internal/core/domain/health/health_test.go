package health_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sre-monitoring/hello-world-app/internal/core/domain/health"
)

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, health.StatusConnected, health.StatusFromError(nil))
	assert.Equal(t, health.StatusDisconnected, health.StatusFromError(errors.New("boom")))
	assert.Equal(t, health.StatusDisconnected, health.StatusFromError(health.ErrDependencyUnavailable))
}

func TestNewReport_AlwaysContainsKnownServices(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	r := health.NewReport(at, nil)
	require.Equal(t, health.OverallOK, r.Status)
	require.Len(t, r.Services, 2)
	require.Equal(t, health.StatusDisconnected, r.Services[health.ServiceDatabase])
	require.Equal(t, health.StatusDisconnected, r.Services[health.ServiceRedis])
	require.Equal(t, time.UTC, r.Timestamp.Location())

	r = health.NewReport(at, map[string]health.Status{
		health.ServiceDatabase: health.StatusConnected,
		"unknown":              health.StatusConnected,
		health.ServiceRedis:    health.Status("weird"),
	})
	require.Len(t, r.Services, 2)
	require.Equal(t, health.StatusConnected, r.Services[health.ServiceDatabase])
	require.Equal(t, health.StatusDisconnected, r.Services[health.ServiceRedis])
}

func TestReport_JSONShape(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r := health.NewReport(at, map[string]health.Status{
		health.ServiceDatabase: health.StatusConnected,
		health.ServiceRedis:    health.StatusConnected,
	})

	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"status":"ok","timestamp":"2024-05-01T10:00:00Z","services":{"database":"connected","redis":"connected"}}`,
		string(b))
}

func TestWrapUnavailable(t *testing.T) {
	require.NoError(t, health.WrapUnavailable(nil))

	cause := errors.New("connection refused")
	wrapped := health.WrapUnavailable(cause)
	require.ErrorIs(t, wrapped, health.ErrDependencyUnavailable)
	require.ErrorIs(t, wrapped, cause)

	require.Same(t, wrapped, health.WrapUnavailable(wrapped))
}
