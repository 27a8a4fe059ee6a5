package httpserver

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/sre-monitoring/hello-world-app/internal/core/domain/health"
)

func TestTrackConnState(t *testing.T) {
	s := &Server{}
	before := testutil.ToFloat64(activeConnections)

	s.trackConnState(nil, http.StateNew)
	s.trackConnState(nil, http.StateNew)
	require.Equal(t, before+2, testutil.ToFloat64(activeConnections))

	s.trackConnState(nil, http.StateActive)
	s.trackConnState(nil, http.StateIdle)
	require.Equal(t, before+2, testutil.ToFloat64(activeConnections))

	s.trackConnState(nil, http.StateClosed)
	s.trackConnState(nil, http.StateHijacked)
	require.Equal(t, before, testutil.ToFloat64(activeConnections))
}

func TestRecordDependencyStatus(t *testing.T) {
	recordDependencyStatus(map[string]health.Status{
		health.ServiceDatabase: health.StatusConnected,
		health.ServiceRedis:    health.StatusDisconnected,
	})
	require.Equal(t, 1.0, testutil.ToFloat64(dependencyUp.WithLabelValues("database")))
	require.Equal(t, 0.0, testutil.ToFloat64(dependencyUp.WithLabelValues("redis")))
}
