package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sre-monitoring/hello-world-app/configs"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, "DATABASE_URL", "REDIS_CLUSTER_ADDRS", "SERVER_PORT", "HEALTH_PROBE_TIMEOUT",
		"APP_GREETING", "REDIS_HOST", "REDIS_PORT", "DB_NAME", "LOG_FORMAT")

	cfg, err := configs.Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 2*time.Second, cfg.Health.ProbeTimeout)
	require.Equal(t, configs.DefaultGreeting, cfg.App.Greeting)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
	require.Empty(t, cfg.Redis.ClusterAddrs)
	require.Contains(t, cfg.Database.DSN, "dbname=hello_world")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HEALTH_PROBE_TIMEOUT", "750ms")
	t.Setenv("APP_GREETING", "hi there")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app?sslmode=disable")
	t.Setenv("REDIS_CLUSTER_ADDRS", "r1:6379, r2:6379,")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := configs.Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 750*time.Millisecond, cfg.Health.ProbeTimeout)
	require.Equal(t, "hi there", cfg.App.Greeting)
	require.Equal(t, "postgres://u:p@db:5432/app?sslmode=disable", cfg.Database.DSN)
	require.Equal(t, []string{"r1:6379", "r2:6379"}, cfg.Redis.ClusterAddrs)
}

func TestLoad_InvalidDurationFallsBackToDefault(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "LOG_FORMAT")
	t.Setenv("HEALTH_PROBE_TIMEOUT", "soon")

	cfg, err := configs.Load()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Health.ProbeTimeout)
}

func TestValidate(t *testing.T) {
	valid := configs.Config{
		Server: configs.ServerConfig{Port: "8080"},
		Health: configs.HealthConfig{ProbeTimeout: time.Second},
		Log:    configs.LogConfig{Format: "json"},
	}
	require.NoError(t, valid.Validate())

	noPort := valid
	noPort.Server.Port = ""
	require.Error(t, noPort.Validate())

	zeroTimeout := valid
	zeroTimeout.Health.ProbeTimeout = 0
	require.Error(t, zeroTimeout.Validate())

	badFormat := valid
	badFormat.Log.Format = "xml"
	require.Error(t, badFormat.Validate())
}
