package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"

	config "github.com/sre-monitoring/hello-world-app/configs"
	"github.com/sre-monitoring/hello-world-app/internal/infrastructure/redis"
)

func unreachableConfig() *config.RedisConfig {
	return &config.RedisConfig{
		Host:        "127.0.0.1",
		Port:        "1",
		DialTimeout: 200 * time.Millisecond,
		ReadTimeout: 200 * time.Millisecond,
	}
}

func TestPinger_NilClient(t *testing.T) {
	var p *redis.Pinger
	_, err := p.Ping(context.Background())
	require.ErrorIs(t, err, redis.ErrNoClient)

	_, err = redis.NewPinger(nil).Ping(context.Background())
	require.ErrorIs(t, err, redis.ErrNoClient)
}

func TestPinger_TypedNilClient(t *testing.T) {
	var single *goredis.Client
	_, err := redis.NewPinger(single).Ping(context.Background())
	require.ErrorIs(t, err, redis.ErrNoClient)

	var cluster *goredis.ClusterClient
	_, err = redis.NewPinger(cluster).Ping(context.Background())
	require.ErrorIs(t, err, redis.ErrNoClient)
}

func TestPinger_UnreachableServer(t *testing.T) {
	client := redis.NewRedisClient(unreachableConfig())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	reply, err := redis.NewPinger(client).Ping(ctx)
	require.Error(t, err)
	require.Empty(t, reply)
}

func TestNewClient_PicksClusterWhenConfigured(t *testing.T) {
	cfg := unreachableConfig()
	single := redis.NewClient(cfg)
	defer single.Close()
	_, ok := single.(*goredis.Client)
	require.True(t, ok)

	cfg.ClusterAddrs = []string{"127.0.0.1:1"}
	cluster := redis.NewClient(cfg)
	defer cluster.Close()
	_, ok = cluster.(*goredis.ClusterClient)
	require.True(t, ok)
}
