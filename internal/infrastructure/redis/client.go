package redis

import (
	"context"
	"errors"
	"io"

	"github.com/go-redis/redis/v8"

	config "github.com/sre-monitoring/hello-world-app/configs"
)

// ErrNoClient is returned when pinging a handle that has no client.
var ErrNoClient = errors.New("redis client not initialized")

// Client is what the application needs from either a single-node or a cluster client.
type Client interface {
	redis.Cmdable
	io.Closer
}

// NewClient picks a cluster client when cluster addresses are configured.
func NewClient(cfg *config.RedisConfig) Client {
	if len(cfg.ClusterAddrs) > 0 {
		return NewRedisClusterClient(cfg)
	}
	return NewRedisClient(cfg)
}

// NewRedisClient creates a new Redis client. Connections are dialed lazily.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolTimeout:  cfg.PoolTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	})
}

// NewRedisClusterClient creates a new Redis cluster client
func NewRedisClusterClient(cfg *config.RedisConfig) *redis.ClusterClient {
	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        cfg.ClusterAddrs,
		Password:     cfg.Password,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolTimeout:  cfg.PoolTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	})
}

// Pinger implements ports.CacheHandle on top of a go-redis client.
type Pinger struct {
	r redis.Cmdable
}

// NewPinger wraps r. A nil r yields a handle whose Ping always fails.
func NewPinger(r redis.Cmdable) *Pinger {
	switch c := r.(type) {
	case *redis.Client:
		if c == nil {
			return &Pinger{}
		}
	case *redis.ClusterClient:
		if c == nil {
			return &Pinger{}
		}
	}
	return &Pinger{r: r}
}

// Ping returns the server's raw reply to PING.
func (p *Pinger) Ping(ctx context.Context) (string, error) {
	if p == nil || p.r == nil {
		return "", ErrNoClient
	}
	return p.r.Ping(ctx).Result()
}
