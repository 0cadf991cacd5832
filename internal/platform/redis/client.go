package redis

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"

	"sumbandila/internal/platform/config"
)

// Client wraps the go-redis client with health checking capabilities.
type Client struct {
	*redis.Client
}

// New parses cfg.URL, applies pool overrides and pings. Returns nil, nil when Redis is not configured.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck // best-effort cleanup on init failure
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Health checks if the Redis connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// RegisterPoolMetrics exposes connection pool statistics on reg, read at scrape time.
func (c *Client) RegisterPoolMetrics(reg prometheus.Registerer) {
	factory := promauto.With(reg)
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "sumbandila_redis_pool_total_conns",
		Help: "Number of total connections in the pool",
	}, func() float64 { return float64(c.PoolStats().TotalConns) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "sumbandila_redis_pool_idle_conns",
		Help: "Number of idle connections in the pool",
	}, func() float64 { return float64(c.PoolStats().IdleConns) })
	factory.NewCounterFunc(prometheus.CounterOpts{
		Name: "sumbandila_redis_pool_timeouts_total",
		Help: "Number of times a connection was not obtained due to timeout",
	}, func() float64 { return float64(c.PoolStats().Timeouts) })
}
