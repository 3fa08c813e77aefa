package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/garrettladley/miband/internal/version"
)

const defaultPingTimeout = 5 * time.Second

// Config points at the server holding the session. URL uses the
// redis:// or rediss:// scheme.
type Config struct {
	URL         string
	PingTimeout time.Duration
}

// New connects and pings before returning, so a bad REDIS_URL fails the
// command up front instead of on the first read.
func New(ctx context.Context, cfg Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	opt.ClientName = version.UserAgent()

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opt.Addr, err)
	}
	return client, nil
}
