package session

import (
	"context"
	"log/slog"

	"github.com/garrettladley/miband/internal/paths"
	"github.com/garrettladley/miband/internal/redis"
	"github.com/garrettladley/miband/internal/xslog"
)

// Open picks Redis when redisURL is set and the local SQLite database otherwise.
func Open(ctx context.Context, redisURL string, logger *slog.Logger) (Store, error) {
	if redisURL != "" {
		client, err := redis.New(ctx, redis.Config{URL: redisURL})
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "session store opened", xslog.Backend("redis"))
		return NewRedisStore(client), nil
	}

	dbPath, err := paths.SessionDB()
	if err != nil {
		return nil, err
	}
	store, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "session store opened", xslog.Backend("sqlite"))
	return store, nil
}
