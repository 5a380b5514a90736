package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"videotube/infrastructure/logger"
)

// NewCache connects a redis client. A dead redis is not fatal; callers treat
// a nil client as cache-off.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not reachable")
		return nil, err
	}
	return client, nil
}
