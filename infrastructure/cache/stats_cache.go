package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

const statsTTL = 30 * time.Second

// StatsCache keeps channel dashboard aggregates warm for a short window.
// Only the dashboard reads through it; the per-video like and subscriber
// counters are always live counts.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) repository.IStatsCache {
	return &StatsCache{client: client}
}

func statsKey(channelID string) string {
	return "dashboard:stats:" + channelID
}

func (c *StatsCache) Get(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, statsKey(channelID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.ChannelStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, channelID string, stats *model.ChannelStats) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(channelID), raw, statsTTL).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context, channelID string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey(channelID)).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to invalidate dashboard stats cache")
	}
}
