package repository

import (
	"context"

	"videotube/domain/model"
)

// IStatsCache caches channel dashboard aggregates. A miss returns (nil, nil);
// callers fall through to the store.
type IStatsCache interface {
	Get(ctx context.Context, channelID string) (*model.ChannelStats, error)
	Set(ctx context.Context, channelID string, stats *model.ChannelStats) error
	Invalidate(ctx context.Context, channelID string)
}
