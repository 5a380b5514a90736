package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type IDashboardUsecase interface {
	GetChannelStats(ctx context.Context, channel bson.ObjectID) (*model.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channel bson.ObjectID, q dto.VideoListQuery) (*model.Page[model.VideoWithOwner], error)
}

type dashboardUsecase struct {
	videoRepository        repository.IVideo
	likeRepository         repository.ILike
	subscriptionRepository repository.ISubscription
	statsCache             repository.IStatsCache
}

func NewDashboardUsecase(
	videoRepository repository.IVideo,
	likeRepository repository.ILike,
	subscriptionRepository repository.ISubscription,
	statsCache repository.IStatsCache,
) IDashboardUsecase {
	return &dashboardUsecase{
		videoRepository:        videoRepository,
		likeRepository:         likeRepository,
		subscriptionRepository: subscriptionRepository,
		statsCache:             statsCache,
	}
}

// GetChannelStats aggregates the four dashboard counters. The result is
// allowed to be briefly stale, so it reads through the short-TTL cache.
func (u *dashboardUsecase) GetChannelStats(ctx context.Context, channel bson.ObjectID) (*model.ChannelStats, error) {
	if cached, err := u.statsCache.Get(ctx, channel.Hex()); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Dashboard stats cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	stats := &model.ChannelStats{}
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		views, err := u.videoRepository.TotalViewsByOwner(gCtx, channel)
		if err != nil {
			return err
		}
		stats.TotalViews = views
		return nil
	})
	g.Go(func() error {
		subs, err := u.subscriptionRepository.CountForChannel(gCtx, channel)
		if err != nil {
			return err
		}
		stats.TotalSubscribers = subs
		return nil
	})
	g.Go(func() error {
		videos, err := u.videoRepository.CountByOwner(gCtx, channel)
		if err != nil {
			return err
		}
		stats.TotalVideos = videos
		return nil
	})
	g.Go(func() error {
		likes, err := u.likeRepository.CountForChannelVideos(gCtx, channel)
		if err != nil {
			return err
		}
		stats.TotalLikes = likes
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, model.Internal("error occurred while fetching channel stats", err)
	}

	if err := u.statsCache.Set(ctx, channel.Hex(), stats); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Dashboard stats cache write failed")
	}
	return stats, nil
}

// GetChannelVideos lists the caller's own videos, published or not.
func (u *dashboardUsecase) GetChannelVideos(ctx context.Context, channel bson.ObjectID, q dto.VideoListQuery) (*model.Page[model.VideoWithOwner], error) {
	q.Normalize()
	q.OwnerID = &channel
	q.All = true
	page, err := u.videoRepository.List(ctx, q)
	if err != nil {
		return nil, model.Internal("error occurred while fetching channel videos", err)
	}
	return page, nil
}
