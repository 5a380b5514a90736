package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/usecase"
)

func TestDashboardUsecase_GetChannelStats_CacheHit(t *testing.T) {
	channel := bson.NewObjectID()
	cached := &model.ChannelStats{TotalViews: 100, TotalSubscribers: 5, TotalVideos: 3, TotalLikes: 40}

	statsCache := new(MockStatsCache)
	statsCache.On("Get", mock.Anything, channel.Hex()).Return(cached, nil)

	videoRepo := new(MockVideoRepository)
	u := usecase.NewDashboardUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), statsCache)

	stats, err := u.GetChannelStats(context.Background(), channel)

	assert.NoError(t, err)
	assert.Equal(t, cached, stats)
	videoRepo.AssertNotCalled(t, "TotalViewsByOwner", mock.Anything, mock.Anything)
}

func TestDashboardUsecase_GetChannelStats_CacheMissComputesAndStores(t *testing.T) {
	channel := bson.NewObjectID()

	statsCache := new(MockStatsCache)
	statsCache.On("Get", mock.Anything, channel.Hex()).Return(nil, nil)
	statsCache.On("Set", mock.Anything, channel.Hex(), &model.ChannelStats{
		TotalViews: 1000, TotalSubscribers: 12, TotalVideos: 4, TotalLikes: 77,
	}).Return(nil)

	videoRepo := new(MockVideoRepository)
	videoRepo.On("TotalViewsByOwner", mock.Anything, channel).Return(int64(1000), nil)
	videoRepo.On("CountByOwner", mock.Anything, channel).Return(int64(4), nil)

	likeRepo := new(MockLikeRepository)
	likeRepo.On("CountForChannelVideos", mock.Anything, channel).Return(int64(77), nil)

	subRepo := new(MockSubscriptionRepository)
	subRepo.On("CountForChannel", mock.Anything, channel).Return(int64(12), nil)

	u := usecase.NewDashboardUsecase(videoRepo, likeRepo, subRepo, statsCache)

	stats, err := u.GetChannelStats(context.Background(), channel)

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), stats.TotalViews)
	assert.Equal(t, int64(77), stats.TotalLikes)
	statsCache.AssertExpectations(t)
}

func TestDashboardUsecase_GetChannelVideos_ForcesOwnerScope(t *testing.T) {
	channel := bson.NewObjectID()

	videoRepo := new(MockVideoRepository)
	videoRepo.On("List", mock.Anything, mock.MatchedBy(func(q dto.VideoListQuery) bool {
		return q.All && q.OwnerID != nil && *q.OwnerID == channel
	})).Return(&model.Page[model.VideoWithOwner]{Page: 1, Limit: 10}, nil)

	u := usecase.NewDashboardUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockStatsCache))

	_, err := u.GetChannelVideos(context.Background(), channel, dto.VideoListQuery{})

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
}
