package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

// Mock implementations

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) List(ctx context.Context, q dto.VideoListQuery) (*model.Page[model.VideoWithOwner], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.VideoWithOwner]), args.Error(1)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.VideoWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoWithOwner), args.Error(1)
}

func (m *MockVideoRepository) GetRaw(ctx context.Context, id bson.ObjectID) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) Insert(ctx context.Context, video *model.Video) (bson.ObjectID, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockVideoRepository) UpdateMeta(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) (*model.Video, error) {
	args := m.Called(ctx, id, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) DeleteCascade(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) TotalViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, target model.LikeTarget, targetID, owner bson.ObjectID) (bool, error) {
	args := m.Called(ctx, target, targetID, owner)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Exists(ctx context.Context, target model.LikeTarget, targetID, owner bson.ObjectID) (bool, error) {
	args := m.Called(ctx, target, targetID, owner)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountForVideo(ctx context.Context, videoID bson.ObjectID) (int64, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) ListLikedVideos(ctx context.Context, owner bson.ObjectID, page, limit int64) (*model.Page[model.VideoWithOwner], error) {
	args := m.Called(ctx, owner, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.VideoWithOwner]), args.Error(1)
}

func (m *MockLikeRepository) CountForChannelVideos(ctx context.Context, channel bson.ObjectID) (int64, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(int64), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	args := m.Called(ctx, subscriber, channel)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) CountForChannel(ctx context.Context, channel bson.ObjectID) (int64, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListChannelSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.Subscription, error) {
	args := m.Called(ctx, channel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.Subscription, error) {
	args := m.Called(ctx, subscriber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Insert(ctx context.Context, playlist *model.Playlist) (bson.ObjectID, error) {
	args := m.Called(ctx, playlist)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetByIDWithVideos(ctx context.Context, id bson.ObjectID) (*model.PlaylistWithVideos, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaylistWithVideos), args.Error(1)
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, owner bson.ObjectID, includePrivate bool) ([]model.PlaylistWithVideos, error) {
	args := m.Called(ctx, owner, includePrivate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PlaylistWithVideos), args.Error(1)
}

func (m *MockPlaylistRepository) ListContainingVideo(ctx context.Context, owner, videoID bson.ObjectID) ([]model.Playlist, error) {
	args := m.Called(ctx, owner, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, id bson.ObjectID, name, description string) (*model.Playlist, error) {
	args := m.Called(ctx, id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlaylistRepository) PullFromWatchHistory(ctx context.Context, owner, videoID bson.ObjectID) (*model.Playlist, error) {
	args := m.Called(ctx, owner, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) PushFront(ctx context.Context, playlistID, videoID bson.ObjectID) error {
	args := m.Called(ctx, playlistID, videoID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetWatchHistory(ctx context.Context, owner bson.ObjectID) (*model.PlaylistWithVideos, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlaylistWithVideos), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, caller *bson.ObjectID, page, limit int64) (*model.Page[model.CommentWithMeta], error) {
	args := m.Called(ctx, videoID, caller, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.CommentWithMeta]), args.Error(1)
}

func (m *MockCommentRepository) Insert(ctx context.Context, comment *model.Comment) (bson.ObjectID, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetWithOwner(ctx context.Context, id bson.ObjectID) (*model.CommentWithMeta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CommentWithMeta), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Insert(ctx context.Context, tweet *model.Tweet) (bson.ObjectID, error) {
	args := m.Called(ctx, tweet)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error) {
	args := m.Called(ctx, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *model.User) (bson.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUserName(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error) {
	args := m.Called(ctx, id, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SetAvatar(ctx context.Context, id bson.ObjectID, url, publicID string) (*model.User, error) {
	args := m.Called(ctx, id, url, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SetCoverImage(ctx context.Context, id bson.ObjectID, url, publicID string) (*model.User, error) {
	args := m.Called(ctx, id, url, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Store(ctx context.Context, data []byte, filename string, kind repository.AssetKind) (*repository.StoredAsset, error) {
	args := m.Called(ctx, data, filename, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.StoredAsset), args.Error(1)
}

func (m *MockAssetStore) Delete(ctx context.Context, handle string, kind repository.AssetKind) error {
	args := m.Called(ctx, handle, kind)
	return args.Error(0)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, channelID string) (*model.ChannelStats, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChannelStats), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, channelID string, stats *model.ChannelStats) error {
	args := m.Called(ctx, channelID, stats)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, channelID string) {
	m.Called(ctx, channelID)
}
