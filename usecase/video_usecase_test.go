package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/usecase"
)

func newVideoUsecase(
	videoRepo *MockVideoRepository,
	likeRepo *MockLikeRepository,
	subRepo *MockSubscriptionRepository,
	assetStore *MockAssetStore,
	playlistRepo *MockPlaylistRepository,
	statsCache *MockStatsCache,
) usecase.IVideoUsecase {
	return usecase.NewVideoUsecase(
		videoRepo, likeRepo, subRepo, assetStore,
		usecase.NewWatchHistoryMaintainer(playlistRepo), statsCache,
	)
}

func TestVideoUsecase_List_RejectsInvalidUserID(t *testing.T) {
	u := newVideoUsecase(new(MockVideoRepository), new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockAssetStore),
		new(MockPlaylistRepository), new(MockStatsCache))

	_, err := u.List(context.Background(), dto.VideoListQuery{UserID: "not-a-hex-id"}, nil)

	assert.True(t, errors.Is(err, model.ErrBadRequest))
}

func TestVideoUsecase_List_AllRequiresOwner(t *testing.T) {
	owner := bson.NewObjectID()
	stranger := bson.NewObjectID()
	u := newVideoUsecase(new(MockVideoRepository), new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockAssetStore),
		new(MockPlaylistRepository), new(MockStatsCache))

	// Anonymous caller asking for drafts.
	_, err := u.List(context.Background(), dto.VideoListQuery{UserID: owner.Hex(), All: true}, nil)
	assert.True(t, errors.Is(err, model.ErrForbidden))

	// Authenticated caller asking for someone else's drafts.
	_, err = u.List(context.Background(), dto.VideoListQuery{UserID: owner.Hex(), All: true}, &stranger)
	assert.True(t, errors.Is(err, model.ErrForbidden))

	// All without naming an owner at all.
	_, err = u.List(context.Background(), dto.VideoListQuery{All: true}, &stranger)
	assert.True(t, errors.Is(err, model.ErrForbidden))
}

func TestVideoUsecase_List_OwnerSeesOwnDrafts(t *testing.T) {
	owner := bson.NewObjectID()
	videoRepo := new(MockVideoRepository)
	videoRepo.On("List", mock.Anything, mock.MatchedBy(func(q dto.VideoListQuery) bool {
		return q.All && q.OwnerID != nil && *q.OwnerID == owner
	})).Return(&model.Page[model.VideoWithOwner]{Page: 1, Limit: 10}, nil)

	u := newVideoUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockAssetStore),
		new(MockPlaylistRepository), new(MockStatsCache))

	page, err := u.List(context.Background(), dto.VideoListQuery{UserID: owner.Hex(), All: true}, &owner)

	assert.NoError(t, err)
	assert.NotNil(t, page)
	videoRepo.AssertExpectations(t)
}

func TestVideoUsecase_GetByID_AssemblesCountsAndRecordsHistory(t *testing.T) {
	videoID := bson.NewObjectID()
	ownerID := bson.NewObjectID()
	viewer := bson.NewObjectID()
	historyID := bson.NewObjectID()

	videoRepo := new(MockVideoRepository)
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.VideoWithOwner{
		ID:    videoID,
		Title: "go concurrency",
		Owner: model.PublicUser{ID: ownerID, Username: "gopher"},
	}, nil)

	likeRepo := new(MockLikeRepository)
	likeRepo.On("CountForVideo", mock.Anything, videoID).Return(int64(42), nil)

	subRepo := new(MockSubscriptionRepository)
	subRepo.On("CountForChannel", mock.Anything, ownerID).Return(int64(7), nil)

	playlistRepo := new(MockPlaylistRepository)
	playlistRepo.On("PullFromWatchHistory", mock.Anything, viewer, videoID).
		Return(&model.Playlist{ID: historyID, Name: model.WatchHistoryName, Creator: viewer}, nil)
	playlistRepo.On("PushFront", mock.Anything, historyID, videoID).Return(nil)

	u := newVideoUsecase(videoRepo, likeRepo, subRepo, new(MockAssetStore), playlistRepo, new(MockStatsCache))

	detail, err := u.GetByID(context.Background(), videoID, &viewer)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), detail.Likes)
	assert.Equal(t, int64(7), detail.SubscriberCount)
	playlistRepo.AssertExpectations(t)
}

func TestVideoUsecase_GetByID_AnonymousSkipsHistory(t *testing.T) {
	videoID := bson.NewObjectID()
	ownerID := bson.NewObjectID()

	videoRepo := new(MockVideoRepository)
	videoRepo.On("GetByID", mock.Anything, videoID).Return(&model.VideoWithOwner{
		ID:    videoID,
		Owner: model.PublicUser{ID: ownerID},
	}, nil)
	likeRepo := new(MockLikeRepository)
	likeRepo.On("CountForVideo", mock.Anything, videoID).Return(int64(0), nil)
	subRepo := new(MockSubscriptionRepository)
	subRepo.On("CountForChannel", mock.Anything, ownerID).Return(int64(0), nil)

	playlistRepo := new(MockPlaylistRepository)

	u := newVideoUsecase(videoRepo, likeRepo, subRepo, new(MockAssetStore), playlistRepo, new(MockStatsCache))

	_, err := u.GetByID(context.Background(), videoID, nil)

	assert.NoError(t, err)
	playlistRepo.AssertNotCalled(t, "PullFromWatchHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestVideoUsecase_GetByID_NotFound(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	videoRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	u := newVideoUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockAssetStore),
		new(MockPlaylistRepository), new(MockStatsCache))

	_, err := u.GetByID(context.Background(), bson.NewObjectID(), nil)

	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestVideoUsecase_Publish_UploadsBothAssets(t *testing.T) {
	owner := bson.NewObjectID()

	assetStore := new(MockAssetStore)
	assetStore.On("Store", mock.Anything, []byte("vid"), "clip.mp4", repository.AssetKindVideo).
		Return(&repository.StoredAsset{URL: "https://cdn/clip.mp4", Handle: "vid-1", Duration: 12.5}, nil)
	assetStore.On("Store", mock.Anything, []byte("img"), "thumb.png", repository.AssetKindImage).
		Return(&repository.StoredAsset{URL: "https://cdn/thumb.png", Handle: "img-1"}, nil)

	videoRepo := new(MockVideoRepository)
	videoRepo.On("Insert", mock.Anything, mock.MatchedBy(func(v *model.Video) bool {
		return v.IsPublished && v.Owner == owner && v.PublicID == "vid-1" && v.Duration == 12.5
	})).Return(bson.NewObjectID(), nil)

	statsCache := new(MockStatsCache)
	statsCache.On("Invalidate", mock.Anything, owner.Hex()).Return()

	u := newVideoUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), assetStore,
		new(MockPlaylistRepository), statsCache)

	video, err := u.Publish(context.Background(),
		dto.PublishVideoRequest{Title: "t", Description: "d"},
		usecase.MediaUpload{
			Video:     usecase.MediaFile{Data: []byte("vid"), Filename: "clip.mp4"},
			Thumbnail: usecase.MediaFile{Data: []byte("img"), Filename: "thumb.png"},
		}, owner)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn/clip.mp4", video.VideoFile)
	assert.True(t, video.IsPublished)
	videoRepo.AssertExpectations(t)
	statsCache.AssertExpectations(t)
}

func TestVideoUsecase_TogglePublish_ForbiddenForNonOwner(t *testing.T) {
	owner := bson.NewObjectID()
	stranger := bson.NewObjectID()
	videoID := bson.NewObjectID()

	videoRepo := new(MockVideoRepository)
	videoRepo.On("GetRaw", mock.Anything, videoID).Return(&model.Video{ID: videoID, Owner: owner}, nil)

	u := newVideoUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockAssetStore),
		new(MockPlaylistRepository), new(MockStatsCache))

	_, err := u.TogglePublish(context.Background(), videoID, stranger)

	assert.True(t, errors.Is(err, model.ErrForbidden))
	videoRepo.AssertNotCalled(t, "SetPublished", mock.Anything, mock.Anything, mock.Anything)
}

func TestVideoUsecase_Delete_AssetFailureStillCascades(t *testing.T) {
	owner := bson.NewObjectID()
	videoID := bson.NewObjectID()

	videoRepo := new(MockVideoRepository)
	videoRepo.On("GetRaw", mock.Anything, videoID).Return(&model.Video{
		ID: videoID, Owner: owner, PublicID: "vid-1", ThumbnailPublicID: "img-1",
	}, nil)
	videoRepo.On("DeleteCascade", mock.Anything, videoID).Return(nil)

	assetStore := new(MockAssetStore)
	assetStore.On("Delete", mock.Anything, "vid-1", repository.AssetKindVideo).
		Return(errors.New("host unreachable"))
	assetStore.On("Delete", mock.Anything, "img-1", repository.AssetKindImage).Return(nil)

	statsCache := new(MockStatsCache)
	statsCache.On("Invalidate", mock.Anything, owner.Hex()).Return()

	u := newVideoUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), assetStore,
		new(MockPlaylistRepository), statsCache)

	err := u.Delete(context.Background(), videoID, owner)

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
	assetStore.AssertExpectations(t)
}

func TestVideoUsecase_IncrementViews_MapsMissingVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	videoRepo.On("IncrementViews", mock.Anything, mock.Anything).Return(int64(0), mongo.ErrNoDocuments)

	u := newVideoUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockAssetStore),
		new(MockPlaylistRepository), new(MockStatsCache))

	_, err := u.IncrementViews(context.Background(), bson.NewObjectID())

	assert.True(t, errors.Is(err, model.ErrNotFound))
}

// A failed cascade must surface as an error and leave the cached dashboard
// aggregates untouched, since no documents changed.
func TestVideoUsecase_Delete_CascadeFailureKeepsStatsCache(t *testing.T) {
	owner := bson.NewObjectID()
	videoID := bson.NewObjectID()

	videoRepo := new(MockVideoRepository)
	videoRepo.On("GetRaw", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, Owner: owner}, nil)
	videoRepo.On("DeleteCascade", mock.Anything, videoID).
		Return(errors.New("transaction aborted"))

	statsCache := new(MockStatsCache)

	u := newVideoUsecase(videoRepo, new(MockLikeRepository),
		new(MockSubscriptionRepository), new(MockAssetStore),
		new(MockPlaylistRepository), statsCache)

	err := u.Delete(context.Background(), videoID, owner)

	assert.True(t, errors.Is(err, model.ErrInternal))
	statsCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}
