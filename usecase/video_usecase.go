package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/sync/errgroup"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type IVideoUsecase interface {
	List(ctx context.Context, q dto.VideoListQuery, caller *bson.ObjectID) (*model.Page[model.VideoWithOwner], error)
	GetByID(ctx context.Context, id bson.ObjectID, caller *bson.ObjectID) (*model.VideoDetail, error)
	Publish(ctx context.Context, req dto.PublishVideoRequest, media MediaUpload, caller bson.ObjectID) (*model.Video, error)
	Update(ctx context.Context, id bson.ObjectID, req dto.UpdateVideoRequest, media *MediaFile, caller bson.ObjectID) (*model.Video, error)
	TogglePublish(ctx context.Context, id, caller bson.ObjectID) (*model.Video, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error)
	Delete(ctx context.Context, id, caller bson.ObjectID) error
}

// MediaFile is one uploaded blob on its way to the asset host.
type MediaFile struct {
	Data     []byte
	Filename string
}

// MediaUpload carries the video/thumbnail pair required to publish.
type MediaUpload struct {
	Video     MediaFile
	Thumbnail MediaFile
}

type videoUsecase struct {
	videoRepository        repository.IVideo
	likeRepository         repository.ILike
	subscriptionRepository repository.ISubscription
	assetStore             repository.IAssetStore
	watchHistory           *WatchHistoryMaintainer
	statsCache             repository.IStatsCache
}

func NewVideoUsecase(
	videoRepository repository.IVideo,
	likeRepository repository.ILike,
	subscriptionRepository repository.ISubscription,
	assetStore repository.IAssetStore,
	watchHistory *WatchHistoryMaintainer,
	statsCache repository.IStatsCache,
) IVideoUsecase {
	return &videoUsecase{
		videoRepository:        videoRepository,
		likeRepository:         likeRepository,
		subscriptionRepository: subscriptionRepository,
		assetStore:             assetStore,
		watchHistory:           watchHistory,
		statsCache:             statsCache,
	}
}

func (u *videoUsecase) List(ctx context.Context, q dto.VideoListQuery, caller *bson.ObjectID) (*model.Page[model.VideoWithOwner], error) {
	q.Normalize()
	if q.UserID != "" {
		ownerID, err := bson.ObjectIDFromHex(q.UserID)
		if err != nil {
			return nil, model.BadRequest("invalid userId")
		}
		q.OwnerID = &ownerID
	}
	// The published-only clause may only be lifted by the owner listing their
	// own videos. Anything else keeps the restriction, regardless of what the
	// caller asked for.
	if q.All {
		if caller == nil || q.OwnerID == nil || *caller != *q.OwnerID {
			return nil, model.Forbidden("unpublished videos are only visible to their owner")
		}
	}

	page, err := u.videoRepository.List(ctx, q)
	if err != nil {
		return nil, model.Internal("error while fetching videos", err)
	}
	return page, nil
}

func (u *videoUsecase) GetByID(ctx context.Context, id bson.ObjectID, caller *bson.ObjectID) (*model.VideoDetail, error) {
	video, err := u.videoRepository.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "video")
	}

	detail := &model.VideoDetail{VideoWithOwner: *video}

	// Counts are independent point-in-time snapshots; the watch-history
	// update rides the same fan-out when the caller is authenticated.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		likes, err := u.likeRepository.CountForVideo(gCtx, id)
		if err != nil {
			return err
		}
		detail.Likes = likes
		return nil
	})
	g.Go(func() error {
		subs, err := u.subscriptionRepository.CountForChannel(gCtx, video.Owner.ID)
		if err != nil {
			return err
		}
		detail.SubscriberCount = subs
		return nil
	})
	if caller != nil {
		user := *caller
		g.Go(func() error {
			return u.watchHistory.Record(gCtx, user, id)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, model.Internal("error while assembling video details", err)
	}
	return detail, nil
}

func (u *videoUsecase) Publish(ctx context.Context, req dto.PublishVideoRequest, media MediaUpload, caller bson.ObjectID) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, model.BadRequest("title and description are required")
	}
	if len(media.Video.Data) == 0 {
		return nil, model.BadRequest("video file is required")
	}
	if len(media.Thumbnail.Data) == 0 {
		return nil, model.BadRequest("thumbnail is required")
	}

	videoAsset, err := u.assetStore.Store(ctx, media.Video.Data, media.Video.Filename, repository.AssetKindVideo)
	if err != nil {
		return nil, model.Internal("error while uploading the video file", err)
	}
	thumbAsset, err := u.assetStore.Store(ctx, media.Thumbnail.Data, media.Thumbnail.Filename, repository.AssetKindImage)
	if err != nil {
		return nil, model.Internal("error while uploading the thumbnail", err)
	}

	video := &model.Video{
		Title:             req.Title,
		Description:       req.Description,
		VideoFile:         videoAsset.URL,
		PublicID:          videoAsset.Handle,
		Thumbnail:         thumbAsset.URL,
		ThumbnailPublicID: thumbAsset.Handle,
		Duration:          videoAsset.Duration,
		IsPublished:       true,
		Owner:             caller,
	}
	if _, err := u.videoRepository.Insert(ctx, video); err != nil {
		return nil, model.Internal("error in publishing the video", err)
	}
	u.statsCache.Invalidate(ctx, caller.Hex())
	return video, nil
}

func (u *videoUsecase) Update(ctx context.Context, id bson.ObjectID, req dto.UpdateVideoRequest, media *MediaFile, caller bson.ObjectID) (*model.Video, error) {
	video, err := u.videoRepository.GetRaw(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "video")
	}
	if err := ensureOwner(video.Owner, caller, "video"); err != nil {
		return nil, err
	}

	if req.Title != "" {
		video.Title = req.Title
	}
	if req.Description != "" {
		video.Description = req.Description
	}
	if media != nil && len(media.Data) > 0 {
		asset, err := u.assetStore.Store(ctx, media.Data, media.Filename, repository.AssetKindImage)
		if err != nil {
			return nil, model.Internal("error while uploading the updated thumbnail", err)
		}
		oldHandle := video.ThumbnailPublicID
		video.Thumbnail = asset.URL
		video.ThumbnailPublicID = asset.Handle
		if oldHandle != "" {
			if err := u.assetStore.Delete(ctx, oldHandle, repository.AssetKindImage); err != nil {
				logger.GetLogger().WithField("error", err).WithField("handle", oldHandle).
					Warn("Failed to delete replaced thumbnail asset")
			}
		}
	}

	if err := u.videoRepository.UpdateMeta(ctx, video); err != nil {
		return nil, asNotFound(err, "video")
	}
	return video, nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, id, caller bson.ObjectID) (*model.Video, error) {
	video, err := u.videoRepository.GetRaw(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "video")
	}
	if err := ensureOwner(video.Owner, caller, "video"); err != nil {
		return nil, err
	}
	updated, err := u.videoRepository.SetPublished(ctx, id, !video.IsPublished)
	if err != nil {
		return nil, asNotFound(err, "video")
	}
	return updated, nil
}

func (u *videoUsecase) IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error) {
	views, err := u.videoRepository.IncrementViews(ctx, id)
	if err != nil {
		return 0, asNotFound(err, "video")
	}
	return views, nil
}

// Delete runs the asset-host delete first and best-effort: there is no
// compensating undelete on the host, so its failure is logged, not rolled
// into the transaction. Every document mutation after it is all-or-nothing.
func (u *videoUsecase) Delete(ctx context.Context, id, caller bson.ObjectID) error {
	video, err := u.videoRepository.GetRaw(ctx, id)
	if err != nil {
		return asNotFound(err, "video")
	}
	if err := ensureOwner(video.Owner, caller, "video"); err != nil {
		return err
	}

	if video.PublicID != "" {
		if err := u.assetStore.Delete(ctx, video.PublicID, repository.AssetKindVideo); err != nil {
			logger.GetLogger().WithField("error", err).WithField("handle", video.PublicID).
				Warn("Asset host delete failed; continuing with document cascade")
		}
	}
	if video.ThumbnailPublicID != "" {
		if err := u.assetStore.Delete(ctx, video.ThumbnailPublicID, repository.AssetKindImage); err != nil {
			logger.GetLogger().WithField("error", err).WithField("handle", video.ThumbnailPublicID).
				Warn("Asset host thumbnail delete failed; continuing with document cascade")
		}
	}

	if err := u.videoRepository.DeleteCascade(ctx, id); err != nil {
		return asNotFound(err, "video")
	}
	u.statsCache.Invalidate(ctx, caller.Hex())
	return nil
}
