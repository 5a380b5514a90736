package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type ILikeUsecase interface {
	ToggleVideoLike(ctx context.Context, videoID, caller bson.ObjectID) (bool, error)
	ToggleCommentLike(ctx context.Context, commentID, caller bson.ObjectID) (bool, error)
	ToggleTweetLike(ctx context.Context, tweetID, caller bson.ObjectID) (bool, error)
	IsVideoLiked(ctx context.Context, videoID, caller bson.ObjectID) (bool, error)
	ListLikedVideos(ctx context.Context, caller bson.ObjectID, page, limit int64) (*model.Page[model.VideoWithOwner], error)
}

type likeUsecase struct {
	likeRepository    repository.ILike
	videoRepository   repository.IVideo
	commentRepository repository.IComment
	tweetRepository   repository.ITweet
}

func NewLikeUsecase(
	likeRepository repository.ILike,
	videoRepository repository.IVideo,
	commentRepository repository.IComment,
	tweetRepository repository.ITweet,
) ILikeUsecase {
	return &likeUsecase{
		likeRepository:    likeRepository,
		videoRepository:   videoRepository,
		commentRepository: commentRepository,
		tweetRepository:   tweetRepository,
	}
}

func (u *likeUsecase) ToggleVideoLike(ctx context.Context, videoID, caller bson.ObjectID) (bool, error) {
	if _, err := u.videoRepository.GetRaw(ctx, videoID); err != nil {
		return false, asNotFound(err, "video")
	}
	liked, err := u.likeRepository.Toggle(ctx, model.LikeTargetVideo, videoID, caller)
	if err != nil {
		return false, model.Internal("error in toggling like", err)
	}
	return liked, nil
}

func (u *likeUsecase) ToggleCommentLike(ctx context.Context, commentID, caller bson.ObjectID) (bool, error) {
	if _, err := u.commentRepository.GetByID(ctx, commentID); err != nil {
		return false, asNotFound(err, "comment")
	}
	liked, err := u.likeRepository.Toggle(ctx, model.LikeTargetComment, commentID, caller)
	if err != nil {
		return false, model.Internal("error in toggling comment like", err)
	}
	return liked, nil
}

func (u *likeUsecase) ToggleTweetLike(ctx context.Context, tweetID, caller bson.ObjectID) (bool, error) {
	if _, err := u.tweetRepository.GetByID(ctx, tweetID); err != nil {
		return false, asNotFound(err, "tweet")
	}
	liked, err := u.likeRepository.Toggle(ctx, model.LikeTargetTweet, tweetID, caller)
	if err != nil {
		return false, model.Internal("error in toggling tweet like", err)
	}
	return liked, nil
}

func (u *likeUsecase) IsVideoLiked(ctx context.Context, videoID, caller bson.ObjectID) (bool, error) {
	liked, err := u.likeRepository.Exists(ctx, model.LikeTargetVideo, videoID, caller)
	if err != nil {
		return false, model.Internal("error while retrieving like", err)
	}
	return liked, nil
}

func (u *likeUsecase) ListLikedVideos(ctx context.Context, caller bson.ObjectID, page, limit int64) (*model.Page[model.VideoWithOwner], error) {
	videos, err := u.likeRepository.ListLikedVideos(ctx, caller, page, limit)
	if err != nil {
		return nil, model.Internal("error fetching liked videos", err)
	}
	return videos, nil
}
