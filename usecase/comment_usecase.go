package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type ICommentUsecase interface {
	ListByVideo(ctx context.Context, videoID bson.ObjectID, caller *bson.ObjectID, page, limit int64) (*model.Page[model.CommentWithMeta], error)
	Add(ctx context.Context, videoID bson.ObjectID, content string, caller bson.ObjectID) (*model.CommentWithMeta, error)
	Update(ctx context.Context, commentID bson.ObjectID, content string, caller bson.ObjectID) (*model.Comment, error)
	Delete(ctx context.Context, commentID, caller bson.ObjectID) error
}

type commentUsecase struct {
	commentRepository repository.IComment
	videoRepository   repository.IVideo
}

func NewCommentUsecase(commentRepository repository.IComment, videoRepository repository.IVideo) ICommentUsecase {
	return &commentUsecase{
		commentRepository: commentRepository,
		videoRepository:   videoRepository,
	}
}

func (u *commentUsecase) ListByVideo(ctx context.Context, videoID bson.ObjectID, caller *bson.ObjectID, page, limit int64) (*model.Page[model.CommentWithMeta], error) {
	comments, err := u.commentRepository.ListByVideo(ctx, videoID, caller, page, limit)
	if err != nil {
		return nil, model.Internal("error occurred while fetching comments", err)
	}
	return comments, nil
}

func (u *commentUsecase) Add(ctx context.Context, videoID bson.ObjectID, content string, caller bson.ObjectID) (*model.CommentWithMeta, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.BadRequest("content is required")
	}
	if _, err := u.videoRepository.GetRaw(ctx, videoID); err != nil {
		return nil, asNotFound(err, "video")
	}
	comment := &model.Comment{Content: content, Video: videoID, Owner: caller}
	id, err := u.commentRepository.Insert(ctx, comment)
	if err != nil {
		return nil, model.Internal("error in posting comment", err)
	}
	populated, err := u.commentRepository.GetWithOwner(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "comment")
	}
	return populated, nil
}

func (u *commentUsecase) Update(ctx context.Context, commentID bson.ObjectID, content string, caller bson.ObjectID) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.BadRequest("content is required")
	}
	comment, err := u.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		return nil, asNotFound(err, "comment")
	}
	if err := ensureOwner(comment.Owner, caller, "comment"); err != nil {
		return nil, err
	}
	updated, err := u.commentRepository.UpdateContent(ctx, commentID, content)
	if err != nil {
		return nil, asNotFound(err, "comment")
	}
	return updated, nil
}

func (u *commentUsecase) Delete(ctx context.Context, commentID, caller bson.ObjectID) error {
	comment, err := u.commentRepository.GetByID(ctx, commentID)
	if err != nil {
		return asNotFound(err, "comment")
	}
	if err := ensureOwner(comment.Owner, caller, "comment"); err != nil {
		return err
	}
	if err := u.commentRepository.Delete(ctx, commentID); err != nil {
		return asNotFound(err, "comment")
	}
	return nil
}
