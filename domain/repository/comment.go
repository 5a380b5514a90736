package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type IComment interface {
	ListByVideo(ctx context.Context, videoID bson.ObjectID, caller *bson.ObjectID, page, limit int64) (*model.Page[model.CommentWithMeta], error)
	Insert(ctx context.Context, comment *model.Comment) (bson.ObjectID, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	GetWithOwner(ctx context.Context, id bson.ObjectID) (*model.CommentWithMeta, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
