package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/dto"
	"videotube/domain/model"
)

type IVideo interface {
	List(ctx context.Context, q dto.VideoListQuery) (*model.Page[model.VideoWithOwner], error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.VideoWithOwner, error)
	GetRaw(ctx context.Context, id bson.ObjectID) (*model.Video, error)
	Insert(ctx context.Context, video *model.Video) (bson.ObjectID, error)
	UpdateMeta(ctx context.Context, video *model.Video) error
	SetPublished(ctx context.Context, id bson.ObjectID, published bool) (*model.Video, error)
	// IncrementViews bumps the counter atomically and returns the new count.
	IncrementViews(ctx context.Context, id bson.ObjectID) (int64, error)
	// DeleteCascade removes the video and every dependent document in one
	// transaction: playlist memberships, likes, comments and legacy
	// watch-history references.
	DeleteCascade(ctx context.Context, id bson.ObjectID) error
	CountByOwner(ctx context.Context, owner bson.ObjectID) (int64, error)
	TotalViewsByOwner(ctx context.Context, owner bson.ObjectID) (int64, error)
}
