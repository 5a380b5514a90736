package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type ITweet interface {
	Insert(ctx context.Context, tweet *model.Tweet) (bson.ObjectID, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error)
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}
