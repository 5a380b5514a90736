package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type ILike interface {
	// Toggle removes an existing like or creates one, returning the resulting
	// state. A concurrent duplicate insert is absorbed by the unique index.
	Toggle(ctx context.Context, target model.LikeTarget, targetID, owner bson.ObjectID) (liked bool, err error)
	Exists(ctx context.Context, target model.LikeTarget, targetID, owner bson.ObjectID) (bool, error)
	CountForVideo(ctx context.Context, videoID bson.ObjectID) (int64, error)
	ListLikedVideos(ctx context.Context, owner bson.ObjectID, page, limit int64) (*model.Page[model.VideoWithOwner], error)
	// CountForChannelVideos counts likes across every video owned by channel.
	CountForChannelVideos(ctx context.Context, channel bson.ObjectID) (int64, error)
}
