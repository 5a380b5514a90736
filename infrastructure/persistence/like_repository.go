package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type LikeRepository struct {
	db *mongo.Database
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) likes() *mongo.Collection {
	return r.db.Collection(CollLikes)
}

func targetFilter(target model.LikeTarget, targetID, owner bson.ObjectID) bson.D {
	return bson.D{
		{Key: string(target), Value: targetID},
		{Key: "owner", Value: owner},
	}
}

// Toggle deletes the like when present, inserts it otherwise. The partial
// unique index on (owner, target) absorbs the double-insert race: the losing
// insert reports duplicate key and resolves to the liked state.
func (r *LikeRepository) Toggle(ctx context.Context, target model.LikeTarget, targetID, owner bson.ObjectID) (bool, error) {
	filter := targetFilter(target, targetID, owner)

	res, err := r.likes().DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	like := model.Like{Owner: owner, CreatedAt: time.Now().UTC()}
	switch target {
	case model.LikeTargetVideo:
		like.Video = &targetID
	case model.LikeTargetComment:
		like.Comment = &targetID
	case model.LikeTargetTweet:
		like.Tweet = &targetID
	}
	if _, err := r.likes().InsertOne(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) Exists(ctx context.Context, target model.LikeTarget, targetID, owner bson.ObjectID) (bool, error) {
	count, err := r.likes().CountDocuments(ctx, targetFilter(target, targetID, owner))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LikeRepository) CountForVideo(ctx context.Context, videoID bson.ObjectID) (int64, error) {
	return r.likes().CountDocuments(ctx, bson.D{{Key: "video", Value: videoID}})
}

// ListLikedVideos resolves the caller's video likes into joined video
// documents, most recently liked first.
func (r *LikeRepository) ListLikedVideos(ctx context.Context, owner bson.ObjectID, page, limit int64) (*model.Page[model.VideoWithOwner], error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "owner", Value: owner},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$video"}}}},
	}
	pipeline = append(pipeline, ownerLookupStages()...)

	return Paginate[model.VideoWithOwner](ctx, r.likes(), pipeline, page, limit)
}

// CountForChannelVideos counts likes across all of a channel's videos by
// joining each like onto its video and matching the video's owner.
func (r *LikeRepository) CountForChannelVideos(ctx context.Context, channel bson.ObjectID) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollVideos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "videoDetails"},
		}}},
		{{Key: "$unwind", Value: "$videoDetails"}},
		{{Key: "$match", Value: bson.D{{Key: "videoDetails.owner", Value: channel}}}},
	}
	return countPipeline(ctx, r.likes(), pipeline)
}
