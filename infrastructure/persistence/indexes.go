package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/domain/model"
)

// EnsureIndexes creates the uniqueness constraints the toggle operations rely
// on. The like/subscription check-then-act paths stay race-free because the
// storage layer rejects the duplicate, not because the application got there
// first.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	likeIndexes := make([]mongo.IndexModel, 0, 3)
	for _, target := range []string{"video", "comment", "tweet"} {
		likeIndexes = append(likeIndexes, mongo.IndexModel{
			Keys: bson.D{{Key: "owner", Value: 1}, {Key: target, Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: target, Value: bson.D{{Key: "$exists", Value: true}}}}),
		})
	}
	if _, err := db.Collection(CollLikes).Indexes().CreateMany(ctx, likeIndexes); err != nil {
		return err
	}

	if _, err := db.Collection(CollSubscriptions).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	// One "Watch History" playlist per user. Concurrent first views race on
	// the upsert; the loser hits this index and retries against the winner's
	// document.
	if _, err := db.Collection(CollPlaylists).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "creator", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.D{{Key: "name", Value: bson.D{{Key: "$eq", Value: model.WatchHistoryName}}}}),
	}); err != nil {
		return err
	}

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(CollUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	_, err := db.Collection(CollVideos).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
