package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type TweetRepository struct {
	db *mongo.Database
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) tweets() *mongo.Collection {
	return r.db.Collection(CollTweets)
}

func (r *TweetRepository) Insert(ctx context.Context, tweet *model.Tweet) (bson.ObjectID, error) {
	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	res, err := r.tweets().InsertOne(ctx, tweet)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id := res.InsertedID.(bson.ObjectID)
	tweet.ID = id
	return id, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.tweets().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]model.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.tweets().Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}
	var out []model.Tweet
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (*model.Tweet, error) {
	var tweet model.Tweet
	err := r.tweets().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tweet)
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.tweets().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
