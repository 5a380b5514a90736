package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type SubscriptionRepository struct {
	db *mongo.Database
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) subscriptions() *mongo.Collection {
	return r.db.Collection(CollSubscriptions)
}

// Toggle mirrors the like toggle: delete when present, insert otherwise, with
// the unique (subscriber, channel) index closing the concurrent-insert race.
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "subscriber", Value: subscriber},
		{Key: "channel", Value: channel},
	}
	res, err := r.subscriptions().DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	sub := model.Subscription{Subscriber: subscriber, Channel: channel, CreatedAt: time.Now().UTC()}
	if _, err := r.subscriptions().InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *SubscriptionRepository) CountForChannel(ctx context.Context, channel bson.ObjectID) (int64, error) {
	return r.subscriptions().CountDocuments(ctx, bson.D{{Key: "channel", Value: channel}})
}

func (r *SubscriptionRepository) ListChannelSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.Subscription, error) {
	cursor, err := r.subscriptions().Find(ctx, bson.D{{Key: "channel", Value: channel}})
	if err != nil {
		return nil, err
	}
	var out []model.Subscription
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.Subscription, error) {
	cursor, err := r.subscriptions().Find(ctx, bson.D{{Key: "subscriber", Value: subscriber}})
	if err != nil {
		return nil, err
	}
	var out []model.Subscription
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
