package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type ISubscription interface {
	Toggle(ctx context.Context, subscriber, channel bson.ObjectID) (subscribed bool, err error)
	CountForChannel(ctx context.Context, channel bson.ObjectID) (int64, error)
	ListChannelSubscribers(ctx context.Context, channel bson.ObjectID) ([]model.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]model.Subscription, error)
}
