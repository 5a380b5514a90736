package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, channelID, caller bson.ObjectID) (bool, error)
	ListChannelSubscribers(ctx context.Context, channelID bson.ObjectID) ([]model.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]model.Subscription, error)
}

type subscriptionUsecase struct {
	subscriptionRepository repository.ISubscription
	userRepository         repository.IUser
}

func NewSubscriptionUsecase(subscriptionRepository repository.ISubscription, userRepository repository.IUser) ISubscriptionUsecase {
	return &subscriptionUsecase{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
	}
}

func (u *subscriptionUsecase) Toggle(ctx context.Context, channelID, caller bson.ObjectID) (bool, error) {
	if channelID == caller {
		return false, model.BadRequest("cannot subscribe to your own channel")
	}
	if _, err := u.userRepository.GetByID(ctx, channelID); err != nil {
		return false, asNotFound(err, "channel")
	}
	subscribed, err := u.subscriptionRepository.Toggle(ctx, caller, channelID)
	if err != nil {
		return false, model.Internal("error in toggling subscription", err)
	}
	return subscribed, nil
}

func (u *subscriptionUsecase) ListChannelSubscribers(ctx context.Context, channelID bson.ObjectID) ([]model.Subscription, error) {
	subs, err := u.subscriptionRepository.ListChannelSubscribers(ctx, channelID)
	if err != nil {
		return nil, model.Internal("error while fetching channel subscribers", err)
	}
	return subs, nil
}

func (u *subscriptionUsecase) ListSubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]model.Subscription, error) {
	subs, err := u.subscriptionRepository.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, model.Internal("error while fetching subscribed channels", err)
	}
	return subs, nil
}
