package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/model"
	"videotube/usecase"
)

func TestSubscriptionUsecase_Toggle_SelfSubscribeRejected(t *testing.T) {
	id := bson.NewObjectID()
	subRepo := new(MockSubscriptionRepository)

	u := usecase.NewSubscriptionUsecase(subRepo, new(MockUserRepository))

	_, err := u.Toggle(context.Background(), id, id)

	assert.True(t, errors.Is(err, model.ErrBadRequest))
	subRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionUsecase_Toggle_MissingChannel(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, mongo.ErrNoDocuments)

	u := usecase.NewSubscriptionUsecase(new(MockSubscriptionRepository), userRepo)

	_, err := u.Toggle(context.Background(), bson.NewObjectID(), bson.NewObjectID())

	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestSubscriptionUsecase_Toggle(t *testing.T) {
	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, channel).Return(&model.User{ID: channel}, nil)

	subRepo := new(MockSubscriptionRepository)
	subRepo.On("Toggle", mock.Anything, subscriber, channel).Return(true, nil)

	u := usecase.NewSubscriptionUsecase(subRepo, userRepo)

	subscribed, err := u.Toggle(context.Background(), channel, subscriber)

	assert.NoError(t, err)
	assert.True(t, subscribed)
}
