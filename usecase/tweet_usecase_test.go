package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
	"videotube/usecase"
)

func TestTweetUsecase_Create_RequiresContent(t *testing.T) {
	u := usecase.NewTweetUsecase(new(MockTweetRepository))

	_, err := u.Create(context.Background(), "  ", bson.NewObjectID())

	assert.True(t, errors.Is(err, model.ErrBadRequest))
}

func TestTweetUsecase_Update_ForbiddenForNonOwner(t *testing.T) {
	tweetID := bson.NewObjectID()

	tweetRepo := new(MockTweetRepository)
	tweetRepo.On("GetByID", mock.Anything, tweetID).
		Return(&model.Tweet{ID: tweetID, Owner: bson.NewObjectID()}, nil)

	u := usecase.NewTweetUsecase(tweetRepo)

	_, err := u.Update(context.Background(), tweetID, "edited", bson.NewObjectID())

	assert.True(t, errors.Is(err, model.ErrForbidden))
	tweetRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestTweetUsecase_Delete(t *testing.T) {
	owner := bson.NewObjectID()
	tweetID := bson.NewObjectID()

	tweetRepo := new(MockTweetRepository)
	tweetRepo.On("GetByID", mock.Anything, tweetID).
		Return(&model.Tweet{ID: tweetID, Owner: owner}, nil)
	tweetRepo.On("Delete", mock.Anything, tweetID).Return(nil)

	u := usecase.NewTweetUsecase(tweetRepo)

	assert.NoError(t, u.Delete(context.Background(), tweetID, owner))
	tweetRepo.AssertExpectations(t)
}
