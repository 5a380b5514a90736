package usecase

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
	"videotube/domain/repository"
)

type ITweetUsecase interface {
	Create(ctx context.Context, content string, caller bson.ObjectID) (*model.Tweet, error)
	ListByUser(ctx context.Context, userID bson.ObjectID) ([]model.Tweet, error)
	Update(ctx context.Context, tweetID bson.ObjectID, content string, caller bson.ObjectID) (*model.Tweet, error)
	Delete(ctx context.Context, tweetID, caller bson.ObjectID) error
}

type tweetUsecase struct {
	tweetRepository repository.ITweet
}

func NewTweetUsecase(tweetRepository repository.ITweet) ITweetUsecase {
	return &tweetUsecase{tweetRepository: tweetRepository}
}

func (u *tweetUsecase) Create(ctx context.Context, content string, caller bson.ObjectID) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.BadRequest("content is required")
	}
	tweet := &model.Tweet{Content: content, Owner: caller}
	if _, err := u.tweetRepository.Insert(ctx, tweet); err != nil {
		return nil, model.Internal("error while creating the tweet", err)
	}
	return tweet, nil
}

func (u *tweetUsecase) ListByUser(ctx context.Context, userID bson.ObjectID) ([]model.Tweet, error) {
	tweets, err := u.tweetRepository.ListByOwner(ctx, userID)
	if err != nil {
		return nil, model.Internal("error occurred while fetching the tweets", err)
	}
	return tweets, nil
}

func (u *tweetUsecase) Update(ctx context.Context, tweetID bson.ObjectID, content string, caller bson.ObjectID) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, model.BadRequest("content is required")
	}
	tweet, err := u.tweetRepository.GetByID(ctx, tweetID)
	if err != nil {
		return nil, asNotFound(err, "tweet")
	}
	if err := ensureOwner(tweet.Owner, caller, "tweet"); err != nil {
		return nil, err
	}
	updated, err := u.tweetRepository.UpdateContent(ctx, tweetID, content)
	if err != nil {
		return nil, asNotFound(err, "tweet")
	}
	return updated, nil
}

func (u *tweetUsecase) Delete(ctx context.Context, tweetID, caller bson.ObjectID) error {
	tweet, err := u.tweetRepository.GetByID(ctx, tweetID)
	if err != nil {
		return asNotFound(err, "tweet")
	}
	if err := ensureOwner(tweet.Owner, caller, "tweet"); err != nil {
		return err
	}
	if err := u.tweetRepository.Delete(ctx, tweetID); err != nil {
		return asNotFound(err, "tweet")
	}
	return nil
}
