package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"videotube/domain/model"
)

type IUser interface {
	Insert(ctx context.Context, user *model.User) (bson.ObjectID, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	GetByUserName(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	// UpdateProfile sets the non-empty fields and returns the updated document.
	UpdateProfile(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error)
	SetAvatar(ctx context.Context, id bson.ObjectID, url, publicID string) (*model.User, error)
	SetCoverImage(ctx context.Context, id bson.ObjectID, url, publicID string) (*model.User, error)
}
