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

type UserRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{db: db}
}

func (r *UserRepository) users() *mongo.Collection {
	return r.db.Collection(CollUsers)
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) (bson.ObjectID, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	res, err := r.users().InsertOne(ctx, user)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id := res.InsertedID.(bson.ObjectID)
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var user model.User
	err := r.users().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUserName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.users().FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id bson.ObjectID, fullName, email string) (*model.User, error) {
	set := bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}
	if fullName != "" {
		set = append(set, bson.E{Key: "fullname", Value: fullName})
	}
	if email != "" {
		set = append(set, bson.E{Key: "email", Value: email})
	}
	return r.findOneAndSet(ctx, id, set)
}

func (r *UserRepository) SetAvatar(ctx context.Context, id bson.ObjectID, url, publicID string) (*model.User, error) {
	return r.findOneAndSet(ctx, id, bson.D{
		{Key: "avatar", Value: url},
		{Key: "avatarPublicId", Value: publicID},
		{Key: "updatedAt", Value: time.Now().UTC()},
	})
}

func (r *UserRepository) SetCoverImage(ctx context.Context, id bson.ObjectID, url, publicID string) (*model.User, error) {
	return r.findOneAndSet(ctx, id, bson.D{
		{Key: "coverImage", Value: url},
		{Key: "coverImagePublicId", Value: publicID},
		{Key: "updatedAt", Value: time.Now().UTC()},
	})
}

func (r *UserRepository) findOneAndSet(ctx context.Context, id bson.ObjectID, set bson.D) (*model.User, error) {
	var user model.User
	err := r.users().FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	count, err := r.users().CountDocuments(ctx, bson.D{
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "username", Value: username}},
			bson.D{{Key: "email", Value: email}},
		}},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
