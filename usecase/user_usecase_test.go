package usecase_test

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/usecase"
)

const testSecret = "test-secret"

func TestUserUsecase_Register_DuplicateIsConflict(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "gopher", "gopher@example.com").
		Return(true, nil)

	u := usecase.NewUserUsecase(userRepo, new(MockPlaylistRepository), new(MockAssetStore), testSecret)

	_, err := u.Register(context.Background(), model.ReqRegister{
		UserName: "Gopher", Email: "gopher@example.com", FullName: "Go Pher", Password: "secret",
	}, nil, nil)

	assert.True(t, errors.Is(err, model.ErrConflict))
}

func TestUserUsecase_Register_CreatesWatchLaterPlaylist(t *testing.T) {
	id := bson.NewObjectID()

	userRepo := new(MockUserRepository)
	userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "gopher", "gopher@example.com").
		Return(false, nil)
	userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// Stored lowercased with a hashed password, never the plaintext.
		return u.Username == "gopher" && u.Password != "secret"
	})).Return(id, nil)

	playlistRepo := new(MockPlaylistRepository)
	playlistRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Playlist) bool {
		return p.Name == model.WatchLaterName && p.Creator == id
	})).Return(bson.NewObjectID(), nil)

	u := usecase.NewUserUsecase(userRepo, playlistRepo, new(MockAssetStore), testSecret)

	user, err := u.Register(context.Background(), model.ReqRegister{
		UserName: "Gopher", Email: "gopher@example.com", FullName: "Go Pher", Password: "secret",
	}, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "gopher", user.Username)
	playlistRepo.AssertExpectations(t)
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetByUserName", mock.Anything, "gopher").Return(&model.User{
		Username: "gopher",
		Password: fmt.Sprintf("%x", md5.Sum([]byte("right"))),
	}, nil)

	u := usecase.NewUserUsecase(userRepo, new(MockPlaylistRepository), new(MockAssetStore), testSecret)

	_, _, err := u.Login(context.Background(), model.ReqLogin{UserName: "gopher", Password: "wrong"})

	assert.True(t, errors.Is(err, model.ErrUnauthorized))
}

func TestUserUsecase_Login_IssuesToken(t *testing.T) {
	id := bson.NewObjectID()
	userRepo := new(MockUserRepository)
	userRepo.On("GetByUserName", mock.Anything, "gopher").Return(&model.User{
		ID:       id,
		Username: "gopher",
		Password: fmt.Sprintf("%x", md5.Sum([]byte("secret"))),
	}, nil)

	u := usecase.NewUserUsecase(userRepo, new(MockPlaylistRepository), new(MockAssetStore), testSecret)

	token, user, err := u.Login(context.Background(), model.ReqLogin{UserName: "gopher", Password: "secret"})

	assert.NoError(t, err)
	assert.Equal(t, "gopher", user.Username)

	var claims model.UserClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, id.Hex(), claims.Issuer)
	assert.Equal(t, "gopher", claims.UserName)
}

func TestUserUsecase_UpdateProfile_RequiresAField(t *testing.T) {
	u := usecase.NewUserUsecase(new(MockUserRepository), new(MockPlaylistRepository), new(MockAssetStore), testSecret)

	_, err := u.UpdateProfile(context.Background(), bson.NewObjectID(), dto.UpdateProfileRequest{})

	assert.True(t, errors.Is(err, model.ErrBadRequest))
}

func TestUserUsecase_UpdateProfile_SetsNonEmptyFields(t *testing.T) {
	id := bson.NewObjectID()

	userRepo := new(MockUserRepository)
	userRepo.On("UpdateProfile", mock.Anything, id, "Go Pher", "").
		Return(&model.User{ID: id, FullName: "Go Pher"}, nil)

	u := usecase.NewUserUsecase(userRepo, new(MockPlaylistRepository), new(MockAssetStore), testSecret)

	user, err := u.UpdateProfile(context.Background(), id, dto.UpdateProfileRequest{FullName: "Go Pher"})

	assert.NoError(t, err)
	assert.Equal(t, "Go Pher", user.FullName)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_UpdateAvatar_ReplacesAndDeletesOldAsset(t *testing.T) {
	id := bson.NewObjectID()

	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, id).
		Return(&model.User{ID: id, Avatar: "http://assets/old.png", AvatarPublicID: "avatar-old"}, nil)
	userRepo.On("SetAvatar", mock.Anything, id, "http://assets/new.png", "avatar-new").
		Return(&model.User{ID: id, Avatar: "http://assets/new.png", AvatarPublicID: "avatar-new"}, nil)

	assetStore := new(MockAssetStore)
	assetStore.On("Store", mock.Anything, []byte("img"), "new.png", repository.AssetKindImage).
		Return(&repository.StoredAsset{URL: "http://assets/new.png", Handle: "avatar-new"}, nil)
	assetStore.On("Delete", mock.Anything, "avatar-old", repository.AssetKindImage).Return(nil)

	u := usecase.NewUserUsecase(userRepo, new(MockPlaylistRepository), assetStore, testSecret)

	user, err := u.UpdateAvatar(context.Background(), id, &usecase.MediaFile{Data: []byte("img"), Filename: "new.png"})

	assert.NoError(t, err)
	assert.Equal(t, "http://assets/new.png", user.Avatar)
	assetStore.AssertExpectations(t)
}

func TestUserUsecase_UpdateAvatar_RequiresFile(t *testing.T) {
	u := usecase.NewUserUsecase(new(MockUserRepository), new(MockPlaylistRepository), new(MockAssetStore), testSecret)

	_, err := u.UpdateAvatar(context.Background(), bson.NewObjectID(), nil)

	assert.True(t, errors.Is(err, model.ErrBadRequest))
}

func TestUserUsecase_GetWatchHistory_EmptyWhenNeverWatched(t *testing.T) {
	id := bson.NewObjectID()

	playlistRepo := new(MockPlaylistRepository)
	playlistRepo.On("GetWatchHistory", mock.Anything, id).Return(nil, mongo.ErrNoDocuments)

	u := usecase.NewUserUsecase(new(MockUserRepository), playlistRepo, new(MockAssetStore), testSecret)

	history, err := u.GetWatchHistory(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, model.WatchHistoryName, history.Name)
	assert.Empty(t, history.Videos)
}
