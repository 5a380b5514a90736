package usecase

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type IUserUsecase interface {
	Register(ctx context.Context, req model.ReqRegister, avatar, coverImage *MediaFile) (*model.User, error)
	Login(ctx context.Context, req model.ReqLogin) (string, *model.User, error)
	GetProfile(ctx context.Context, id bson.ObjectID) (*model.User, error)
	UpdateProfile(ctx context.Context, id bson.ObjectID, req dto.UpdateProfileRequest) (*model.User, error)
	UpdateAvatar(ctx context.Context, id bson.ObjectID, media *MediaFile) (*model.User, error)
	UpdateCoverImage(ctx context.Context, id bson.ObjectID, media *MediaFile) (*model.User, error)
	GetWatchHistory(ctx context.Context, id bson.ObjectID) (*model.PlaylistWithVideos, error)
}

type userUsecase struct {
	userRepository     repository.IUser
	playlistRepository repository.IPlaylist
	assetStore         repository.IAssetStore
	secretKey          string
}

func NewUserUsecase(
	userRepository repository.IUser,
	playlistRepository repository.IPlaylist,
	assetStore repository.IAssetStore,
	secretKey string,
) IUserUsecase {
	return &userUsecase{
		userRepository:     userRepository,
		playlistRepository: playlistRepository,
		assetStore:         assetStore,
		secretKey:          secretKey,
	}
}

func hashPassword(password string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(password)))
}

func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister, avatar, coverImage *MediaFile) (*model.User, error) {
	for _, field := range []string{req.UserName, req.Email, req.FullName, req.Password} {
		if strings.TrimSpace(field) == "" {
			return nil, model.BadRequest("all fields are required")
		}
	}

	exists, err := u.userRepository.ExistsByUsernameOrEmail(ctx, strings.ToLower(req.UserName), req.Email)
	if err != nil {
		return nil, model.Internal("error while checking existing users", err)
	}
	if exists {
		return nil, model.Conflict("user with username or email already exists")
	}

	user := &model.User{
		Username: strings.ToLower(req.UserName),
		Email:    req.Email,
		FullName: req.FullName,
		Password: hashPassword(req.Password),
	}

	if avatar != nil && len(avatar.Data) > 0 {
		asset, err := u.assetStore.Store(ctx, avatar.Data, avatar.Filename, repository.AssetKindImage)
		if err != nil {
			return nil, model.Internal("error while uploading the avatar", err)
		}
		user.Avatar = asset.URL
		user.AvatarPublicID = asset.Handle
	}
	if coverImage != nil && len(coverImage.Data) > 0 {
		asset, err := u.assetStore.Store(ctx, coverImage.Data, coverImage.Filename, repository.AssetKindImage)
		if err != nil {
			return nil, model.Internal("error while uploading the cover image", err)
		}
		user.CoverImage = asset.URL
		user.CoverImagePublicID = asset.Handle
	}

	id, err := u.userRepository.Insert(ctx, user)
	if err != nil {
		return nil, model.Internal("something went wrong while registering the user", err)
	}

	// Every account starts with an empty "Watch Later". Its absence is an
	// inconvenience, not corruption, so a failure only logs.
	watchLater := &model.Playlist{Name: model.WatchLaterName, Creator: id}
	if _, err := u.playlistRepository.Insert(ctx, watchLater); err != nil {
		logger.GetLogger().WithField("error", err).WithField("userId", id.Hex()).
			Warn("Failed to create Watch Later playlist at registration")
	}

	return user, nil
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) (string, *model.User, error) {
	user, err := u.userRepository.GetByUserName(ctx, strings.ToLower(req.UserName))
	if err != nil {
		return "", nil, model.Unauthorized("invalid username or password")
	}
	if user.Password != hashPassword(req.Password) {
		return "", nil, model.Unauthorized("invalid username or password")
	}

	now := time.Now()
	claims := model.UserClaims{
		UserName: user.Username,
		StandardClaims: jwt.StandardClaims{
			Issuer:    user.ID.Hex(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.secretKey))
	if err != nil {
		return "", nil, model.Internal("error while signing token", err)
	}
	return signed, user, nil
}

func (u *userUsecase) GetProfile(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user")
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, id bson.ObjectID, req dto.UpdateProfileRequest) (*model.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	if fullName == "" && email == "" {
		return nil, model.BadRequest("at least one of fullname and email is required")
	}
	user, err := u.userRepository.UpdateProfile(ctx, id, fullName, email)
	if err != nil {
		return nil, asNotFound(err, "user")
	}
	return user, nil
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, id bson.ObjectID, media *MediaFile) (*model.User, error) {
	if media == nil || len(media.Data) == 0 {
		return nil, model.BadRequest("avatar file is required")
	}
	current, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user")
	}
	asset, err := u.assetStore.Store(ctx, media.Data, media.Filename, repository.AssetKindImage)
	if err != nil {
		return nil, model.Internal("error while uploading the avatar", err)
	}
	user, err := u.userRepository.SetAvatar(ctx, id, asset.URL, asset.Handle)
	if err != nil {
		return nil, asNotFound(err, "user")
	}
	if current.AvatarPublicID != "" {
		if err := u.assetStore.Delete(ctx, current.AvatarPublicID, repository.AssetKindImage); err != nil {
			logger.GetLogger().WithField("error", err).WithField("handle", current.AvatarPublicID).
				Warn("Failed to delete replaced avatar asset")
		}
	}
	return user, nil
}

func (u *userUsecase) UpdateCoverImage(ctx context.Context, id bson.ObjectID, media *MediaFile) (*model.User, error) {
	if media == nil || len(media.Data) == 0 {
		return nil, model.BadRequest("cover image file is required")
	}
	current, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "user")
	}
	asset, err := u.assetStore.Store(ctx, media.Data, media.Filename, repository.AssetKindImage)
	if err != nil {
		return nil, model.Internal("error while uploading the cover image", err)
	}
	user, err := u.userRepository.SetCoverImage(ctx, id, asset.URL, asset.Handle)
	if err != nil {
		return nil, asNotFound(err, "user")
	}
	if current.CoverImagePublicID != "" {
		if err := u.assetStore.Delete(ctx, current.CoverImagePublicID, repository.AssetKindImage); err != nil {
			logger.GetLogger().WithField("error", err).WithField("handle", current.CoverImagePublicID).
				Warn("Failed to delete replaced cover image asset")
		}
	}
	return user, nil
}

// GetWatchHistory reads the caller's "Watch History" playlist. A user who has
// never watched anything gets an empty sequence, not an error.
func (u *userUsecase) GetWatchHistory(ctx context.Context, id bson.ObjectID) (*model.PlaylistWithVideos, error) {
	history, err := u.playlistRepository.GetWatchHistory(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.PlaylistWithVideos{
				Name:    model.WatchHistoryName,
				Creator: id,
				Videos:  []model.Video{},
			}, nil
		}
		return nil, model.Internal("error while getting watch history", err)
	}
	return history, nil
}
