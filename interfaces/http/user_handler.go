package http

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IUserHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
	GetChannel(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	UpdateAvatar(ctx *gin.Context)
	UpdateCoverImage(ctx *gin.Context)
	WatchHistory(ctx *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// Register creates an account from a multipart form with optional avatar
// and coverImage parts.
func (h *UserHandler) Register(ctx *gin.Context) {
	var req model.ReqRegister
	if err := ctx.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Info("Error while binding register request")
		badRequest(ctx, "username, email, fullname and password are required")
		return
	}

	avatar, err := readFormFile(ctx, "avatar")
	if err != nil {
		badRequest(ctx, "could not read the avatar file")
		return
	}
	coverImage, err := readFormFile(ctx, "coverImage")
	if err != nil {
		badRequest(ctx, "could not read the cover image file")
		return
	}

	user, err := h.userUsecase.Register(ctx.Request.Context(), req, avatar, coverImage)
	if err != nil {
		fail(ctx, err)
		return
	}
	created(ctx, user, "user registered successfully")
}

func (h *UserHandler) Login(ctx *gin.Context) {
	var req model.ReqLogin
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "username and password are required")
		return
	}

	token, user, err := h.userUsecase.Login(ctx.Request.Context(), req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, gin.H{"user": user, "accessToken": token}, "user logged in successfully")
}

func (h *UserHandler) Me(ctx *gin.Context) {
	id, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	user, err := h.userUsecase.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, user, "current user fetched successfully")
}

func (h *UserHandler) GetChannel(ctx *gin.Context) {
	id, valid := pathID(ctx, "userId")
	if !valid {
		return
	}
	user, err := h.userUsecase.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, user, "channel fetched successfully")
}

func (h *UserHandler) UpdateProfile(ctx *gin.Context) {
	id, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid profile payload")
		return
	}
	user, err := h.userUsecase.UpdateProfile(ctx.Request.Context(), id, req)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, user, "profile updated successfully")
}

func (h *UserHandler) UpdateAvatar(ctx *gin.Context) {
	id, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	avatar, err := readFormFile(ctx, "avatar")
	if err != nil {
		badRequest(ctx, "could not read the avatar file")
		return
	}
	user, err := h.userUsecase.UpdateAvatar(ctx.Request.Context(), id, avatar)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, user, "avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(ctx *gin.Context) {
	id, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	coverImage, err := readFormFile(ctx, "coverImage")
	if err != nil {
		badRequest(ctx, "could not read the cover image file")
		return
	}
	user, err := h.userUsecase.UpdateCoverImage(ctx.Request.Context(), id, coverImage)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, user, "cover image updated successfully")
}

func (h *UserHandler) WatchHistory(ctx *gin.Context) {
	id, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	history, err := h.userUsecase.GetWatchHistory(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, history, "watch history fetched successfully")
}

// readFormFile loads one optional multipart part into memory. Absent part
// returns nil without error.
func readFormFile(ctx *gin.Context, name string) (*usecase.MediaFile, error) {
	header, err := ctx.FormFile(name)
	if err != nil {
		return nil, nil
	}
	data, err := readAll(header)
	if err != nil {
		return nil, err
	}
	return &usecase.MediaFile{Data: data, Filename: header.Filename}, nil
}

func readAll(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
