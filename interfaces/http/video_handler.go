package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IVideoHandler interface {
	List(ctx *gin.Context)
	Publish(ctx *gin.Context)
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
	TogglePublish(ctx *gin.Context)
	IncrementViews(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

func (h *VideoHandler) List(ctx *gin.Context) {
	var q dto.VideoListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		badRequest(ctx, "invalid query parameters")
		return
	}
	page, err := h.videoUsecase.List(ctx.Request.Context(), q, caller(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, page, "videos fetched successfully")
}

// Publish accepts a multipart form with videoFile and thumbnail parts plus
// title and description fields.
func (h *VideoHandler) Publish(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	var req dto.PublishVideoRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "title and description are required")
		return
	}

	videoFile, err := readFormFile(ctx, "videoFile")
	if err != nil || videoFile == nil {
		badRequest(ctx, "videoFile is required")
		return
	}
	thumbnail, err := readFormFile(ctx, "thumbnail")
	if err != nil || thumbnail == nil {
		badRequest(ctx, "thumbnail is required")
		return
	}

	video, err := h.videoUsecase.Publish(ctx.Request.Context(), req, usecase.MediaUpload{
		Video:     *videoFile,
		Thumbnail: *thumbnail,
	}, callerID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Info("Error while publishing video")
		fail(ctx, err)
		return
	}
	created(ctx, video, "video published successfully")
}

func (h *VideoHandler) Get(ctx *gin.Context) {
	id, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	video, err := h.videoUsecase.GetByID(ctx.Request.Context(), id, caller(ctx))
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, video, "video fetched successfully")
}

func (h *VideoHandler) Update(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	id, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	var req dto.UpdateVideoRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, "invalid update payload")
		return
	}
	thumbnail, err := readFormFile(ctx, "thumbnail")
	if err != nil {
		badRequest(ctx, "could not read the thumbnail file")
		return
	}

	video, err := h.videoUsecase.Update(ctx.Request.Context(), id, req, thumbnail, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, video, "video updated successfully")
}

func (h *VideoHandler) Delete(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	id, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	if err := h.videoUsecase.Delete(ctx.Request.Context(), id, callerID); err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, nil, "video deleted successfully")
}

func (h *VideoHandler) TogglePublish(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	id, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	video, err := h.videoUsecase.TogglePublish(ctx.Request.Context(), id, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, video, "publish state toggled successfully")
}

func (h *VideoHandler) IncrementViews(ctx *gin.Context) {
	id, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	views, err := h.videoUsecase.IncrementViews(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, gin.H{"views": views}, "view recorded successfully")
}
