package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

type IPlaylistHandler interface {
	Create(ctx *gin.Context)
	Get(ctx *gin.Context)
	ListByUser(ctx *gin.Context)
	ListContainingVideo(ctx *gin.Context)
	AddVideo(ctx *gin.Context)
	RemoveVideo(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type PlaylistHandler struct {
	playlistUsecase usecase.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecase.IPlaylistUsecase) IPlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

func (h *PlaylistHandler) Create(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	var req dto.CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "name is required")
		return
	}
	playlist, err := h.playlistUsecase.Create(ctx.Request.Context(), req, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	created(ctx, playlist, "playlist created successfully")
}

func (h *PlaylistHandler) Get(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	id, valid := pathID(ctx, "playlistId")
	if !valid {
		return
	}
	playlist, err := h.playlistUsecase.GetByID(ctx.Request.Context(), id, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, playlist, "playlist fetched successfully")
}

func (h *PlaylistHandler) ListByUser(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	userID, valid := pathID(ctx, "userId")
	if !valid {
		return
	}
	playlists, err := h.playlistUsecase.ListByOwner(ctx.Request.Context(), userID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, playlists, "playlists fetched successfully")
}

// ListContainingVideo answers which of the caller's playlists already hold
// the given video.
func (h *PlaylistHandler) ListContainingVideo(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	videoID, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	playlists, err := h.playlistUsecase.ListContainingVideo(ctx.Request.Context(), videoID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, playlists, "playlists fetched successfully")
}

func (h *PlaylistHandler) AddVideo(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	playlistID, valid := pathID(ctx, "playlistId")
	if !valid {
		return
	}
	videoID, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	playlist, err := h.playlistUsecase.AddVideo(ctx.Request.Context(), playlistID, videoID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, playlist, "video added to playlist successfully")
}

func (h *PlaylistHandler) RemoveVideo(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	playlistID, valid := pathID(ctx, "playlistId")
	if !valid {
		return
	}
	videoID, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	playlist, err := h.playlistUsecase.RemoveVideo(ctx.Request.Context(), playlistID, videoID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, playlist, "video removed from playlist successfully")
}

func (h *PlaylistHandler) Update(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	id, valid := pathID(ctx, "playlistId")
	if !valid {
		return
	}
	var req dto.UpdatePlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid update payload")
		return
	}
	playlist, err := h.playlistUsecase.Update(ctx.Request.Context(), id, req, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, playlist, "playlist updated successfully")
}

func (h *PlaylistHandler) Delete(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	id, valid := pathID(ctx, "playlistId")
	if !valid {
		return
	}
	if err := h.playlistUsecase.Delete(ctx.Request.Context(), id, callerID); err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, nil, "playlist deleted successfully")
}
