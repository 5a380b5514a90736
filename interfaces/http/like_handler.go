package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

type ILikeHandler interface {
	ToggleVideo(ctx *gin.Context)
	ToggleComment(ctx *gin.Context)
	ToggleTweet(ctx *gin.Context)
	VideoStatus(ctx *gin.Context)
	ListLikedVideos(ctx *gin.Context)
}

type LikeHandler struct {
	likeUsecase usecase.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecase.ILikeUsecase) ILikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

func (h *LikeHandler) ToggleVideo(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	videoID, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	liked, err := h.likeUsecase.ToggleVideoLike(ctx.Request.Context(), videoID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, gin.H{"liked": liked}, "like toggled successfully")
}

func (h *LikeHandler) ToggleComment(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	commentID, valid := pathID(ctx, "commentId")
	if !valid {
		return
	}
	liked, err := h.likeUsecase.ToggleCommentLike(ctx.Request.Context(), commentID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, gin.H{"liked": liked}, "like toggled successfully")
}

func (h *LikeHandler) ToggleTweet(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	tweetID, valid := pathID(ctx, "tweetId")
	if !valid {
		return
	}
	liked, err := h.likeUsecase.ToggleTweetLike(ctx.Request.Context(), tweetID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, gin.H{"liked": liked}, "like toggled successfully")
}

// VideoStatus reports whether the caller has liked the video.
func (h *LikeHandler) VideoStatus(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	videoID, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	liked, err := h.likeUsecase.IsVideoLiked(ctx.Request.Context(), videoID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, gin.H{"liked": liked}, "like status fetched successfully")
}

func (h *LikeHandler) ListLikedVideos(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	var q dto.PageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		badRequest(ctx, "invalid query parameters")
		return
	}
	q.Normalize()
	page, err := h.likeUsecase.ListLikedVideos(ctx.Request.Context(), callerID, q.Page, q.Limit)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, page, "liked videos fetched successfully")
}
