package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

type ICommentHandler interface {
	ListByVideo(ctx *gin.Context)
	Add(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) ICommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) ListByVideo(ctx *gin.Context) {
	videoID, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	var q dto.PageQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		badRequest(ctx, "invalid query parameters")
		return
	}
	q.Normalize()
	page, err := h.commentUsecase.ListByVideo(ctx.Request.Context(), videoID, caller(ctx), q.Page, q.Limit)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, page, "comments fetched successfully")
}

func (h *CommentHandler) Add(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	videoID, valid := pathID(ctx, "videoId")
	if !valid {
		return
	}
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "content is required")
		return
	}
	comment, err := h.commentUsecase.Add(ctx.Request.Context(), videoID, req.Content, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	created(ctx, comment, "comment added successfully")
}

func (h *CommentHandler) Update(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	commentID, valid := pathID(ctx, "commentId")
	if !valid {
		return
	}
	var req dto.CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "content is required")
		return
	}
	comment, err := h.commentUsecase.Update(ctx.Request.Context(), commentID, req.Content, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, comment, "comment updated successfully")
}

func (h *CommentHandler) Delete(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	commentID, valid := pathID(ctx, "commentId")
	if !valid {
		return
	}
	if err := h.commentUsecase.Delete(ctx.Request.Context(), commentID, callerID); err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, nil, "comment deleted successfully")
}
