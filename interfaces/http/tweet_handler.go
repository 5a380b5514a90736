package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

type ITweetHandler interface {
	Create(ctx *gin.Context)
	ListByUser(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type TweetHandler struct {
	tweetUsecase usecase.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecase.ITweetUsecase) ITweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

func (h *TweetHandler) Create(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	var req dto.TweetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "content is required")
		return
	}
	tweet, err := h.tweetUsecase.Create(ctx.Request.Context(), req.Content, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	created(ctx, tweet, "tweet created successfully")
}

func (h *TweetHandler) ListByUser(ctx *gin.Context) {
	userID, valid := pathID(ctx, "userId")
	if !valid {
		return
	}
	tweets, err := h.tweetUsecase.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, tweets, "tweets fetched successfully")
}

func (h *TweetHandler) Update(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	tweetID, valid := pathID(ctx, "tweetId")
	if !valid {
		return
	}
	var req dto.TweetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "content is required")
		return
	}
	tweet, err := h.tweetUsecase.Update(ctx.Request.Context(), tweetID, req.Content, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, tweet, "tweet updated successfully")
}

func (h *TweetHandler) Delete(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	tweetID, valid := pathID(ctx, "tweetId")
	if !valid {
		return
	}
	if err := h.tweetUsecase.Delete(ctx.Request.Context(), tweetID, callerID); err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, nil, "tweet deleted successfully")
}
