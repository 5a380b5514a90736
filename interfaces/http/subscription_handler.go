package http

import (
	"github.com/gin-gonic/gin"

	"videotube/usecase"
)

type ISubscriptionHandler interface {
	Toggle(ctx *gin.Context)
	ListChannelSubscribers(ctx *gin.Context)
	ListSubscribedChannels(ctx *gin.Context)
}

type SubscriptionHandler struct {
	subscriptionUsecase usecase.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecase.ISubscriptionUsecase) ISubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

func (h *SubscriptionHandler) Toggle(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	channelID, valid := pathID(ctx, "channelId")
	if !valid {
		return
	}
	subscribed, err := h.subscriptionUsecase.Toggle(ctx.Request.Context(), channelID, callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, gin.H{"subscribed": subscribed}, "subscription toggled successfully")
}

func (h *SubscriptionHandler) ListChannelSubscribers(ctx *gin.Context) {
	channelID, valid := pathID(ctx, "channelId")
	if !valid {
		return
	}
	subscribers, err := h.subscriptionUsecase.ListChannelSubscribers(ctx.Request.Context(), channelID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, subscribers, "subscribers fetched successfully")
}

func (h *SubscriptionHandler) ListSubscribedChannels(ctx *gin.Context) {
	subscriberID, valid := pathID(ctx, "subscriberId")
	if !valid {
		return
	}
	channels, err := h.subscriptionUsecase.ListSubscribedChannels(ctx.Request.Context(), subscriberID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, channels, "subscribed channels fetched successfully")
}
