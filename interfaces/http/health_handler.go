package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/dto"
)

type IHealthHandler interface {
	Healthz(ctx *gin.Context)
}

type HealthHandler struct {
	client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) IHealthHandler {
	return &HealthHandler{client: client}
}

func (h *HealthHandler) Healthz(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.client.Ping(pingCtx, nil); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewRes(http.StatusServiceUnavailable, nil, "database unreachable"))
		return
	}
	ok(ctx, gin.H{"status": "ok"}, "healthy")
}
