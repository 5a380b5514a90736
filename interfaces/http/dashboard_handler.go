package http

import (
	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/usecase"
)

type IDashboardHandler interface {
	Stats(ctx *gin.Context)
	Videos(ctx *gin.Context)
}

type DashboardHandler struct {
	dashboardUsecase usecase.IDashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.IDashboardUsecase) IDashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Stats reports the caller's channel aggregates.
func (h *DashboardHandler) Stats(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	stats, err := h.dashboardUsecase.GetChannelStats(ctx.Request.Context(), callerID)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, stats, "channel stats fetched successfully")
}

// Videos lists every video the caller owns, drafts included.
func (h *DashboardHandler) Videos(ctx *gin.Context) {
	callerID, authorized := mustCaller(ctx)
	if !authorized {
		return
	}
	var q dto.VideoListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		badRequest(ctx, "invalid query parameters")
		return
	}
	page, err := h.dashboardUsecase.GetChannelVideos(ctx.Request.Context(), callerID, q)
	if err != nil {
		fail(ctx, err)
		return
	}
	ok(ctx, page, "channel videos fetched successfully")
}
