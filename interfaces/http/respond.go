package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/interfaces/middleware"
)

func ok(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusOK, dto.NewRes(http.StatusOK, data, message))
}

func created(ctx *gin.Context, data interface{}, message string) {
	ctx.JSON(http.StatusCreated, dto.NewRes(http.StatusCreated, data, message))
}

func fail(ctx *gin.Context, err error) {
	status := model.StatusCode(err)
	message := err.Error()
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	ctx.JSON(status, dto.NewRes(status, nil, message))
}

func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.NewRes(http.StatusBadRequest, nil, message))
}

// caller returns the authenticated user's id, or nil behind AuthOptional.
func caller(ctx *gin.Context) *bson.ObjectID {
	hex := ctx.GetString(middleware.CallerKey)
	if hex == "" {
		return nil
	}
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return nil
	}
	return &id
}

// mustCaller returns the authenticated user's id. Routes using it sit behind
// the required Auth middleware, so a missing id is a wiring bug surfaced as 401.
func mustCaller(ctx *gin.Context) (bson.ObjectID, bool) {
	id := caller(ctx)
	if id == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewRes(http.StatusUnauthorized, nil, "Unauthorized"))
		return bson.ObjectID{}, false
	}
	return *id, true
}

// pathID parses an ObjectID path parameter, answering 400 on garbage.
func pathID(ctx *gin.Context, name string) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "invalid "+name)
		return bson.ObjectID{}, false
	}
	return id, true
}
