package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/infrastructure/configuration"
)

// CallerKey is the gin context key under which Auth and AuthOptional store
// the authenticated user's id (hex string).
const CallerKey = "user_id"

// Auth rejects requests without a valid Bearer token.
func Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := parseBearer(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewRes(http.StatusUnauthorized, nil, err.Error()))
			return
		}
		ctx.Set(CallerKey, claims.Issuer)
		ctx.Next()
	}
}

// AuthOptional resolves the caller when a valid token is present but lets
// anonymous requests through. Handlers behind it must treat a missing
// CallerKey as an unauthenticated caller.
func AuthOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Header.Get("Authorization") == "" {
			ctx.Next()
			return
		}
		claims, err := parseBearer(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewRes(http.StatusUnauthorized, nil, err.Error()))
			return
		}
		ctx.Set(CallerKey, claims.Issuer)
		ctx.Next()
	}
}

func parseBearer(ctx *gin.Context) (*model.UserClaims, error) {
	authorization := ctx.Request.Header.Get("Authorization")
	if authorization == "" {
		return nil, errors.New("missing authorization header")
	}
	parts := strings.Split(authorization, "Bearer ")
	if len(parts) != 2 || parts[1] == "" {
		return nil, errors.New("malformed authorization header")
	}

	var claims model.UserClaims
	token, err := jwt.ParseWithClaims(
		parts[1],
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(configuration.C.App.SecretKey), nil
		},
	)
	if err != nil || !token.Valid {
		return nil, describeTokenError(err)
	}
	return &claims, nil
}

func describeTokenError(err error) error {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return errors.New("that's not even a token")
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return errors.New("token is expired or not active yet")
		}
		return fmt.Errorf("couldn't handle this token: %v", err)
	}
	return errors.New("invalid token")
}
