package http_auth_middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/mblais/connect4/core/internal/delivery/http/common"
)

// UsernameKey is where the middleware stores the authenticated username
// in the gin context.
const UsernameKey = "username"

type TokenValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

type Middleware struct {
	validator TokenValidator
	logger    *slog.Logger
}

func New(
	validator TokenValidator,
) *Middleware {
	return &Middleware{
		validator: validator,
		logger:    slog.Default(),
	}
}

func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "missing bearer token",
			})
			ctx.Abort()
			return
		}

		username, err := m.validator.Validate(ctx, token)
		if err != nil {
			m.logger.Warn("rejected token", slog.String("error", err.Error()))
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			ctx.Abort()
			return
		}

		ctx.Set(UsernameKey, username)
		ctx.Next()
	}
}

// Username reads the authenticated username the middleware stored.
func Username(ctx *gin.Context) (string, bool) {
	v, ok := ctx.Get(UsernameKey)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	return username, ok && username != ""
}

func bearerToken(ctx *gin.Context) string {
	h := ctx.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
