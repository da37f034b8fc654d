package http_user

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/mblais/connect4/core/internal/delivery/http/common"
	usecase_user "github.com/mblais/connect4/core/internal/usecase/user"
)

type Controller struct {
	usecase *usecase_user.Usecase
	logger  *slog.Logger
}

func New(
	usecase *usecase_user.Usecase,
) *Controller {
	return &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/login", c.login)
		users.POST("/logout", c.logout)
	}
}

// LoginResponseDTO carries the issued bearer token.
type LoginResponseDTO struct {
	Token string `json:"token"`
}

// Login authenticates with HTTP Basic credentials and returns a token
// @Summary Login
// @Tags Users
// @Produce json
// @Success 200 {object} LoginResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Missing Basic credentials"
// @Failure 401 {object} http_common.ErrorResponse "Invalid username or password"
// @Router /users/login [post]
func (c *Controller) login(ctx *gin.Context) {
	username, password, ok := ctx.Request.BasicAuth()
	if !ok {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "missing Basic authorization header",
		})
		return
	}

	token, err := c.usecase.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, usecase_user.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid username or password",
			})
			return
		}
		c.logger.Error("login failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, LoginResponseDTO{Token: token})
}

// Logout revokes the presented bearer token
// @Summary Logout
// @Tags Users
// @Produce json
// @Success 200 {object} http_common.ErrorResponse
// @Failure 401 {object} http_common.ErrorResponse "Invalid token"
// @Router /users/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "missing bearer token",
		})
		return
	}
	token := strings.TrimSpace(header[7:])

	if err := c.usecase.Logout(ctx, token); err != nil {
		if errors.Is(err, usecase_user.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "invalid token",
			})
			return
		}
		c.logger.Error("logout failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, http_common.ErrorResponse{Message: "logged out"})
}
