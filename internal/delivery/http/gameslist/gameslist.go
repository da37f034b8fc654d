package http_gameslist

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/mblais/connect4/core/internal/delivery/http/common"
	http_auth_middleware "github.com/mblais/connect4/core/internal/delivery/http/middleware/auth"
	usecase_game "github.com/mblais/connect4/core/internal/usecase/game"
	usecase_gamelist "github.com/mblais/connect4/core/internal/usecase/gamelist"
)

type Controller struct {
	usecase *usecase_gamelist.Usecase
	auth    *http_auth_middleware.Middleware
	logger  *slog.Logger
}

func New(
	usecase *usecase_gamelist.Usecase,
	auth *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		usecase: usecase,
		auth:    auth,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	lists := router.Group("/gameslist", c.auth.AuthRequired())
	{
		lists.GET("", c.list)
		lists.GET("/waiting", c.waiting)
		lists.GET("/history", c.history)
	}
}

// ListedGameDTO is one entry of the category-filtered list.
type ListedGameDTO struct {
	GameID int64  `json:"game_id"`
	Name   string `json:"name"`
	Host   string `json:"host"`
	Guest  string `json:"guest,omitempty"`
	Winner string `json:"winner,omitempty"`
	Status string `json:"status"`
}

// List selects games by a category string
// @Summary List games by category
// @Tags GamesList
// @Produce json
// @Param category query string false "waiting | finished-<user> | playing-<user>; empty selects all"
// @Param limit query int false "Page size (default 10)"
// @Param offset query int false "Page offset"
// @Success 200 {array} ListedGameDTO
// @Failure 409 {object} http_common.BusyResponse "User busy in another game"
// @Router /gameslist [get]
func (c *Controller) list(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	limit, offset := pagination(ctx)

	games, err := c.usecase.Games(ctx, username, ctx.Query("category"), limit, offset)
	if err != nil {
		c.respondError(ctx, "failed to list games", err)
		return
	}

	out := make([]ListedGameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, ListedGameDTO{
			GameID: g.ID,
			Name:   g.Name,
			Host:   g.Host,
			Guest:  g.Guest,
			Winner: g.Winner,
			Status: string(g.Status),
		})
	}
	ctx.JSON(http.StatusOK, out)
}

// WaitingGameDTO is one joinable game in the lobby list.
type WaitingGameDTO struct {
	GameID int64  `json:"game_id"`
	Name   string `json:"name"`
	Host   string `json:"host"`
}

// Waiting lists joinable games
// @Summary Waiting games
// @Tags GamesList
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param offset query int false "Page offset"
// @Success 200 {array} WaitingGameDTO
// @Failure 409 {object} http_common.BusyResponse "User busy in another game"
// @Router /gameslist/waiting [get]
func (c *Controller) waiting(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	limit, offset := pagination(ctx)

	games, err := c.usecase.WaitingGames(ctx, username, limit, offset)
	if err != nil {
		c.respondError(ctx, "failed to list waiting games", err)
		return
	}

	out := make([]WaitingGameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, WaitingGameDTO{GameID: g.GameID, Name: g.Name, Host: g.Host})
	}
	ctx.JSON(http.StatusOK, out)
}

// FinishedGameDTO is one entry of a user's game history.
type FinishedGameDTO struct {
	GameID int64  `json:"game_id"`
	Name   string `json:"name"`
	Host   string `json:"host"`
	Guest  string `json:"guest"`
	Winner string `json:"winner"`
}

// History lists the user's finished games
// @Summary Finished games
// @Tags GamesList
// @Produce json
// @Param limit query int false "Page size (default 10)"
// @Param offset query int false "Page offset"
// @Success 200 {array} FinishedGameDTO
// @Failure 409 {object} http_common.BusyResponse "User busy in another game"
// @Router /gameslist/history [get]
func (c *Controller) history(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	limit, offset := pagination(ctx)

	games, err := c.usecase.FinishedGames(ctx, username, limit, offset)
	if err != nil {
		c.respondError(ctx, "failed to list finished games", err)
		return
	}

	out := make([]FinishedGameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, FinishedGameDTO{
			GameID: g.GameID,
			Name:   g.Name,
			Host:   g.Host,
			Guest:  g.Guest,
			Winner: g.Winner,
		})
	}
	ctx.JSON(http.StatusOK, out)
}

func (c *Controller) respondError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))

	var busyErr *usecase_game.BusyUserError
	if errors.As(err, &busyErr) {
		ctx.JSON(http.StatusConflict, http_common.BusyResponse{
			Message: busyErr.Error(),
			GameID:  busyErr.GameID,
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
		Message: "internal error",
	})
}

func pagination(ctx *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	offset, _ = strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	return limit, offset
}
