package http_game

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/mblais/connect4/core/internal/delivery/http/common"
	http_auth_middleware "github.com/mblais/connect4/core/internal/delivery/http/middleware/auth"
	ws_game "github.com/mblais/connect4/core/internal/delivery/ws/game"
	"github.com/mblais/connect4/core/internal/model"
	usecase_game "github.com/mblais/connect4/core/internal/usecase/game"
	usecase_gamelist "github.com/mblais/connect4/core/internal/usecase/gamelist"
)

type Controller struct {
	usecase *usecase_game.Usecase
	lists   *usecase_gamelist.Usecase
	auth    *http_auth_middleware.Middleware
	hub     *ws_game.Hub
	logger  *slog.Logger
}

func New(
	usecase *usecase_game.Usecase,
	lists *usecase_gamelist.Usecase,
	auth *http_auth_middleware.Middleware,
	hub *ws_game.Hub,
) *Controller {
	return &Controller{
		usecase: usecase,
		lists:   lists,
		auth:    auth,
		hub:     hub,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	games := router.Group("/games", c.auth.AuthRequired())
	{
		games.POST("", c.create)
		games.GET("/:game_id", c.detail)
		games.POST("/:game_id/join", c.join)
		games.POST("/:game_id/leave", c.leave)
		games.POST("/:game_id/moves", c.playMove)
	}
}

// CreateGameRequestDTO carries the name of the game to open.
type CreateGameRequestDTO struct {
	Name string `json:"name" binding:"required"`
}

// Create opens a new game hosted by the authenticated user
// @Summary Create game
// @Tags Games
// @Accept json
// @Produce json
// @Param request body CreateGameRequestDTO true "Game name"
// @Success 200 {object} http_common.GameIDResponse
// @Failure 400 {object} http_common.ErrorResponse "Invalid game name"
// @Failure 409 {object} http_common.BusyResponse "User busy in another game"
// @Router /games [post]
func (c *Controller) create(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	var req CreateGameRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	gameID, err := c.usecase.CreateGame(ctx, req.Name, username)
	if err != nil {
		c.respondError(ctx, "failed to create game", err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.GameIDResponse{
		Message: "Game created successfully.",
		GameID:  gameID,
	})
}

// Detail returns the full game state to one of its participants
// @Summary Game detail
// @Tags Games
// @Produce json
// @Param game_id path int true "Game id"
// @Success 200 {object} GameDetailDTO
// @Failure 404 {object} http_common.ErrorResponse "Game not found"
// @Router /games/{game_id} [get]
func (c *Controller) detail(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	gameID, err := gameIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid game id"})
		return
	}

	game, err := c.lists.GameDetail(ctx, gameID, username)
	if err != nil {
		c.respondError(ctx, "failed to get game detail", err)
		return
	}

	ctx.JSON(http.StatusOK, toGameDetailDTO(game))
}

// Join seats the authenticated user as guest of a waiting game
// @Summary Join game
// @Tags Games
// @Produce json
// @Param game_id path int true "Game id"
// @Success 200 {object} http_common.GameIDResponse
// @Failure 404 {object} http_common.ErrorResponse "Game not found or not joinable"
// @Failure 409 {object} http_common.BusyResponse "User busy in another game"
// @Router /games/{game_id}/join [post]
func (c *Controller) join(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	gameID, err := gameIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid game id"})
		return
	}

	if _, err := c.usecase.JoinGame(ctx, gameID, username); err != nil {
		c.respondError(ctx, "failed to join game", err)
		return
	}

	c.hub.NotifyPlayerJoined(gameID, username)

	ctx.JSON(http.StatusOK, http_common.GameIDResponse{
		Message: "Game joined successfully.",
		GameID:  gameID,
	})
}

// Leave removes the authenticated user from the game
// @Summary Leave game
// @Tags Games
// @Produce json
// @Param game_id path int true "Game id"
// @Success 200 {object} http_common.GameIDResponse
// @Failure 404 {object} http_common.ErrorResponse "Game not found"
// @Router /games/{game_id}/leave [post]
func (c *Controller) leave(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	gameID, err := gameIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid game id"})
		return
	}

	if err := c.usecase.LeaveGame(ctx, gameID, username); err != nil {
		c.respondError(ctx, "failed to leave game", err)
		return
	}

	c.hub.NotifyPlayerLeft(gameID, username)

	ctx.JSON(http.StatusOK, http_common.GameIDResponse{
		Message: "Game left successfully.",
		GameID:  gameID,
	})
}

// PlayMoveRequestDTO carries the column to drop a token into.
type PlayMoveRequestDTO struct {
	Column *int `json:"column" binding:"required"`
}

// PlayMove drops the authenticated user's token into a column
// @Summary Play move
// @Tags Games
// @Accept json
// @Produce json
// @Param game_id path int true "Game id"
// @Param request body PlayMoveRequestDTO true "Column"
// @Success 200 {object} http_common.GameIDResponse
// @Failure 400 {object} http_common.ErrorResponse "Invalid move"
// @Failure 404 {object} http_common.ErrorResponse "Game not found"
// @Failure 409 {object} http_common.ErrorResponse "Not your turn"
// @Router /games/{game_id}/moves [post]
func (c *Controller) playMove(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	gameID, err := gameIDParam(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid game id"})
		return
	}

	var req PlayMoveRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	if _, err := c.usecase.PlayMove(ctx, gameID, username, *req.Column); err != nil {
		c.respondError(ctx, "failed to play move", err)
		return
	}

	game, err := c.lists.GameDetail(ctx, gameID, username)
	if err == nil {
		c.hub.NotifyMovePlayed(gameID, game.Board.CurrentPlayer)
		if game.Status == model.StatusFinished {
			c.hub.NotifyGameFinished(gameID, game.Winner)
		}
	}

	ctx.JSON(http.StatusOK, http_common.GameIDResponse{
		Message: "Move played successfully.",
		GameID:  gameID,
	})
}

func (c *Controller) respondError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))

	var busyErr *usecase_game.BusyUserError
	var turnErr *usecase_game.NotYourTurnError

	switch {
	case errors.As(err, &busyErr):
		ctx.JSON(http.StatusConflict, http_common.BusyResponse{
			Message: busyErr.Error(),
			GameID:  busyErr.GameID,
		})
	case errors.As(err, &turnErr):
		ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
			Message: turnErr.Reason,
		})
	case errors.Is(err, usecase_game.ErrGameNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "game not found",
		})
	case errors.Is(err, usecase_game.ErrInvalidMove):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid move",
		})
	case errors.Is(err, usecase_game.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid game name",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	}
}

func gameIDParam(ctx *gin.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("game_id"), 10, 64)
}
