package ws_game

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/mblais/connect4/core/internal/delivery/http/common"
	http_auth_middleware "github.com/mblais/connect4/core/internal/delivery/http/middleware/auth"
	usecase_game "github.com/mblais/connect4/core/internal/usecase/game"
	usecase_gamelist "github.com/mblais/connect4/core/internal/usecase/gamelist"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Controller struct {
	hub    *Hub
	lists  *usecase_gamelist.Usecase
	auth   *http_auth_middleware.Middleware
	logger *slog.Logger
}

func NewController(
	hub *Hub,
	lists *usecase_gamelist.Usecase,
	auth *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		hub:    hub,
		lists:  lists,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/games/:game_id/events", c.auth.AuthRequired(), c.subscribe)
}

// Subscribe streams game events to one of the game's participants.
// Non-participants get the same answer as for a missing game.
func (c *Controller) subscribe(ctx *gin.Context) {
	username, ok := http_auth_middleware.Username(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthorized"})
		return
	}

	gameID, err := strconv.ParseInt(ctx.Param("game_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid game id",
		})
		return
	}

	if _, err := c.lists.GameDetail(ctx, gameID, username); err != nil {
		if errors.Is(err, usecase_game.ErrGameNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "game not found",
			})
			return
		}
		c.logger.Error("failed to check game access", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &Client{
		Hub:    c.hub,
		Conn:   conn,
		Send:   make(chan []byte, 16),
		GameID: gameID,
	}

	c.hub.RegisterClient(client)
	go c.hub.StartClientWriting(client)
	go c.hub.StartClientReading(client)
}
