package app

import (
	"log/slog"

	"github.com/mblais/connect4/core/internal/config"
	http_game "github.com/mblais/connect4/core/internal/delivery/http/game"
	http_gameslist "github.com/mblais/connect4/core/internal/delivery/http/gameslist"
	http_init "github.com/mblais/connect4/core/internal/delivery/http/init"
	http_access_middleware "github.com/mblais/connect4/core/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/mblais/connect4/core/internal/delivery/http/middleware/auth"
	http_user "github.com/mblais/connect4/core/internal/delivery/http/user"
	ws_game "github.com/mblais/connect4/core/internal/delivery/ws/game"
	infra_pg_init "github.com/mblais/connect4/core/internal/infra/postgres/init"
	infra_postgres_game "github.com/mblais/connect4/core/internal/infra/postgres/game"
	infra_postgres_user "github.com/mblais/connect4/core/internal/infra/postgres/user"
	infra_token_blacklist "github.com/mblais/connect4/core/internal/infra/redis/blacklist"
	infra_redis_init "github.com/mblais/connect4/core/internal/infra/redis/init"
	service_jwt_auth "github.com/mblais/connect4/core/internal/service/auth/jwt"
	service_board "github.com/mblais/connect4/core/internal/service/board"
	service_playerstatus "github.com/mblais/connect4/core/internal/service/playerstatus"
	usecase_game "github.com/mblais/connect4/core/internal/usecase/game"
	usecase_gamelist "github.com/mblais/connect4/core/internal/usecase/gamelist"
	usecase_user "github.com/mblais/connect4/core/internal/usecase/user"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	gameRepository := infra_postgres_game.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)
	blacklist := infra_token_blacklist.New(redisConn, "token_blacklist")

	boardService := service_board.New()
	playerStatus := service_playerstatus.New(gameRepository)
	tokenService := service_jwt_auth.New(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	gameUC := usecase_game.New(gameRepository, gameRepository, playerStatus, boardService)
	gamelistUC := usecase_gamelist.New(gameRepository, playerStatus)
	userUC := usecase_user.New(userRepository, tokenService, blacklist)

	authMiddleware := http_auth_middleware.New(userUC)
	hub := ws_game.New(slog.Default())

	controllerPool := http_init.NewControllerPool(
		http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode),
	)
	controllerPool.Add(http_user.New(userUC))
	controllerPool.Add(http_game.New(gameUC, gamelistUC, authMiddleware, hub))
	controllerPool.Add(http_gameslist.New(gamelistUC, authMiddleware))
	controllerPool.Add(ws_game.NewController(hub, gamelistUC, authMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
