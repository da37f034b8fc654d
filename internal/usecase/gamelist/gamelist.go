package usecase_gamelist

import (
	"context"
	"errors"

	"github.com/mblais/connect4/core/internal/model"
	usecase_game "github.com/mblais/connect4/core/internal/usecase/game"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

// WaitingGame is the read model for the lobby list.
type WaitingGame struct {
	GameID int64
	Name   string
	Host   string
}

// FinishedGame is the read model for a user's game history.
type FinishedGame struct {
	GameID int64
	Name   string
	Host   string
	Guest  string
	Winner string
}

//go:generate mockery --name=GameQueryRepository --output=./mocks --filename=game_query_repository.go
type GameQueryRepository interface {
	GetOne(ctx context.Context, id int64) (model.Game, error)
	Find(ctx context.Context, filter model.GameFilter, limit, offset int) ([]model.Game, error)
}

//go:generate mockery --name=PlayerStatus --output=./mocks --filename=player_status.go
type PlayerStatus interface {
	CheckIfUserIsBusy(ctx context.Context, username string) (int64, bool, error)
}

// Usecase serves the read side: list views and the participant-only game
// detail. List views are gated by the busy check so a user stuck in a game
// cannot browse for a new one.
type Usecase struct {
	queries      GameQueryRepository
	playerStatus PlayerStatus
}

func New(queries GameQueryRepository, playerStatus PlayerStatus) *Usecase {
	return &Usecase{
		queries:      queries,
		playerStatus: playerStatus,
	}
}

// WaitingGames lists joinable games for a free user.
func (u *Usecase) WaitingGames(ctx context.Context, userName string, limit, offset int) ([]WaitingGame, error) {
	if err := u.ensureFree(ctx, userName); err != nil {
		return nil, err
	}

	games, err := u.find(ctx, model.GameFilter{Category: model.FilterWaiting}, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]WaitingGame, 0, len(games))
	for _, g := range games {
		out = append(out, WaitingGame{GameID: g.ID, Name: g.Name, Host: g.Host})
	}
	return out, nil
}

// FinishedGames lists the user's finished games.
func (u *Usecase) FinishedGames(ctx context.Context, userName string, limit, offset int) ([]FinishedGame, error) {
	if err := u.ensureFree(ctx, userName); err != nil {
		return nil, err
	}

	filter := model.GameFilter{Category: model.FilterFinished, Username: userName}
	games, err := u.find(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]FinishedGame, 0, len(games))
	for _, g := range games {
		out = append(out, FinishedGame{
			GameID: g.ID,
			Name:   g.Name,
			Host:   g.Host,
			Guest:  g.Guest,
			Winner: g.Winner,
		})
	}
	return out, nil
}

// Games lists games selected by a legacy category string: "waiting",
// "finished-<user>", "playing-<user>". An empty category selects
// everything, an unknown one selects nothing.
func (u *Usecase) Games(ctx context.Context, userName, category string, limit, offset int) ([]model.Game, error) {
	if err := u.ensureFree(ctx, userName); err != nil {
		return nil, err
	}
	return u.find(ctx, model.ParseGameFilter(category), limit, offset)
}

// GameDetail returns the full game for one of its participants.
// Non-participants cannot tell the game exists.
func (u *Usecase) GameDetail(ctx context.Context, gameID int64, userName string) (model.Game, error) {
	game, err := u.queries.GetOne(ctx, gameID)
	if err != nil {
		if errors.Is(err, usecase_game.ErrGameNotFound) {
			return model.Game{}, usecase_game.ErrGameNotFound
		}
		return model.Game{}, errors.Join(usecase_game.ErrInternal, err)
	}

	if !game.IsParticipant(userName) {
		return model.Game{}, usecase_game.ErrGameNotFound
	}
	return game, nil
}

func (u *Usecase) ensureFree(ctx context.Context, userName string) error {
	busyID, busy, err := u.playerStatus.CheckIfUserIsBusy(ctx, userName)
	if err != nil {
		return errors.Join(usecase_game.ErrInternal, err)
	}
	if busy {
		return &usecase_game.BusyUserError{GameID: busyID}
	}
	return nil
}

func (u *Usecase) find(ctx context.Context, filter model.GameFilter, limit, offset int) ([]model.Game, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = defaultOffset
	}

	games, err := u.queries.Find(ctx, filter, limit, offset)
	if err != nil {
		return nil, errors.Join(usecase_game.ErrInternal, err)
	}
	return games, nil
}
