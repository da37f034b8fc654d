package usecase_game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mblais/connect4/core/internal/model"
)

var (
	ErrBusyUser     = errors.New("user is busy in another game")
	ErrGameNotFound = errors.New("game not found")
	ErrNotYourTurn  = errors.New("not your turn")
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// BusyUserError carries the id of the game already occupying the user so
// the caller can redirect to it. Matches ErrBusyUser under errors.Is.
type BusyUserError struct {
	GameID int64
}

func (e *BusyUserError) Error() string {
	return fmt.Sprintf("you are busy in game %d", e.GameID)
}

func (e *BusyUserError) Is(target error) bool {
	return target == ErrBusyUser
}

// NotYourTurnError matches ErrNotYourTurn under errors.Is.
type NotYourTurnError struct {
	Reason string
}

func (e *NotYourTurnError) Error() string {
	return e.Reason
}

func (e *NotYourTurnError) Is(target error) bool {
	return target == ErrNotYourTurn
}

//go:generate mockery --name=GameRepository --output=./mocks --filename=game_repository.go
type GameRepository interface {
	Create(ctx context.Context, game model.Game) (int64, error)
	Delete(ctx context.Context, id int64) error
	SetWaiting(ctx context.Context, id int64) error
	SetInProgress(ctx context.Context, id int64, guest string) error
	SetFinished(ctx context.Context, id int64, winner string) error
	UpdateBoard(ctx context.Context, id int64, state string, nextPlayer string) error
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

//go:generate mockery --name=BoardService --output=./mocks --filename=board_service.go
type BoardService interface {
	ValidateMove(board model.Board, column int) bool
	ApplyMove(board model.Board, color byte, column int) string
	CheckWin(board model.Board, color byte) bool
	CheckDraw(board model.Board) bool
}

// Usecase orchestrates the game session commands. Commands touching one
// game are serialized in-process per game id; the repository backs that up
// with a per-username transactional guard for the busy-check races.
type Usecase struct {
	games        GameRepository
	queries      GameQueryRepository
	playerStatus PlayerStatus
	board        BoardService

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func New(
	games GameRepository,
	queries GameQueryRepository,
	playerStatus PlayerStatus,
	board BoardService,
) *Usecase {
	return &Usecase{
		games:        games,
		queries:      queries,
		playerStatus: playerStatus,
		board:        board,
		locks:        make(map[int64]*sync.Mutex),
	}
}

func (u *Usecase) lockGame(id int64) func() {
	u.mu.Lock()
	l, ok := u.locks[id]
	if !ok {
		l = &sync.Mutex{}
		u.locks[id] = l
	}
	u.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (u *Usecase) forgetGame(id int64) {
	u.mu.Lock()
	delete(u.locks, id)
	u.mu.Unlock()
}

// CreateGame opens a new waiting game hosted by hostName and returns its id.
func (u *Usecase) CreateGame(ctx context.Context, gameName, hostName string) (int64, error) {
	busyID, busy, err := u.playerStatus.CheckIfUserIsBusy(ctx, hostName)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	if busy {
		return 0, &BusyUserError{GameID: busyID}
	}

	if len(gameName) < 3 || len(gameName) > 50 {
		return 0, ErrInvalidInput
	}

	id, err := u.games.Create(ctx, model.NewGame(gameName, hostName))
	if err != nil {
		if errors.Is(err, ErrBusyUser) {
			return 0, err
		}
		return 0, errors.Join(ErrInternal, err)
	}
	return id, nil
}

// JoinGame seats userName as guest of a waiting game and starts it.
// A missing game and a non-joinable game report the same failure.
func (u *Usecase) JoinGame(ctx context.Context, gameID int64, userName string) (int64, error) {
	busyID, busy, err := u.playerStatus.CheckIfUserIsBusy(ctx, userName)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	if busy {
		return 0, &BusyUserError{GameID: busyID}
	}

	unlock := u.lockGame(gameID)
	defer unlock()

	game, err := u.queries.GetOne(ctx, gameID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return 0, ErrGameNotFound
		}
		return 0, errors.Join(ErrInternal, err)
	}
	if game.Status != model.StatusWaitingForPlayers {
		return 0, ErrGameNotFound
	}

	if err := u.games.SetInProgress(ctx, gameID, userName); err != nil {
		if errors.Is(err, ErrGameNotFound) || errors.Is(err, ErrBusyUser) {
			return 0, err
		}
		return 0, errors.Join(ErrInternal, err)
	}
	return gameID, nil
}

// LeaveGame removes userName from the game. A host abandoning a waiting
// game deletes it; leaving an in-progress game forfeits it to the other
// participant; leaving a finished game is a no-op.
func (u *Usecase) LeaveGame(ctx context.Context, gameID int64, userName string) error {
	unlock := u.lockGame(gameID)
	defer unlock()

	game, err := u.queries.GetOne(ctx, gameID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return ErrGameNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	switch {
	case game.Status == model.StatusWaitingForPlayers && game.Host == userName:
		if err := u.games.Delete(ctx, gameID); err != nil {
			return errors.Join(ErrInternal, err)
		}
		u.forgetGame(gameID)
		return nil

	case game.Status == model.StatusInProgress && game.IsParticipant(userName):
		if err := u.games.SetFinished(ctx, gameID, game.Opponent(userName)); err != nil {
			return errors.Join(ErrInternal, err)
		}
		u.forgetGame(gameID)
		return nil

	case game.Status == model.StatusFinished:
		return nil
	}

	// Non-participants and non-host leavers of waiting games get the
	// same answer as a missing game.
	return ErrGameNotFound
}

// PlayMove drops userName's token into the column, hands the turn to the
// opponent, and finishes the game on a win or a full board. The win check
// runs first and short-circuits the draw check.
func (u *Usecase) PlayMove(ctx context.Context, gameID int64, userName string, column int) (int64, error) {
	unlock := u.lockGame(gameID)
	defer unlock()

	game, err := u.queries.GetOne(ctx, gameID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return 0, ErrGameNotFound
		}
		return 0, errors.Join(ErrInternal, err)
	}

	if !game.IsParticipant(userName) {
		return 0, ErrGameNotFound
	}
	if game.Status != model.StatusInProgress {
		return 0, &NotYourTurnError{Reason: "Waiting for the other player to join the game."}
	}
	if game.Board.CurrentPlayer != userName {
		return 0, &NotYourTurnError{Reason: "It is not your turn to play."}
	}
	if !u.board.ValidateMove(game.Board, column) {
		return 0, ErrInvalidMove
	}

	color := model.GuestColor
	if game.Host == userName {
		color = model.HostColor
	}
	game.Board.State = u.board.ApplyMove(game.Board, color, column)

	nextPlayer := game.Opponent(userName)
	if err := u.games.UpdateBoard(ctx, gameID, game.Board.State, nextPlayer); err != nil {
		return 0, errors.Join(ErrInternal, err)
	}

	switch {
	case u.board.CheckWin(game.Board, color):
		if err := u.games.SetFinished(ctx, gameID, userName); err != nil {
			return 0, errors.Join(ErrInternal, err)
		}
		u.forgetGame(gameID)
	case u.board.CheckDraw(game.Board):
		if err := u.games.SetFinished(ctx, gameID, model.NoWinner); err != nil {
			return 0, errors.Join(ErrInternal, err)
		}
		u.forgetGame(gameID)
	}

	return gameID, nil
}
