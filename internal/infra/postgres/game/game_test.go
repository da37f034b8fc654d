package infra_postgres_game

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/mblais/connect4/core/internal/model"
	usecase_game "github.com/mblais/connect4/core/internal/usecase/game"
	"github.com/stretchr/testify/assert"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type GameInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db     *sqlx.DB
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &resources{
		db:     sqlxDB,
		mock:   mock,
		driver: New(sqlxDB),
		ctx:    context.Background(),
	}
}

var gameColumns = []string{
	"id", "name", "host", "guest", "winner", "status", "board_state", "current_player",
}

const (
	lockQuery     = `SELECT pg_advisory_xact_lock(hashtext(lower($1)))`
	busyGameQuery = `SELECT id FROM games`
)

func (suite *GameInfraUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	t.Run("Should insert a waiting game under the host's lock", func(t provider.T) {
		r := initResources(t)
		game := model.NewGame("Friday night", "alice")

		r.mock.ExpectBegin()
		r.mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
			WithArgs("alice").
			WillReturnResult(sqlmock.NewResult(0, 0))
		r.mock.ExpectQuery(regexp.QuoteMeta(busyGameQuery)).
			WithArgs(string(model.StatusFinished), "alice").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		r.mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO games")).
			WithArgs("Friday night", "alice", sql.NullString{}, sql.NullString{},
				string(model.StatusWaitingForPlayers), model.EmptyBoardState(), "alice").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
		r.mock.ExpectCommit()

		id, err := r.driver.Create(r.ctx, game)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should refuse a host already seated in another game", func(t provider.T) {
		r := initResources(t)
		game := model.NewGame("Friday night", "alice")

		r.mock.ExpectBegin()
		r.mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
			WithArgs("alice").
			WillReturnResult(sqlmock.NewResult(0, 0))
		r.mock.ExpectQuery(regexp.QuoteMeta(busyGameQuery)).
			WithArgs(string(model.StatusFinished), "alice").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
		r.mock.ExpectRollback()

		_, err := r.driver.Create(r.ctx, game)

		assert.ErrorIs(t, err, usecase_game.ErrBusyUser)
		var busy *usecase_game.BusyUserError
		assert.True(t, errors.As(err, &busy))
		assert.Equal(t, int64(5), busy.GameID)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *GameInfraUnitSuite) TestSetInProgress(t provider.T) {
	t.Parallel()

	t.Run("Should seat the guest into a waiting game", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectBegin()
		r.mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
			WithArgs("bob").
			WillReturnResult(sqlmock.NewResult(0, 0))
		r.mock.ExpectQuery(regexp.QuoteMeta(busyGameQuery)).
			WithArgs(string(model.StatusFinished), "bob").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		r.mock.ExpectExec(regexp.QuoteMeta("UPDATE games")).
			WithArgs(string(model.StatusInProgress), "bob", int64(1), string(model.StatusWaitingForPlayers)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectCommit()

		err := r.driver.SetInProgress(r.ctx, 1, "bob")

		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report a game that is no longer waiting as not found", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectBegin()
		r.mock.ExpectExec(regexp.QuoteMeta(lockQuery)).
			WithArgs("bob").
			WillReturnResult(sqlmock.NewResult(0, 0))
		r.mock.ExpectQuery(regexp.QuoteMeta(busyGameQuery)).
			WithArgs(string(model.StatusFinished), "bob").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		r.mock.ExpectExec(regexp.QuoteMeta("UPDATE games")).
			WithArgs(string(model.StatusInProgress), "bob", int64(1), string(model.StatusWaitingForPlayers)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		r.mock.ExpectRollback()

		err := r.driver.SetInProgress(r.ctx, 1, "bob")

		assert.ErrorIs(t, err, usecase_game.ErrGameNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *GameInfraUnitSuite) TestGetOne(t provider.T) {
	t.Parallel()

	t.Run("Should map a waiting game with no guest", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, host, guest, winner, status, board_state, current_player")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(gameColumns).
				AddRow(int64(1), "Friday night", "alice", nil, nil,
					string(model.StatusWaitingForPlayers), model.EmptyBoardState(), "alice"))

		game, err := r.driver.GetOne(r.ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), game.ID)
		assert.Equal(t, "alice", game.Host)
		assert.Empty(t, game.Guest)
		assert.Equal(t, model.StatusWaitingForPlayers, game.Status)
		assert.Equal(t, model.EmptyBoardState(), game.Board.State)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report a missing game as not found", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, host, guest, winner, status, board_state, current_player")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(gameColumns))

		_, err := r.driver.GetOne(r.ctx, 99)

		assert.ErrorIs(t, err, usecase_game.ErrGameNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *GameInfraUnitSuite) TestDelete(t provider.T) {
	t.Parallel()

	t.Run("Should delete an existing game", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.driver.Delete(r.ctx, 1))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report a missing game as not found", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM games")).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, r.driver.Delete(r.ctx, 99), usecase_game.ErrGameNotFound)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *GameInfraUnitSuite) TestSetWaiting(t provider.T) {
	t.Parallel()

	r := initResources(t)

	r.mock.ExpectExec(regexp.QuoteMeta("UPDATE games")).
		WithArgs(string(model.StatusWaitingForPlayers), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.driver.SetWaiting(r.ctx, 1))
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (suite *GameInfraUnitSuite) TestSetFinished(t provider.T) {
	t.Parallel()

	t.Run("Should record the winner", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectExec(regexp.QuoteMeta("UPDATE games")).
			WithArgs(string(model.StatusFinished), sql.NullString{String: "alice", Valid: true}, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.driver.SetFinished(r.ctx, 1, "alice"))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should record a draw as a null winner", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectExec(regexp.QuoteMeta("UPDATE games")).
			WithArgs(string(model.StatusFinished), sql.NullString{}, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, r.driver.SetFinished(r.ctx, 1, model.NoWinner))
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *GameInfraUnitSuite) TestUpdateBoard(t provider.T) {
	t.Parallel()

	r := initResources(t)
	state := "0000000;0000000;0000000;0000000;0000000;0001000"

	r.mock.ExpectExec(regexp.QuoteMeta("UPDATE games")).
		WithArgs(state, "bob", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.driver.UpdateBoard(r.ctx, 1, state, "bob"))
	assert.NoError(t, r.mock.ExpectationsWereMet())
}

func (suite *GameInfraUnitSuite) TestFind(t provider.T) {
	t.Parallel()

	t.Run("Should select waiting games with pagination", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1")).
			WithArgs(string(model.StatusWaitingForPlayers), 10, 0).
			WillReturnRows(sqlmock.NewRows(gameColumns).
				AddRow(int64(1), "Friday night", "alice", nil, nil,
					string(model.StatusWaitingForPlayers), model.EmptyBoardState(), "alice").
				AddRow(int64(2), "Rematch", "bob", nil, nil,
					string(model.StatusWaitingForPlayers), model.EmptyBoardState(), "bob"))

		games, err := r.driver.Find(r.ctx, model.GameFilter{Category: model.FilterWaiting}, 10, 0)

		assert.NoError(t, err)
		assert.Len(t, games, 2)
		assert.Equal(t, "Friday night", games[0].Name)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should answer an empty filter without touching the database", func(t provider.T) {
		r := initResources(t)

		games, err := r.driver.Find(r.ctx, model.GameFilter{Category: model.FilterNone}, 10, 0)

		assert.NoError(t, err)
		assert.Empty(t, games)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (suite *GameInfraUnitSuite) TestFindBusyGame(t provider.T) {
	t.Parallel()

	t.Run("Should find the game occupying the user", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery(regexp.QuoteMeta(busyGameQuery)).
			WithArgs(string(model.StatusFinished), "Alice").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		id, busy, err := r.driver.FindBusyGame(r.ctx, "Alice")

		assert.NoError(t, err)
		assert.True(t, busy)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should report a free user without an error", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery(regexp.QuoteMeta(busyGameQuery)).
			WithArgs(string(model.StatusFinished), "alice").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		id, busy, err := r.driver.FindBusyGame(r.ctx, "alice")

		assert.NoError(t, err)
		assert.False(t, busy)
		assert.Zero(t, id)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestInfraSuite(t *testing.T) {
	suite.RunSuite(t, new(GameInfraUnitSuite))
}
