package infra_postgres_game

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mblais/connect4/core/internal/model"
	usecase_game "github.com/mblais/connect4/core/internal/usecase/game"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

// Create inserts a new waiting game. The busy re-check runs inside the
// transaction under an advisory lock keyed by the host's username, so two
// concurrent creates for the same idle user cannot both pass.
func (d *Driver) Create(ctx context.Context, game model.Game) (int64, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if err := lockUsername(ctx, tx, game.Host); err != nil {
		return 0, err
	}
	if err := ensureFree(ctx, tx, game.Host); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO games (name, host, guest, winner, status, board_state, current_player)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err = tx.QueryRowContext(ctx, query,
		game.Name,
		game.Host,
		nullable(game.Guest),
		nullable(game.Winner),
		string(game.Status),
		game.Board.State,
		game.Board.CurrentPlayer,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (d *Driver) Delete(ctx context.Context, id int64) error {
	query := `
        DELETE FROM games
        WHERE id = $1
    `

	result, err := d.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_game.ErrGameNotFound
	}
	return nil
}

// SetWaiting reopens the game for a guest: status back to waiting, seat
// cleared.
func (d *Driver) SetWaiting(ctx context.Context, id int64) error {
	query := `
        UPDATE games
        SET status = $1, guest = NULL
        WHERE id = $2
    `

	result, err := d.db.ExecContext(ctx, query, string(model.StatusWaitingForPlayers), id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_game.ErrGameNotFound
	}
	return nil
}

// SetInProgress seats the guest and starts the game. Guarded by both the
// guest's advisory lock (busy backstop) and the waiting-status predicate:
// a game that vanished or already started reports not-found.
func (d *Driver) SetInProgress(ctx context.Context, id int64, guest string) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockUsername(ctx, tx, guest); err != nil {
		return err
	}
	if err := ensureFree(ctx, tx, guest); err != nil {
		return err
	}

	query := `
        UPDATE games
        SET status = $1, guest = $2
        WHERE id = $3 AND status = $4
    `

	result, err := tx.ExecContext(ctx, query,
		string(model.StatusInProgress),
		guest,
		id,
		string(model.StatusWaitingForPlayers),
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_game.ErrGameNotFound
	}

	return tx.Commit()
}

func (d *Driver) SetFinished(ctx context.Context, id int64, winner string) error {
	query := `
        UPDATE games
        SET status = $1, winner = $2
        WHERE id = $3
    `

	result, err := d.db.ExecContext(ctx, query,
		string(model.StatusFinished),
		nullable(winner),
		id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_game.ErrGameNotFound
	}
	return nil
}

// UpdateBoard persists the board state and the next player in one write.
func (d *Driver) UpdateBoard(ctx context.Context, id int64, state string, nextPlayer string) error {
	query := `
        UPDATE games
        SET board_state = $1, current_player = $2
        WHERE id = $3
    `

	result, err := d.db.ExecContext(ctx, query, state, nextPlayer, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_game.ErrGameNotFound
	}
	return nil
}

func (d *Driver) GetOne(ctx context.Context, id int64) (model.Game, error) {
	var dto gameDTO

	query := `
        SELECT id, name, host, guest, winner, status, board_state, current_player
        FROM games
        WHERE id = $1
    `

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Game{}, usecase_game.ErrGameNotFound
		}
		return model.Game{}, err
	}

	return dto.ToDomain(), nil
}

// Find translates the structured filter into a WHERE clause. A filter that
// selects nothing returns an empty slice without touching the database.
func (d *Driver) Find(ctx context.Context, filter model.GameFilter, limit, offset int) ([]model.Game, error) {
	where, args := filterClause(filter)
	if where == "" {
		return []model.Game{}, nil
	}

	query := fmt.Sprintf(`
        SELECT id, name, host, guest, winner, status, board_state, current_player
        FROM games
        WHERE %s
        ORDER BY id
        LIMIT $%d OFFSET $%d
    `, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var dtos []gameDTO
	if err := d.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, err
	}

	games := make([]model.Game, 0, len(dtos))
	for i := range dtos {
		games = append(games, dtos[i].ToDomain())
	}
	return games, nil
}

// FindBusyGame returns the first non-finished game in which the username
// takes part, case-insensitive.
func (d *Driver) FindBusyGame(ctx context.Context, username string) (int64, bool, error) {
	var id int64

	query := `
        SELECT id
        FROM games
        WHERE status <> $1
          AND (lower(host) = lower($2) OR lower(guest) = lower($2))
        ORDER BY id
        LIMIT 1
    `

	err := d.db.GetContext(ctx, &id, query, string(model.StatusFinished), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}

func filterClause(filter model.GameFilter) (string, []interface{}) {
	switch filter.Category {
	case model.FilterAll:
		return "TRUE", nil
	case model.FilterWaiting:
		return "status = $1", []interface{}{string(model.StatusWaitingForPlayers)}
	case model.FilterFinished:
		return "status = $1 AND (lower(host) = lower($2) OR lower(guest) = lower($2))",
			[]interface{}{string(model.StatusFinished), filter.Username}
	case model.FilterPlaying:
		return "status = $1 AND (lower(host) = lower($2) OR lower(guest) = lower($2))",
			[]interface{}{string(model.StatusInProgress), filter.Username}
	}
	return "", nil
}

// lockUsername serializes writers keyed by a username for the duration of
// the transaction.
func lockUsername(ctx context.Context, tx *sqlx.Tx, username string) error {
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext(lower($1)))`, username)
	return err
}

func ensureFree(ctx context.Context, tx *sqlx.Tx, username string) error {
	var id int64

	query := `
        SELECT id
        FROM games
        WHERE status <> $1
          AND (lower(host) = lower($2) OR lower(guest) = lower($2))
        ORDER BY id
        LIMIT 1
    `

	err := tx.GetContext(ctx, &id, query, string(model.StatusFinished), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	return &usecase_game.BusyUserError{GameID: id}
}
