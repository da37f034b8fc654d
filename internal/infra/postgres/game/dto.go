package infra_postgres_game

import (
	"database/sql"

	"github.com/mblais/connect4/core/internal/model"
)

type gameDTO struct {
	ID            int64          `db:"id"`
	Name          string         `db:"name"`
	Host          string         `db:"host"`
	Guest         sql.NullString `db:"guest"`
	Winner        sql.NullString `db:"winner"`
	Status        string         `db:"status"`
	BoardState    string         `db:"board_state"`
	CurrentPlayer string         `db:"current_player"`
}

func (d *gameDTO) ToDomain() model.Game {
	return model.Game{
		ID:     d.ID,
		Name:   d.Name,
		Host:   d.Host,
		Guest:  d.Guest.String,
		Winner: d.Winner.String,
		Status: model.GameStatus(d.Status),
		Board: model.Board{
			ID:            d.ID,
			CurrentPlayer: d.CurrentPlayer,
			State:         d.BoardState,
		},
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
