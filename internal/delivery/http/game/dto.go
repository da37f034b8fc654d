package http_game

import "github.com/mblais/connect4/core/internal/model"

// GameDetailDTO is the participant-facing view of a game.
type GameDetailDTO struct {
	GameID        int64  `json:"game_id"`
	Name          string `json:"name"`
	Host          string `json:"host"`
	Guest         string `json:"guest,omitempty"`
	Winner        string `json:"winner,omitempty"`
	Status        string `json:"status"`
	BoardState    string `json:"board_state"`
	CurrentPlayer string `json:"current_player"`
}

func toGameDetailDTO(g model.Game) GameDetailDTO {
	return GameDetailDTO{
		GameID:        g.ID,
		Name:          g.Name,
		Host:          g.Host,
		Guest:         g.Guest,
		Winner:        g.Winner,
		Status:        string(g.Status),
		BoardState:    g.Board.State,
		CurrentPlayer: g.Board.CurrentPlayer,
	}
}
