package http_common

type ErrorResponse struct {
	Message string `json:"message"`
}

// GameIDResponse acknowledges a command with the id of the affected game.
type GameIDResponse struct {
	Message string `json:"message"`
	GameID  int64  `json:"game_id"`
}

// BusyResponse points the client at the game already occupying the user.
type BusyResponse struct {
	Message string `json:"message"`
	GameID  int64  `json:"game_id"`
}
