package model

import "strings"

type GameStatus string

const (
	StatusWaitingForPlayers GameStatus = "WaitingForPlayers"
	StatusInProgress        GameStatus = "InProgress"
	StatusFinished          GameStatus = "Finished"
)

// NoWinner on a Finished game means the game ended in a draw.
const NoWinner string = ""

// Game is the session aggregate. Status, Guest and Winner change only
// through the transition methods below.
type Game struct {
	ID     int64
	Name   string
	Host   string
	Guest  string
	Winner string
	Status GameStatus
	Board  Board
}

// NewGame builds a fresh waiting game: empty board, host moves first.
func NewGame(name, host string) Game {
	return Game{
		Name:   name,
		Host:   host,
		Status: StatusWaitingForPlayers,
		Board: Board{
			CurrentPlayer: host,
			State:         EmptyBoardState(),
		},
	}
}

func (g *Game) WaitingForPlayers() {
	g.Status = StatusWaitingForPlayers
}

func (g *Game) InProgress(guest string) {
	g.Status = StatusInProgress
	g.Guest = guest
}

func (g *Game) Finished(winner string) {
	g.Status = StatusFinished
	g.Winner = winner
}

func (g *Game) IsParticipant(username string) bool {
	return g.Host == username || g.Guest == username
}

// Opponent returns the other participant, or "" for a non-participant.
func (g *Game) Opponent(username string) string {
	switch username {
	case g.Host:
		return g.Guest
	case g.Guest:
		return g.Host
	}
	return ""
}

// HasParticipant is the case-insensitive variant used by the busy check
// and list filters.
func (g *Game) HasParticipant(username string) bool {
	return strings.EqualFold(g.Host, username) ||
		(g.Guest != "" && strings.EqualFold(g.Guest, username))
}
