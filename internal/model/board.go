package model

import "strings"

const (
	BoardRows = 6
	BoardCols = 7
)

// Cell colors inside the serialized board state.
const (
	EmptyCell  byte = '0'
	HostColor  byte = '1'
	GuestColor byte = '2'
)

// Board tracks whose turn it is and the serialized grid state:
// six ';'-joined rows of seven cells, row 0 on top.
type Board struct {
	ID            int64
	CurrentPlayer string
	State         string
}

// EmptyBoardState builds the serialized state of a board with no tokens.
func EmptyBoardState() string {
	row := strings.Repeat(string(EmptyCell), BoardCols)
	rows := make([]string, BoardRows)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, ";")
}
