package service_board

import (
	"strings"

	"github.com/mblais/connect4/core/internal/model"
)

// Service implements the Connect-Four board algorithm over the serialized
// state format. The string stays the storage shape; parsing into a grid is
// internal to each operation.
type Service struct{}

func New() *Service {
	return &Service{}
}

// ValidateMove reports whether a token can be dropped into the column:
// the column must be within [0,6] and its top cell must be empty.
func (s *Service) ValidateMove(board model.Board, column int) bool {
	if column < 0 || column >= model.BoardCols {
		return false
	}
	grid := parse(board.State)
	return grid[0][column] == model.EmptyCell
}

// ApplyMove drops a token of the given color into the column and returns
// the updated serialized state. The caller must have validated the move;
// a full column leaves the state unchanged.
func (s *Service) ApplyMove(board model.Board, color byte, column int) string {
	grid := parse(board.State)
	for row := model.BoardRows - 1; row >= 0; row-- {
		if grid[row][column] == model.EmptyCell {
			grid[row][column] = color
			break
		}
	}
	return serialize(grid)
}

// CheckWin reports whether the color has four consecutive tokens in any
// direction: horizontal, vertical, or either diagonal.
func (s *Service) CheckWin(board model.Board, color byte) bool {
	grid := parse(board.State)
	for row := 0; row < model.BoardRows; row++ {
		for col := 0; col < model.BoardCols; col++ {
			if grid[row][col] != color {
				continue
			}
			if runFrom(grid, row, col, 0, 1, color) ||
				runFrom(grid, row, col, 1, 0, color) ||
				runFrom(grid, row, col, 1, 1, color) ||
				runFrom(grid, row, col, -1, 1, color) {
				return true
			}
		}
	}
	return false
}

// CheckDraw reports whether the board is full. Gravity fills columns
// bottom-up, so a full top row implies a full board.
func (s *Service) CheckDraw(board model.Board) bool {
	grid := parse(board.State)
	for col := 0; col < model.BoardCols; col++ {
		if grid[0][col] == model.EmptyCell {
			return false
		}
	}
	return true
}

// runFrom counts consecutive same-color cells along (dRow,dCol) through
// the window centered on (row,col), matching the scan the original rules
// require: any run reaching four wins.
func runFrom(grid [][]byte, row, col, dRow, dCol int, color byte) bool {
	count := 0
	for i := -3; i <= 3; i++ {
		r := row + i*dRow
		c := col + i*dCol
		if r < 0 || r >= model.BoardRows || c < 0 || c >= model.BoardCols {
			continue
		}
		if grid[r][c] == color {
			count++
			if count == 4 {
				return true
			}
		} else {
			count = 0
		}
	}
	return false
}

func parse(state string) [][]byte {
	rows := strings.Split(state, ";")
	grid := make([][]byte, len(rows))
	for i, r := range rows {
		grid[i] = []byte(r)
	}
	return grid
}

func serialize(grid [][]byte) string {
	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = string(r)
	}
	return strings.Join(rows, ";")
}
