package service_board

import (
	"testing"

	"github.com/mblais/connect4/core/internal/model"
	"github.com/stretchr/testify/assert"
)

func board(state string) model.Board {
	return model.Board{State: state}
}

func TestValidateMove(t *testing.T) {
	t.Parallel()

	fullColumn := "0001000;0002000;0001000;0002000;0001000;0002000"

	testCases := []struct {
		name   string
		state  string
		column int
		valid  bool
	}{
		{"empty board accepts the first column", model.EmptyBoardState(), 0, true},
		{"empty board accepts the last column", model.EmptyBoardState(), 6, true},
		{"column below range is rejected", model.EmptyBoardState(), -1, false},
		{"column above range is rejected", model.EmptyBoardState(), 7, false},
		{"full column is rejected", fullColumn, 3, false},
		{"full column does not block its neighbours", fullColumn, 2, true},
	}

	s := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, s.ValidateMove(board(tc.state), tc.column))
		})
	}
}

func TestApplyMove(t *testing.T) {
	t.Parallel()

	s := New()

	t.Run("token falls to the bottom of an empty column", func(t *testing.T) {
		got := s.ApplyMove(board(model.EmptyBoardState()), model.HostColor, 3)
		assert.Equal(t, "0000000;0000000;0000000;0000000;0000000;0001000", got)
	})

	t.Run("token stacks on top of an occupied cell", func(t *testing.T) {
		first := s.ApplyMove(board(model.EmptyBoardState()), model.HostColor, 3)
		second := s.ApplyMove(board(first), model.GuestColor, 3)
		assert.Equal(t, "0000000;0000000;0000000;0000000;0002000;0001000", second)
	})

	t.Run("other columns stay untouched", func(t *testing.T) {
		got := s.ApplyMove(board(model.EmptyBoardState()), model.GuestColor, 0)
		assert.Equal(t, "0000000;0000000;0000000;0000000;0000000;2000000", got)
	})
}

func TestCheckWin(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		state string
		color byte
		win   bool
	}{
		{
			"horizontal run on the bottom row",
			"0000000;0000000;0000000;0000000;0000000;1111000",
			model.HostColor,
			true,
		},
		{
			"vertical run in the first column",
			"0000000;0000000;1000000;1000000;1000000;1000000",
			model.HostColor,
			true,
		},
		{
			"descending diagonal",
			"0000000;0000000;1000000;0100000;0010000;0001000",
			model.HostColor,
			true,
		},
		{
			"ascending diagonal",
			"0000000;0000000;0001000;0010000;0100000;1000000",
			model.HostColor,
			true,
		},
		{
			"three in a row is not enough",
			"0000000;0000000;0000000;0000000;0000000;1110000",
			model.HostColor,
			false,
		},
		{
			"opponent token breaks the run",
			"0000000;0000000;0000000;0000000;0000000;1112111",
			model.HostColor,
			false,
		},
		{
			"host run does not win for the guest",
			"0000000;0000000;0000000;0000000;0000000;1111000",
			model.GuestColor,
			false,
		},
		{
			"empty board has no winner",
			model.EmptyBoardState(),
			model.HostColor,
			false,
		},
	}

	s := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.win, s.CheckWin(board(tc.state), tc.color))
		})
	}
}

func TestCheckDraw(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		state string
		draw  bool
	}{
		{
			"full board is a draw",
			"1212121;2121212;1212121;2121212;1212121;2121212",
			true,
		},
		{
			"one free cell in the top row keeps the game going",
			"1212120;2121212;1212121;2121212;1212121;2121212",
			false,
		},
		{
			"empty board is not a draw",
			model.EmptyBoardState(),
			false,
		},
	}

	s := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.draw, s.CheckDraw(board(tc.state)))
		})
	}
}
