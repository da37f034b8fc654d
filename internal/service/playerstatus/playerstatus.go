package service_playerstatus

import (
	"context"
	"errors"
)

var ErrInternal = errors.New("internal error")

// BusyGameFinder looks up the first non-finished game in which the username
// takes part, as host or guest, case-insensitive.
//
//go:generate mockery --name=BusyGameFinder --output=./mocks --filename=busy_game_finder.go
type BusyGameFinder interface {
	FindBusyGame(ctx context.Context, username string) (int64, bool, error)
}

// Service answers the busy-player question gating every session-starting
// operation: a user already hosting or occupying a waiting or in-progress
// game may not enter another one.
type Service struct {
	finder BusyGameFinder
}

func New(finder BusyGameFinder) *Service {
	return &Service{finder: finder}
}

// CheckIfUserIsBusy returns the id of the game occupying the user and true,
// or false when the user is free.
func (s *Service) CheckIfUserIsBusy(ctx context.Context, username string) (int64, bool, error) {
	gameID, busy, err := s.finder.FindBusyGame(ctx, username)
	if err != nil {
		return 0, false, errors.Join(ErrInternal, err)
	}
	return gameID, busy, nil
}
