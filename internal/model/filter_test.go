package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGameFilter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		category string
		want     GameFilter
	}{
		{"empty string selects everything", "", GameFilter{Category: FilterAll}},
		{"waiting", "waiting", GameFilter{Category: FilterWaiting}},
		{"waiting is case-insensitive", "  Waiting ", GameFilter{Category: FilterWaiting}},
		{"finished with a user", "finished-alice", GameFilter{Category: FilterFinished, Username: "alice"}},
		{"playing with a user", "playing-bob", GameFilter{Category: FilterPlaying, Username: "bob"}},
		{"unknown categories select nothing", "archived", GameFilter{Category: FilterNone}},
		{"finished without a user selects nothing", "finished", GameFilter{Category: FilterNone}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseGameFilter(tc.category))
		})
	}
}

func TestFilterMatches(t *testing.T) {
	t.Parallel()

	waiting := NewGame("Friday night", "alice")

	playing := NewGame("Friday night", "alice")
	playing.InProgress("bob")

	finished := NewGame("Friday night", "alice")
	finished.InProgress("bob")
	finished.Finished("bob")

	testCases := []struct {
		name   string
		filter GameFilter
		game   Game
		want   bool
	}{
		{"all matches waiting", GameFilter{Category: FilterAll}, waiting, true},
		{"all matches finished", GameFilter{Category: FilterAll}, finished, true},
		{"waiting matches waiting", GameFilter{Category: FilterWaiting}, waiting, true},
		{"waiting rejects running", GameFilter{Category: FilterWaiting}, playing, false},
		{"finished needs the user to participate", GameFilter{Category: FilterFinished, Username: "alice"}, finished, true},
		{"finished matches the user case-insensitively", GameFilter{Category: FilterFinished, Username: "ALICE"}, finished, true},
		{"finished rejects strangers", GameFilter{Category: FilterFinished, Username: "mallory"}, finished, false},
		{"playing needs the user to participate", GameFilter{Category: FilterPlaying, Username: "bob"}, playing, true},
		{"playing rejects finished games", GameFilter{Category: FilterPlaying, Username: "bob"}, finished, false},
		{"none matches nothing", GameFilter{Category: FilterNone}, waiting, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(tc.game))
		})
	}
}
