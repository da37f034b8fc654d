package model

import "strings"

type FilterCategory string

const (
	// FilterNone selects nothing. Unknown category strings fail closed.
	FilterNone     FilterCategory = ""
	FilterAll      FilterCategory = "all"
	FilterWaiting  FilterCategory = "waiting"
	FilterFinished FilterCategory = "finished"
	FilterPlaying  FilterCategory = "playing"
)

// GameFilter selects games for list queries. Username applies to the
// finished and playing categories only.
type GameFilter struct {
	Category FilterCategory
	Username string
}

// ParseGameFilter understands the legacy category strings: "waiting",
// "finished-<user>", "playing-<user>". An empty string selects everything,
// anything else selects nothing.
func ParseGameFilter(category string) GameFilter {
	category = strings.ToLower(strings.TrimSpace(category))

	switch {
	case category == "":
		return GameFilter{Category: FilterAll}
	case category == string(FilterWaiting):
		return GameFilter{Category: FilterWaiting}
	case strings.HasPrefix(category, string(FilterFinished)+"-"):
		return GameFilter{
			Category: FilterFinished,
			Username: strings.TrimPrefix(category, string(FilterFinished)+"-"),
		}
	case strings.HasPrefix(category, string(FilterPlaying)+"-"):
		return GameFilter{
			Category: FilterPlaying,
			Username: strings.TrimPrefix(category, string(FilterPlaying)+"-"),
		}
	}
	return GameFilter{Category: FilterNone}
}

// Matches reports whether a game satisfies the filter.
func (f GameFilter) Matches(g Game) bool {
	switch f.Category {
	case FilterAll:
		return true
	case FilterWaiting:
		return g.Status == StatusWaitingForPlayers
	case FilterFinished:
		return g.Status == StatusFinished && g.HasParticipant(f.Username)
	case FilterPlaying:
		return g.Status == StatusInProgress && g.HasParticipant(f.Username)
	}
	return false
}
