package cli

import (
	"sort"
	"strings"

	"github.com/hfigen/khl-miniapp/internal/stats"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByPoints SortOrder = "points"
	SortByGoals  SortOrder = "goals"
	SortByGames  SortOrder = "games"
	SortByName   SortOrder = "name"
)

// sortPlayers reorders players for output. The scraped table already comes
// ranked by points, so SortByPoints only settles ties.
func sortPlayers(players []stats.PlayerStat, sortOrder SortOrder) {
	switch sortOrder {
	case SortByPoints:
		sort.SliceStable(players, func(i, j int) bool {
			if players[i].Points != players[j].Points {
				return players[i].Points > players[j].Points
			}
			return moreGoals(players[i], players[j])
		})
	case SortByGoals:
		sort.SliceStable(players, func(i, j int) bool {
			return moreGoals(players[i], players[j])
		})
	case SortByGames:
		sort.SliceStable(players, func(i, j int) bool {
			if players[i].Games != players[j].Games {
				return players[i].Games > players[j].Games
			}
			return players[i].Points > players[j].Points
		})
	case SortByName:
		sort.SliceStable(players, func(i, j int) bool {
			return strings.ToLower(players[i].Name) < strings.ToLower(players[j].Name)
		})
	}
}

// moreGoals compares two players by goals scored
// Returns true if player i should come before player j
func moreGoals(i, j stats.PlayerStat) bool {
	if i.Goals != j.Goals {
		return i.Goals > j.Goals
	}

	// If goals are equal, the higher point total comes first
	if i.Points != j.Points {
		return i.Points > j.Points
	}

	return strings.ToLower(i.Name) < strings.ToLower(j.Name)
}
