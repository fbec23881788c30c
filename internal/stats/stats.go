package stats

import (
	"errors"
	"strings"
)

// ErrNotFound indicates the requested player does not appear in the season table.
var ErrNotFound = errors.New("player not found")

// DefaultSearchLimit caps search results when the caller does not ask for a
// specific limit.
const DefaultSearchLimit = 10

// PlayerStat is one row of a season standings table.
type PlayerStat struct {
	Name      string `json:"name"`
	Team      string `json:"team"`
	TeamAbbr  string `json:"team_abbr"`
	Position  string `json:"position"`
	Points    int    `json:"points"`
	Goals     int    `json:"goals"`
	Assists   int    `json:"assists"`
	Games     int    `json:"games"`
	PlusMinus int    `json:"plus_minus"`
	Penalty   int    `json:"penalty"`
}

// SearchPlayers returns players whose name starts with query, compared
// case-insensitively after trimming both sides. An empty query matches
// nothing. At most limit players are returned, preserving table order;
// limit <= 0 falls back to DefaultSearchLimit.
func SearchPlayers(players []PlayerStat, query string, limit int) []PlayerStat {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []PlayerStat{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	matches := make([]PlayerStat, 0, limit)
	for _, p := range players {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(p.Name)), q) {
			matches = append(matches, p)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// FindPlayer returns the first player whose name equals name, compared
// case-insensitively after trimming both sides. Returns ErrNotFound when no
// row matches.
func FindPlayer(players []PlayerStat, name string) (PlayerStat, error) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, p := range players {
		if strings.ToLower(strings.TrimSpace(p.Name)) == target {
			return p, nil
		}
	}
	return PlayerStat{}, ErrNotFound
}
