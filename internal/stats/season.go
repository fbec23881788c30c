package stats

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSeason indicates a season string that is neither a plain year
// nor a "start/end" year pair.
var ErrInvalidSeason = errors.New("invalid season format")

var seasonDigits = regexp.MustCompile(`^\d+$`)

// Season identifies a single standings table: the season's ending year plus
// whether the table covers the regular season or the playoffs.
type Season struct {
	Year    int  `json:"year"`
	Playoff bool `json:"playoff"`
}

// String returns the season in "start/end" form, e.g. "2024/2025", with a
// playoffs marker when set.
func (s Season) String() string {
	label := fmt.Sprintf("%d/%d", s.Year-1, s.Year)
	if s.Playoff {
		return label + " playoffs"
	}
	return label
}

// ParseSeason parses a season given either as a single ending year ("2025")
// or as a "start/end" pair ("2024/2025"). Both forms resolve to the ending
// year, which is how the stats site addresses seasons.
func ParseSeason(value string) (int, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidSeason)
	}

	if strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 2 || !seasonDigits.MatchString(parts[1]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, value)
		}
		year, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, value)
		}
		return year, nil
	}

	if !seasonDigits.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, value)
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, value)
	}
	return year, nil
}

// CurrentSeason returns the ending year of the season in progress. KHL
// seasons start in September, so from July onward the season in progress is
// the one ending next calendar year.
func CurrentSeason() int {
	return seasonFor(time.Now().UTC())
}

func seasonFor(t time.Time) int {
	if t.Month() >= time.July {
		return t.Year() + 1
	}
	return t.Year()
}
