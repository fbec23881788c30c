package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/stats"
)

const (
	StatsBaseURL = "https://allhockey.ru/stat/khl"
	UserAgent    = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0 Safari/537.36"
	Timeout      = 30 * time.Second
)

// Tournament codes the stats site uses to address the two table kinds.
const (
	regularCode = 312
	playoffCode = 315
)

// headerCell marks the statistics table; the page carries several tables.
const headerCell = "Игрок"

// minRowCells is the smallest cell count a data row can have. The full table
// carries shot and time-on-ice columns beyond the ten the mini-app uses.
const minRowCells = 12

// ErrTableNotFound is returned when no table on the page carries the player header.
var ErrTableNotFound = errors.New("player stats table not found")

var (
	countPattern  = regexp.MustCompile(`^\d+$`)
	signedPattern = regexp.MustCompile(`^-?\d+$`)
)

// FetchError describes a failed page download. StatusCode is zero when the
// request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Scraper handles fetching and parsing KHL player statistics pages
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a new Scraper instance with the default timeout
func New() *Scraper {
	return NewWithTimeout(Timeout)
}

// NewWithTimeout creates a Scraper whose HTTP client gives up after timeout
func NewWithTimeout(timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: StatsBaseURL,
	}
}

// FetchPlayers fetches and parses the standings table for a season.
// The returned slice preserves table order, which ranks players by points.
func (s *Scraper) FetchPlayers(season stats.Season) ([]stats.PlayerStat, error) {
	url := s.statsURL(season)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	players, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}

	logger.RecordTiming("scrape.fetch", time.Since(start))
	logger.Debug("Season page parsed", logger.Fields{
		"season":  season.String(),
		"players": len(players),
	})

	return players, nil
}

// statsURL builds the page address for a season's table
func (s *Scraper) statsURL(season stats.Season) string {
	code := regularCode
	if season.Playoff {
		code = playoffCode
	}
	return fmt.Sprintf("%s/%d/%d/player", s.baseURL, season.Year, code)
}

// Parse extracts player rows from a standings page. It is separate from the
// fetch so saved pages can be parsed offline and tests can run without a
// network.
func Parse(r io.Reader) ([]stats.PlayerStat, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := findStatsTable(doc)
	if table == nil {
		return nil, ErrTableNotFound
	}

	players := make([]stats.PlayerStat, 0)
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		// First row is the header
		if i == 0 {
			return
		}

		cells := row.Find("th, td").Map(func(_ int, cell *goquery.Selection) string {
			return strings.TrimSpace(cell.Text())
		})
		if len(cells) < minRowCells {
			logger.Debug("Skipping short row", logger.Fields{
				"row":   i,
				"cells": len(cells),
			})
			return
		}

		players = append(players, stats.PlayerStat{
			Name:      cells[1],
			Team:      cells[2],
			TeamAbbr:  cells[3],
			Position:  cells[4],
			Points:    parseCount(cells[5]),
			Goals:     parseCount(cells[6]),
			Assists:   parseCount(cells[7]),
			Games:     parseCount(cells[8]),
			PlusMinus: parseSigned(cells[9]),
			Penalty:   parseCount(cells[10]),
		})
	})

	return players, nil
}

// findStatsTable returns the first table whose cells include the player
// header, or nil when the page has no recognizable stats table.
func findStatsTable(doc *goquery.Document) *goquery.Selection {
	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		found := false
		t.Find("th, td").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			if strings.TrimSpace(cell.Text()) == headerCell {
				found = true
				return false
			}
			return true
		})
		if found {
			table = t
			return false
		}
		return true
	})
	return table
}

// parseCount parses a non-negative integer cell. Dashes, empty cells and
// decorated numbers all come back as zero.
func parseCount(text string) int {
	if !countPattern.MatchString(text) {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}

// parseSigned parses an optionally negative integer cell, zero on anything else
func parseSigned(text string) int {
	if !signedPattern.MatchString(text) {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}
