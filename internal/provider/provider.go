package provider

import (
	"strings"
	"sync"

	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/stats"
)

// Fetcher fetches the full player table for one season. The scraper
// satisfies this; tests substitute fakes to count upstream calls.
type Fetcher interface {
	FetchPlayers(season stats.Season) ([]stats.PlayerStat, error)
}

// Provider serves season tables out of a bounded in-memory cache, fetching
// each season at most once while it stays cached.
type Provider struct {
	fetcher Fetcher
	cache   *Cache

	mu       sync.Mutex
	inflight map[stats.Season]*sync.Mutex
}

// New creates a Provider around fetcher with a cache bounded to cacheSize
// seasons.
func New(fetcher Fetcher, cacheSize int) *Provider {
	return &Provider{
		fetcher:  fetcher,
		cache:    NewCache(cacheSize),
		inflight: make(map[stats.Season]*sync.Mutex),
	}
}

// ListPlayers returns the full table for a season, fetching it on first use.
// Fetch errors are returned to the caller and nothing is cached, so the next
// request for the season retries.
func (p *Provider) ListPlayers(season stats.Season) ([]stats.PlayerStat, error) {
	if players, ok := p.cache.Get(season); ok {
		logger.IncrCounter("cache.hit")
		return players, nil
	}

	// Collapse concurrent fetches of the same season into one upstream call
	lock := p.seasonLock(season)
	lock.Lock()
	defer lock.Unlock()

	if players, ok := p.cache.Get(season); ok {
		logger.IncrCounter("cache.hit")
		return players, nil
	}
	logger.IncrCounter("cache.miss")

	players, err := p.fetcher.FetchPlayers(season)
	if err != nil {
		return nil, err
	}

	p.cache.Set(season, players)
	logger.SetGauge("cache.seasons", float64(p.cache.Size()))
	logger.Info("Season cached", logger.Fields{
		"season":  season.String(),
		"players": len(players),
	})

	return players, nil
}

// SearchPlayers returns up to limit players whose names start with query.
// An empty query returns an empty result without touching the network.
func (p *Provider) SearchPlayers(season stats.Season, query string, limit int) ([]stats.PlayerStat, error) {
	if strings.TrimSpace(query) == "" {
		return []stats.PlayerStat{}, nil
	}

	players, err := p.ListPlayers(season)
	if err != nil {
		return nil, err
	}
	return stats.SearchPlayers(players, query, limit), nil
}

// FindPlayer returns the row for an exact (case-insensitive) player name.
// Returns stats.ErrNotFound when the season table has no such player.
func (p *Provider) FindPlayer(season stats.Season, name string) (stats.PlayerStat, error) {
	players, err := p.ListPlayers(season)
	if err != nil {
		return stats.PlayerStat{}, err
	}
	return stats.FindPlayer(players, name)
}

// seasonLock returns the fetch lock for a season, creating it on first use.
// The registry only ever holds a handful of seasons, so entries are not pruned.
func (p *Provider) seasonLock(season stats.Season) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.inflight[season]
	if !ok {
		lock = &sync.Mutex{}
		p.inflight[season] = lock
	}
	return lock
}
