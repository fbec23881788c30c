package provider

import (
	"container/list"
	"sync"

	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/stats"
)

// DefaultCacheSize bounds the number of seasons kept in memory. Ten tables
// cover several years of regular and playoff views.
const DefaultCacheSize = 10

// Cache is a bounded LRU cache of season tables. Lookups and stores refresh
// recency; when the bound is exceeded the least recently used season is
// evicted. Safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[stats.Season]*list.Element
}

type cacheEntry struct {
	season  stats.Season
	players []stats.PlayerStat
}

// NewCache creates a cache bounded to capacity seasons. A capacity of zero
// or less falls back to DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[stats.Season]*list.Element),
	}
}

// Get retrieves the cached table for a season, refreshing its recency.
// The second return value reports whether the season was cached.
func (c *Cache) Get(season stats.Season) ([]stats.PlayerStat, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[season]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).players, true
}

// Set stores a season table, evicting the least recently used season when
// the cache is full.
func (c *Cache) Set(season stats.Season, players []stats.PlayerStat) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[season]; ok {
		elem.Value.(*cacheEntry).players = players
		c.order.MoveToFront(elem)
		return
	}

	c.entries[season] = c.order.PushFront(&cacheEntry{season: season, players: players})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).season)
			logger.IncrCounter("cache.evictions")
		}
	}
}

// Size returns the number of cached seasons
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
