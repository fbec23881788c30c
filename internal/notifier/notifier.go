package notifier

import (
	"github.com/hfigen/khl-miniapp/internal/stats"
)

// Notifier defines the interface for announcing scoring leaders
type Notifier interface {
	// Announce publishes a digest of the given players for a season
	Announce(players []stats.PlayerStat, season stats.Season) error
}
