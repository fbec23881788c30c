package notifier

import (
	"fmt"
	"unicode/utf8"

	"github.com/hfigen/khl-miniapp/internal/stats"
)

// DryRunNotifier prints what would be posted without actually publishing
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Announce prints the tweet that would be posted
func (n *DryRunNotifier) Announce(players []stats.PlayerStat, season stats.Season) error {
	tweet := formatTweet(players, season)
	fmt.Println("--- Tweet ---")
	fmt.Println(tweet)
	fmt.Printf("\n(Length: %d characters)\n", utf8.RuneCountInString(tweet))
	return nil
}
