package notifier

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/hfigen/khl-miniapp/internal/stats"
	"github.com/hfigen/khl-miniapp/internal/telegram"
)

// tweetLeaders is how many players fit in a single tweet
const tweetLeaders = 5

// TwitterNotifier posts leader digests to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Announce posts the scoring leaders as a single tweet
func (n *TwitterNotifier) Announce(players []stats.PlayerStat, season stats.Season) error {
	tweet := formatTweet(players, season)

	_, _, err := n.client.Statuses.Update(tweet, nil)
	if err != nil {
		return fmt.Errorf("failed to post leaders tweet for season %s: %w", season, err)
	}

	return nil
}

// formatTweet formats the top scorers of a season as a tweet
func formatTweet(players []stats.PlayerStat, season stats.Season) string {
	tweet := fmt.Sprintf("🏒 Бомбардиры КХЛ, сезон %s\n\n", telegram.SeasonLabel(season))

	for i, p := range players {
		if i == tweetLeaders {
			break
		}
		team := p.TeamAbbr
		if team == "" {
			team = p.Team
		}
		tweet += fmt.Sprintf("%d. %s (%s) — %d (%d+%d)\n", i+1, p.Name, team, p.Points, p.Goals, p.Assists)
	}

	tweet += "\n#КХЛ #хоккей"

	// Twitter limit is 280 characters, counted in runes since the digest is Cyrillic
	if utf8.RuneCountInString(tweet) > 280 {
		runes := []rune(tweet)
		tweet = string(runes[:277]) + "..."
	}

	return tweet
}
