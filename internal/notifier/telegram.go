package notifier

import (
	"fmt"

	"github.com/hfigen/khl-miniapp/internal/stats"
	"github.com/hfigen/khl-miniapp/internal/telegram"
)

// chatLeaders is how many players go into a chat digest
const chatLeaders = 10

// TelegramNotifier sends leader digests to a Telegram chat
type TelegramNotifier struct {
	client *telegram.Client
	chatID string
}

// NewTelegramNotifier creates a new Telegram notifier for the given chat.
// The chat ID may be a numeric identifier or a @channelname.
func NewTelegramNotifier(botToken, chatID string) (*TelegramNotifier, error) {
	if chatID == "" {
		return nil, fmt.Errorf("telegram chat ID is required")
	}

	client, err := telegram.NewClient(botToken)
	if err != nil {
		return nil, err
	}

	return &TelegramNotifier{client: client, chatID: chatID}, nil
}

// Announce sends the scoring leaders to the configured chat
func (n *TelegramNotifier) Announce(players []stats.PlayerStat, season stats.Season) error {
	text := telegram.FormatLeaders(players, season, chatLeaders)

	if err := n.client.SendMessage(n.chatID, text); err != nil {
		return fmt.Errorf("failed to send leaders digest for season %s: %w", season, err)
	}

	return nil
}
