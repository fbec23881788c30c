package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/provider"
	"github.com/hfigen/khl-miniapp/internal/stats"
	"github.com/hfigen/khl-miniapp/internal/telegram"
)

const (
	// pollSeconds is how long Telegram holds each getUpdates call open
	pollSeconds = 30
	// errorPause is the wait before retrying after a failed poll
	errorPause = 5 * time.Second
	// topLimit is how many players go into a /top digest
	topLimit = 10
)

const (
	promptText         = "Отправьте команду. Используйте /help, чтобы посмотреть список команд."
	unknownCommandText = "Неизвестная команда: %s\n\nИспользуйте /help, чтобы посмотреть список команд."
	badSeasonText      = "Неверный формат сезона: %s\n\nУкажите сезон как 2025 или 2024/2025."
	fetchFailedText    = "⚠️ Не удалось получить статистику. Попробуйте позже."
)

// Bot answers chat commands with data from the stats provider and hands out
// the keyboard that opens the mini-app.
type Bot struct {
	client        *telegram.Client
	provider      *provider.Provider
	webAppURL     string
	defaultSeason int
}

// New creates a bot around an existing Telegram client. A non-zero
// defaultSeason pins the season used when a command omits one; zero follows
// the calendar.
func New(client *telegram.Client, p *provider.Provider, webAppURL string, defaultSeason int) *Bot {
	return &Bot{
		client:        client,
		provider:      p,
		webAppURL:     webAppURL,
		defaultSeason: defaultSeason,
	}
}

// Run long-polls for updates until ctx is canceled. Cancellation is noticed
// between polls, so shutdown can lag by up to the poll timeout.
func (b *Bot) Run(ctx context.Context) error {
	logger.Info("Bot started", logger.Fields{
		"web_app":      b.webAppURL,
		"poll_seconds": pollSeconds,
	})

	offset := 0
	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot stopped", nil)
			return nil
		default:
		}

		updates, err := b.client.GetUpdatesWithTimeout(offset, pollSeconds)
		if err != nil {
			logger.Error("Failed to get updates", nil, err)
			time.Sleep(errorPause)
			continue
		}

		for _, update := range updates {
			b.handleUpdate(update)

			// Mark the update as processed
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
		}
	}
}

func (b *Bot) handleUpdate(update telegram.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *telegram.Message) {
	chatID := fmt.Sprintf("%d", msg.Chat.ID)

	logger.Debug("Message received", logger.Fields{
		"chat": chatID,
		"from": msg.From.FirstName,
		"text": msg.Text,
	})

	text, keyboard := b.respond(msg.Text)

	var err error
	if keyboard != nil {
		err = b.client.SendMessageWithKeyboard(chatID, text, keyboard)
	} else {
		err = b.client.SendMessage(chatID, text)
	}
	if err != nil {
		logger.Error("Failed to send reply", logger.Fields{"chat": chatID}, err)
	}
}

func (b *Bot) handleCallback(cb *telegram.CallbackQuery) {
	chatID := callbackChatID(cb)

	logger.Debug("Callback received", logger.Fields{
		"chat": chatID,
		"data": cb.Data,
	})

	if err := b.client.AnswerCallbackQuery(cb.ID, "", false); err != nil {
		logger.Warn("Failed to answer callback", logger.Fields{"chat": chatID})
	}

	switch cb.Data {
	case telegram.LeadersCallback:
		text := b.leadersDigest(b.season())
		if err := b.client.SendMessage(chatID, text); err != nil {
			logger.Error("Failed to send leaders", logger.Fields{"chat": chatID}, err)
		}
	default:
		logger.Debug("Ignoring unknown callback", logger.Fields{"data": cb.Data})
	}
}

// callbackChatID picks the chat to answer in. The reply goes to the chat the
// button message lives in, so group presses stay in the group; only when
// Telegram omits the message does it fall back to the presser's private chat.
func callbackChatID(cb *telegram.CallbackQuery) string {
	if cb.Message != nil {
		return fmt.Sprintf("%d", cb.Message.Chat.ID)
	}
	return fmt.Sprintf("%d", cb.From.ID)
}

// respond builds the reply for one incoming message text.
func (b *Bot) respond(text string) (string, *telegram.InlineKeyboardMarkup) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return promptText, nil
	}

	command := strings.ToLower(parts[0])
	// Group chats address commands as /command@botname
	command, _, _ = strings.Cut(command, "@")

	switch command {
	case "/start":
		return telegram.WelcomeMessage, telegram.StartKeyboard(b.webAppURL)

	case "/help":
		return telegram.HelpMessage, nil

	case "/top":
		return b.topReply(parts[1:]), nil

	default:
		return fmt.Sprintf(unknownCommandText, command), nil
	}
}

// topReply resolves the optional season argument and builds the digest.
func (b *Bot) topReply(args []string) string {
	season := b.season()
	if len(args) > 0 {
		year, err := stats.ParseSeason(args[0])
		if err != nil {
			return fmt.Sprintf(badSeasonText, args[0])
		}
		season.Year = year
	}
	return b.leadersDigest(season)
}

// season resolves the pinned default season, falling back to the calendar.
func (b *Bot) season() stats.Season {
	if b.defaultSeason != 0 {
		return stats.Season{Year: b.defaultSeason}
	}
	return stats.Season{Year: stats.CurrentSeason()}
}

// leadersDigest fetches the season table and formats the scoring race.
func (b *Bot) leadersDigest(season stats.Season) string {
	players, err := b.provider.ListPlayers(season)
	if err != nil {
		logger.Error("Failed to fetch leaders", logger.Fields{"season": season.String()}, err)
		return fetchFailedText
	}
	return telegram.FormatLeaders(players, season, topLimit)
}
