package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hfigen/khl-miniapp/internal/bot"
	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/telegram"
	"github.com/spf13/cobra"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram launcher bot",
		RunE:  runBot,
	}
}

// runBot starts the long-polling bot and blocks until a signal
func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.WebAppURL == "" {
		return fmt.Errorf("WEB_APP_URL is required")
	}

	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("initializing Telegram client: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		logger.Info("Shutting down", logger.Fields{"signal": sig.String()})
		cancel()
	}()

	logger.Info("Starting launcher bot", logger.Fields{"web_app_url": cfg.WebAppURL})

	return bot.New(client, newProvider(cfg), cfg.WebAppURL, cfg.DefaultSeason).Run(ctx)
}
