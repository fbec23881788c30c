package cli

import (
	"fmt"
	"strings"

	"github.com/hfigen/khl-miniapp/internal/notifier"
	"github.com/spf13/cobra"
)

func newAnnounceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Post the scoring leaders digest to Telegram or Twitter",
		RunE:  runAnnounce,
	}

	cmd.Flags().StringVar(&flagSeason, "season", "", "Season, e.g. 2025 or 2024/2025 (default: current)")
	cmd.Flags().BoolVar(&flagPlayoff, "playoff", false, "Use playoff statistics")
	cmd.Flags().IntVar(&flagTop, "top", 10, "Maximum number of leaders to include")
	cmd.Flags().StringVar(&flagVia, "via", "telegram", "Where to post: telegram or twitter")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the digest without posting")

	return cmd
}

// runAnnounce fetches the season table and posts the leaders digest
func runAnnounce(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	via := strings.ToLower(flagVia)
	if via != "telegram" && via != "twitter" {
		return fmt.Errorf("invalid --via: %s (must be 'telegram' or 'twitter')", flagVia)
	}

	season, err := seasonFromFlags(cfg)
	if err != nil {
		return err
	}

	players, err := newProvider(cfg).ListPlayers(season)
	if err != nil {
		return fmt.Errorf("fetching statistics: %w", err)
	}

	if len(players) == 0 {
		fmt.Printf("No statistics for season %s yet\n", season)
		return nil
	}

	if flagTop > 0 && len(players) > flagTop {
		players = players[:flagTop]
	}

	var n notifier.Notifier
	switch {
	case flagDryRun:
		fmt.Printf("DRY RUN MODE - Would announce %d leaders:\n\n", len(players))
		n = notifier.NewDryRunNotifier()
	case via == "twitter":
		n, err = notifier.NewTwitterNotifier()
		if err != nil {
			return fmt.Errorf("initializing Twitter client: %w", err)
		}
	default:
		n, err = notifier.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return fmt.Errorf("initializing Telegram client: %w", err)
		}
	}

	if err := n.Announce(players, season); err != nil {
		return fmt.Errorf("announcing leaders: %w", err)
	}

	if !flagDryRun {
		fmt.Printf("Successfully announced %d leaders for season %s\n", len(players), season)
	}

	return nil
}
