package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hfigen/khl-miniapp/internal/config"
	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/provider"
	"github.com/hfigen/khl-miniapp/internal/scraper"
	"github.com/hfigen/khl-miniapp/internal/stats"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagListen  string
	flagSeason  string
	flagPlayoff bool
	flagQuery   string
	flagName    string
	flagLimit   int
	flagSort    string
	flagFormat  string
	flagFile    string
	flagTop     int
	flagVia     string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "khl-miniapp",
		Short: "KHL player statistics mini-app backend and tools",
		Long: `KHL player statistics scraped from allhockey.ru.
Serves the Telegram mini-app HTTP API, runs the launcher bot, posts the
scoring leaders digest and prints player statistics to the terminal.`,
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBotCmd())
	cmd.AddCommand(newAnnounceCmd())
	cmd.AddCommand(newPlayersCmd())

	return cmd
}

// loadConfig loads the environment configuration and applies the log level
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	// Logs go to stderr so that piped command output stays parseable
	logger.SetDefault(logger.New(level, os.Stderr))

	return cfg, nil
}

// newProvider builds the scraper-backed provider from config
func newProvider(cfg *config.Config) *provider.Provider {
	return provider.New(scraper.NewWithTimeout(cfg.FetchTimeout), cfg.CacheSize)
}

// seasonFromFlags resolves the --season and --playoff flags against the
// configured default season
func seasonFromFlags(cfg *config.Config) (stats.Season, error) {
	season := stats.Season{Playoff: flagPlayoff}

	if strings.TrimSpace(flagSeason) == "" {
		season.Year = cfg.Season()
		return season, nil
	}

	year, err := stats.ParseSeason(flagSeason)
	if err != nil {
		return stats.Season{}, fmt.Errorf("invalid season: %s (use 2025 or 2024/2025)", flagSeason)
	}
	season.Year = year

	return season, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
