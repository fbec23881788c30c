package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hfigen/khl-miniapp/internal/config"
	"github.com/hfigen/khl-miniapp/internal/scraper"
	"github.com/hfigen/khl-miniapp/internal/stats"
	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Print player statistics to the terminal",
		RunE:  runPlayers,
	}

	cmd.Flags().StringVar(&flagSeason, "season", "", "Season, e.g. 2025 or 2024/2025 (default: current)")
	cmd.Flags().BoolVar(&flagPlayoff, "playoff", false, "Use playoff statistics")
	cmd.Flags().StringVar(&flagQuery, "query", "", "Name prefix to search for")
	cmd.Flags().StringVar(&flagName, "name", "", "Exact player name to look up")
	cmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of players to print")
	cmd.Flags().StringVar(&flagSort, "sort", "", "Sort order: points, goals, games or name (default: page order)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagFile, "file", "", "Parse a saved statistics page instead of fetching")

	return cmd
}

// runPlayers is the terminal inspection command
func runPlayers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	sortOrder := SortOrder(strings.ToLower(flagSort))
	switch sortOrder {
	case "", SortByPoints, SortByGoals, SortByGames, SortByName:
	default:
		return fmt.Errorf("invalid sort order: %s (must be 'points', 'goals', 'games' or 'name')", flagSort)
	}

	season, err := seasonFromFlags(cfg)
	if err != nil {
		return err
	}

	list, err := fetchPlayers(cfg, season)
	if err != nil {
		return fmt.Errorf("fetching statistics: %w", err)
	}

	var players []stats.PlayerStat
	switch {
	case strings.TrimSpace(flagName) != "":
		player, err := stats.FindPlayer(list, flagName)
		if errors.Is(err, stats.ErrNotFound) {
			return fmt.Errorf("player %q not found for season %s", flagName, season)
		}
		if err != nil {
			return err
		}
		players = []stats.PlayerStat{player}

	case strings.TrimSpace(flagQuery) != "":
		players = stats.SearchPlayers(list, flagQuery, flagLimit)

	default:
		players = limitPlayers(list, flagLimit)
	}

	if sortOrder != "" {
		sortPlayers(players, sortOrder)
	}

	result := &OutputResult{
		FetchedAt:   time.Now().UTC(),
		Season:      season.String(),
		Players:     players,
		PlayerCount: len(players),
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// limitPlayers copies at most limit players in table order. The copy keeps
// a later sort from reordering the provider's cached table.
func limitPlayers(list []stats.PlayerStat, limit int) []stats.PlayerStat {
	n := len(list)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]stats.PlayerStat, n)
	copy(out, list)
	return out
}

// fetchPlayers reads the season table from --file or from the live page
func fetchPlayers(cfg *config.Config, season stats.Season) ([]stats.PlayerStat, error) {
	if flagFile == "" {
		return newProvider(cfg).ListPlayers(season)
	}

	f, err := os.Open(flagFile)
	if err != nil {
		return nil, fmt.Errorf("opening stats file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	players, err := scraper.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing stats file: %w", err)
	}

	return players, nil
}
