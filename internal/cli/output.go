package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hfigen/khl-miniapp/internal/stats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	FetchedAt   time.Time          `json:"fetched_at"`
	Season      string             `json:"season"`
	Players     []stats.PlayerStat `json:"players"`
	PlayerCount int                `json:"player_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if result.PlayerCount == 0 {
		fmt.Fprintf(w, "No players found for season %s.\n", result.Season)
		return nil
	}

	fmt.Fprintf(w, "Season %s:\n", result.Season)
	for i, p := range result.Players {
		team := p.TeamAbbr
		if team == "" {
			team = p.Team
		}
		fmt.Fprintf(w, "%3d. %s (%s, %s)\n", i+1, p.Name, team, p.Position)
		fmt.Fprintf(w, "     Points: %d (%d+%d)  Games: %d  +/-: %d  PIM: %d\n",
			p.Points, p.Goals, p.Assists, p.Games, p.PlusMinus, p.Penalty)
	}
	fmt.Fprintf(w, "\nTotal: %d players\n", result.PlayerCount)

	return nil
}
