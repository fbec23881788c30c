package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hfigen/khl-miniapp/internal/stats"
)

func sampleResult() *OutputResult {
	return &OutputResult{
		FetchedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Season:    "2024/2025",
		Players: []stats.PlayerStat{
			{Name: "Гусев Никита", Team: "СКА", TeamAbbr: "СКА", Position: "Нападающий", Points: 89, Goals: 23, Assists: 66, Games: 62, PlusMinus: 28, Penalty: 22},
		},
		PlayerCount: 1,
	}
}

func TestWriteOutput_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatText); err != nil {
		t.Fatalf("WriteOutput() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Season 2024/2025:", "Гусев Никита", "Points: 89 (23+66)", "Total: 1 players"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOutput_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{Season: "2024/2025"}

	if err := WriteOutput(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOutput() error: %v", err)
	}
	if got := buf.String(); got != "No players found for season 2024/2025.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestWriteOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), FormatJSON); err != nil {
		t.Fatalf("WriteOutput() error: %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.PlayerCount != 1 || len(decoded.Players) != 1 {
		t.Fatalf("decoded %d players (count %d), want 1", len(decoded.Players), decoded.PlayerCount)
	}
	if decoded.Players[0].Points != 89 {
		t.Errorf("points = %d, want 89", decoded.Players[0].Points)
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, sampleResult(), OutputFormat("yaml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
