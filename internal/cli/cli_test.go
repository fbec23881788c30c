package cli

import (
	"testing"

	"github.com/hfigen/khl-miniapp/internal/config"
	"github.com/hfigen/khl-miniapp/internal/stats"
)

func TestSeasonFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		season   string
		playoff  bool
		pinned   int
		wantYear int
		wantErr  bool
	}{
		{"explicit year", "2025", false, 0, 2025, false},
		{"season pair", "2023/2024", false, 0, 2024, false},
		{"playoff flag", "2025", true, 0, 2025, false},
		{"empty falls back to pinned default", "", false, 2024, 2024, false},
		{"bad season", "20x5", false, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagSeason = tt.season
			flagPlayoff = tt.playoff
			t.Cleanup(func() {
				flagSeason = ""
				flagPlayoff = false
			})

			season, err := seasonFromFlags(&config.Config{DefaultSeason: tt.pinned})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("seasonFromFlags() error: %v", err)
			}
			if season.Year != tt.wantYear {
				t.Errorf("year = %d, want %d", season.Year, tt.wantYear)
			}
			if season.Playoff != tt.playoff {
				t.Errorf("playoff = %v, want %v", season.Playoff, tt.playoff)
			}
		})
	}
}

func TestSeasonFromFlags_Calendar(t *testing.T) {
	flagSeason = ""
	flagPlayoff = false

	season, err := seasonFromFlags(&config.Config{})
	if err != nil {
		t.Fatalf("seasonFromFlags() error: %v", err)
	}
	if season.Year != stats.CurrentSeason() {
		t.Errorf("year = %d, want %d", season.Year, stats.CurrentSeason())
	}
}
