package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/stats"
)

// searchResponse always carries an array, never null, so the mini-app can
// iterate without guarding.
type searchResponse struct {
	Players []stats.PlayerStat `json:"players"`
}

type statsResponse struct {
	Stats stats.PlayerStat `json:"stats"`
}

// errorResponse is the API error body; the mini-app shows Error directly.
type errorResponse struct {
	Error string `json:"error"`
}

// handleSearch serves GET /api/search?q=&season=&playoff=.
// A blank query returns an empty list without touching the provider.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		respondJSON(w, http.StatusOK, searchResponse{Players: []stats.PlayerStat{}})
		return
	}

	season, err := s.seasonFromRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season parameter", err)
		return
	}

	players, err := s.provider.SearchPlayers(season, query, s.searchLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch statistics", err)
		return
	}

	respondJSON(w, http.StatusOK, searchResponse{Players: players})
}

// handleStats serves GET /api/stats?player=&season=&playoff=. Both player
// and season are required.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("player")
	seasonParam := r.URL.Query().Get("season")
	if strings.TrimSpace(name) == "" || strings.TrimSpace(seasonParam) == "" {
		respondError(w, http.StatusBadRequest, "Missing player or season parameter", nil)
		return
	}

	year, err := stats.ParseSeason(seasonParam)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid season parameter", err)
		return
	}
	season := stats.Season{Year: year, Playoff: isPlayoff(r)}

	player, err := s.provider.FindPlayer(season, name)
	switch {
	case errors.Is(err, stats.ErrNotFound):
		respondError(w, http.StatusNotFound, "Player not found", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to fetch statistics", err)
		return
	}

	respondJSON(w, http.StatusOK, statsResponse{Stats: player})
}

// handleHealth returns service health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "khl-miniapp",
	})
}

// handleMetrics returns the in-process metrics snapshot
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, logger.GetMetricsSnapshot())
}

// seasonFromRequest resolves the optional season and playoff parameters,
// falling back to the configured default and then the calendar.
func (s *Server) seasonFromRequest(r *http.Request) (stats.Season, error) {
	season := stats.Season{Playoff: isPlayoff(r)}

	param := r.URL.Query().Get("season")
	if strings.TrimSpace(param) == "" {
		season.Year = s.defaultSeason
		if season.Year == 0 {
			season.Year = stats.CurrentSeason()
		}
		return season, nil
	}

	year, err := stats.ParseSeason(param)
	if err != nil {
		return stats.Season{}, err
	}
	season.Year = year
	return season, nil
}

// isPlayoff reports whether the playoff query flag is set
func isPlayoff(r *http.Request) bool {
	switch strings.ToLower(r.URL.Query().Get("playoff")) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", nil, err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error(message, logger.Fields{"status": status}, err)
	} else {
		logger.Warn(message, logger.Fields{"status": status})
	}

	respondJSON(w, status, errorResponse{Error: message})
}
