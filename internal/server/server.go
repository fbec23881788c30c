package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hfigen/khl-miniapp/internal/config"
	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/stats"
)

// StatsProvider is the slice of the season provider the handlers need.
// *provider.Provider satisfies it; tests substitute mocks.
type StatsProvider interface {
	SearchPlayers(season stats.Season, query string, limit int) ([]stats.PlayerStat, error)
	FindPlayer(season stats.Season, name string) (stats.PlayerStat, error)
}

// Server builds the HTTP API around a stats provider.
type Server struct {
	provider      StatsProvider
	webDir        string
	corsOrigins   []string
	defaultSeason int
	searchLimit   int
}

// New creates a server serving cfg's web directory and season defaults.
func New(p StatsProvider, cfg *config.Config) *Server {
	return &Server{
		provider:      p,
		webDir:        cfg.WebDir,
		corsOrigins:   cfg.CORSOrigins,
		defaultSeason: cfg.DefaultSeason,
		searchLimit:   cfg.SearchLimit,
	}
}

// Router assembles the chi handler tree with middleware, API routes and the
// static mini-app page.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	// Scrapes of uncached seasons can take up to the 30s fetch timeout
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration; the mini-app page is served from Telegram's webview
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Routes
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/stats", s.handleStats)
	})

	// Mini-app page and assets
	if s.webDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.webDir)))
	}

	return r
}

// requestLogger logs one line per request through the structured logger and
// feeds the request timing metric.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		logger.Debug("Request served", logger.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"status":  ww.Status(),
			"bytes":   ww.BytesWritten(),
			"elapsed": elapsed.String(),
		})
		logger.RecordTiming("http.request", elapsed)
	})
}
