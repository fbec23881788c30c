package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/hfigen/khl-miniapp/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mini-app HTTP API and static page",
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&flagListen, "listen", "", "Listen address (overrides LISTEN_ADDR)")

	return cmd
}

// runServe starts the HTTP server and blocks until a signal or server error
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagListen != "" {
		cfg.ListenAddr = flagListen
	}

	srv := server.New(newProvider(cfg), cfg)

	httpServer := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     srv.Router(),
		ReadTimeout: 15 * time.Second,
		// Must outlast the router's 60s handler timeout or a slow scrape
		// gets cut off mid-response
		WriteTimeout: 75 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.Fields{
			"addr":    cfg.ListenAddr,
			"web_dir": cfg.WebDir,
		})
		serverErrors <- httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("Shutting down", logger.Fields{"signal": sig.String()})

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			if closeErr := httpServer.Close(); closeErr != nil {
				logger.Error("Could not stop server", nil, closeErr)
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	logger.Info("Shutdown complete", nil)
	return nil
}
