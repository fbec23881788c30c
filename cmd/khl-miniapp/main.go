package main

import (
	"github.com/hfigen/khl-miniapp/internal/cli"
	"github.com/hfigen/khl-miniapp/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file; absence is fine, the environment may be set directly
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables", nil)
	}

	cli.Execute()
}
