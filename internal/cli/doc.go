// Package cli implements the command-line interface for khl-miniapp.
//
// The cli package provides the Cobra-based CLI with subcommands for serving
// the mini-app HTTP API (serve), running the Telegram launcher bot (bot),
// posting the scoring leaders digest (announce) and printing player
// statistics to the terminal (players), with text/JSON output formatting
// and sorting. It wires the scraper, provider, server, bot and notifier
// packages together.
package cli
