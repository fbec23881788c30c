// Package telegram provides Telegram Bot API integration for the KHL stats mini-app.
//
// The package supports sending messages with inline and Web App keyboards and
// long polling for updates via simple HTTP requests. No external dependencies
// required - uses only the standard library.
//
// Authentication requires a bot token (from @BotFather).
package telegram
