// Package bot runs the Telegram bot that launches the stats mini-app.
//
// The bot long-polls for updates and answers a small command set: /start
// replies with the mini-app keyboard, /top posts the scoring race for a
// season, /help lists the commands. Button presses arrive as callback
// queries and are routed the same way.
package bot
