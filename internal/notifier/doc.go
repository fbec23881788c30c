// Package notifier provides interfaces and implementations for announcing KHL scoring leaders.
//
// The notifier package supports publishing leader digests to various platforms
// including Twitter and Telegram. It handles OAuth authentication and message
// formatting for each channel.
package notifier
