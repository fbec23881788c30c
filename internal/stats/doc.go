// Package stats provides types and functions for working with KHL player
// statistics.
//
// The stats package defines the player record produced by the scraper, the
// season identity used to address a standings table, and the pure search and
// lookup helpers that operate on slices of player records. It has no I/O of
// its own; fetching and caching live in the scraper and provider packages.
package stats
