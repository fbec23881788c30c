// Package server exposes the player statistics HTTP API and serves the
// mini-app page.
//
// Routes: /api/search for prefix search, /api/stats for exact lookup,
// /health and /metrics for operations, and the configured web directory at
// the root. Responses are JSON. Error status codes follow the provider's
// taxonomy: bad input 400, unknown player 404, upstream failures 500.
package server
