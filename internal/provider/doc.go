// Package provider serves season player tables from a bounded in-memory
// cache in front of the scraper.
//
// Each season is fetched at most once while cached; the ten most recently
// used seasons are kept and older ones are evicted. Failed fetches are never
// cached, so a flaky upstream page is retried on the next request.
// Concurrent requests for the same uncached season share one fetch.
package provider
