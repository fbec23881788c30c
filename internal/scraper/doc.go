// Package scraper provides HTTP fetching and HTML parsing for KHL player
// statistics from allhockey.ru.
//
// The scraper fetches one standings page per season and extracts player rows
// from the statistics table. The table is located by its "Игрок" header cell
// rather than by markup position, so cosmetic page changes do not break
// parsing. Malformed rows are skipped without failing the whole page.
package scraper
