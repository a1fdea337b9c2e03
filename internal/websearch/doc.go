// Package websearch fetches public DuckDuckGo HTML results for a book title
// and extracts result snippets for downstream genre inference. No API key is
// required; the HTML endpoint is scraped directly.
package websearch
