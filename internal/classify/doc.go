// Package classify determines an ebook's genre through an ordered cascade of
// strategies: cleaned-filename analysis, content sampling, web search
// enrichment, and a mode-dependent fallback. The first strategy to produce a
// concrete genre wins; strategy failures are logged and skipped so a flaky
// oracle or network never aborts a run.
package classify
