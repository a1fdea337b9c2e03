// Package scanner enumerates ebook files beneath a library root and exposes
// the extension allow-list and folder rules shared with progress
// reconciliation.
package scanner
