// Package progress persists which ebooks have been classified so long
// library scans can resume across runs.
//
// The store keeps one row per processed file, so "processed" and "has a
// manifest row" are a single atomic fact. Every mark is transactional;
// interrupting a run loses nothing beyond the file currently in flight.
// Schema changes are applied through embedded, versioned migrations.
//
// When the database file does not exist yet, Reconcile derives prior progress
// from the library layout itself: any non-system folder directly containing
// ebooks is treated as a genre folder produced by an earlier run (or by
// hand), and its contents are marked processed without re-classification.
package progress
