// Package report produces the run outputs: the CSV manifest of every
// processed ebook and the end-of-run genre summary table.
package report
