// Package workflow runs the organization pipeline end to end: it locks the
// library against concurrent runs, seeds progress from existing genre folders
// on first use, then scans, classifies, moves, and records each pending ebook
// before writing the CSV manifest and run summary.
package workflow
