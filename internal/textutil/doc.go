// Package textutil provides small text helpers shared across packages:
// filename sanitization for genre folders and title cleanup for
// classification prompts.
package textutil
