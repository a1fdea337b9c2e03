// Package prompter implements the interactive-mode genre prompt as a
// terminal text input.
package prompter
