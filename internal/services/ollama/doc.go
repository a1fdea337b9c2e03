// Package ollama wraps a local Ollama generate endpoint. The classifier
// treats it as a black box that turns a prompt into either a genre name or an
// uncertainty sentinel; all prompt construction lives in internal/classify.
package ollama
