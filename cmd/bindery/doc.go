// Command bindery classifies ebooks into genre folders using a local Ollama
// model, with web search enrichment and an optional interactive prompt for
// books nothing else can place.
package main
