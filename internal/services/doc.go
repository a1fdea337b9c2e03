// Package services defines the shared error taxonomy for external
// integrations (inference oracle, web search, filesystem moves).
package services
