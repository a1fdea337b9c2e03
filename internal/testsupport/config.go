package testsupport

import (
	"path/filepath"
	"testing"

	"bindery/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.CSVPath = filepath.Join(base, "library", "ebook_organization.csv")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithSearchDisabled turns off the web search strategy on the test config.
func WithSearchDisabled() ConfigOption {
	return func(c *config.Config) {
		c.Search.Enabled = false
	}
}

// WithProgressInterval overrides the progress reporting cadence.
func WithProgressInterval(n int) ConfigOption {
	return func(c *config.Config) {
		c.Workflow.ProgressInterval = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LibraryDir)
}
