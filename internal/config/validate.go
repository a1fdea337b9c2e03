package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOllama(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateOrganizer(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return errors.New("paths.library_dir must be set")
	}
	if !filepath.IsAbs(c.Paths.LibraryDir) {
		return fmt.Errorf("paths.library_dir must be absolute, got %q", c.Paths.LibraryDir)
	}
	return nil
}

func (c *Config) validateOllama() error {
	parsed, err := url.Parse(c.Ollama.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("ollama.base_url must be a valid URL, got %q", c.Ollama.BaseURL)
	}
	if c.Ollama.Temperature > 2 {
		return errors.New("ollama.temperature must be between 0 and 2")
	}
	return nil
}

func (c *Config) validateSearch() error {
	if !c.Search.Enabled {
		return nil
	}
	parsed, err := url.Parse(c.Search.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("search.base_url must be a valid URL, got %q", c.Search.BaseURL)
	}
	return nil
}

func (c *Config) validateOrganizer() error {
	dir := c.Organizer.UnsortedDir
	if strings.ContainsAny(dir, `/\`) {
		return fmt.Errorf("organizer.unsorted_dir must be a bare folder name, got %q", dir)
	}
	return nil
}
