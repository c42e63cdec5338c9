// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"gstsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join(base, "incoming")
	cfg.Paths.TargetDir = filepath.Join(base, "organized")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.RunLog.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMode sets the processing mode on the test config.
func WithMode(mode string) ConfigOption {
	return func(c *config.Config) {
		c.Organize.Mode = mode
	}
}

// WithIncludeClientName toggles the global client-name folder suffix.
func WithIncludeClientName(include bool) ConfigOption {
	return func(c *config.Config) {
		c.Organize.IncludeClientName = include
	}
}

// WithClientOverride enables the folder suffix for a single client key.
func WithClientOverride(key string, include bool) ConfigOption {
	return func(c *config.Config) {
		if c.Organize.ClientOverrides == nil {
			c.Organize.ClientOverrides = map[string]bool{}
		}
		c.Organize.ClientOverrides[key] = include
	}
}
