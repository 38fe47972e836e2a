// Package config holds the runtime configuration of the analyzer.
package config

import (
	"time"

	"github.com/healthquery/cli/internal/ollama"
)

// Config is filled from flags, then completed from the environment.
// There is no config file; everything is per-invocation.
type Config struct {
	// Dir is the directory scanned for data files.
	Dir string
	// Model is the Ollama model identifier.
	Model string
	// Query is the user's free-form question; empty selects the default
	// analysis questions.
	Query string
	// Host is the model server base URL; empty falls back to OLLAMA_HOST
	// and then the local default.
	Host string
	// Timeout bounds the whole model request; zero disables the bound.
	Timeout time.Duration
	// FoldCase makes discovery match extensions case-insensitively, so
	// exports named like ACTIVITY.CSV are picked up too.
	FoldCase bool
	// ShowPrompt prints the assembled prompt before contacting the model.
	ShowPrompt bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Dir:      ".",
		Model:    ollama.DefaultModel,
		Timeout:  5 * time.Minute,
		FoldCase: true,
	}
}

// Finalize resolves values that depend on the environment.
func (c *Config) Finalize() {
	c.Host = ollama.Host(c.Host)
}
