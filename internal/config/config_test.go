package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/healthquery/cli/internal/ollama"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, ollama.DefaultModel, cfg.Model)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)
	assert.True(t, cfg.FoldCase)
	assert.Empty(t, cfg.Query)
}

func TestFinalizeHost(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")

	cfg := Default()
	cfg.Finalize()
	assert.Equal(t, ollama.DefaultHost, cfg.Host)

	cfg = Default()
	cfg.Host = "http://gpu-box:11434/"
	cfg.Finalize()
	assert.Equal(t, "http://gpu-box:11434", cfg.Host)
}
