// Package testutil provides fixture helpers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes a fixture file into dir and returns its full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}
