// Package summarize extracts fixed-shape summary records from health
// export files. Parsing is delegated to format libraries; this package
// only reduces parsed data to the statistics the prompt needs.
package summarize

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/healthquery/cli/internal/models"
)

// SampleSize is the number of rows/points/records kept per summary.
const SampleSize = 10

// Summarizer turns one file of a known format into a summary record.
type Summarizer interface {
	// Name returns the unique name of the summarizer.
	Name() string
	// Extensions returns the file extensions this summarizer handles,
	// lower case, with leading dot.
	Extensions() []string
	// Summarize parses the file and reduces it to a summary.
	Summarize(filePath string) (models.Summary, error)
}

// Registry holds all available summarizers and dispatches by extension.
type Registry struct {
	summarizers []Summarizer
}

func NewRegistry() *Registry {
	return &Registry{
		summarizers: []Summarizer{
			NewCSVSummarizer(),
			NewGPXSummarizer(),
			NewFITSummarizer(),
		},
	}
}

// Register adds a summarizer to the registry.
func (r *Registry) Register(s Summarizer) {
	r.summarizers = append(r.summarizers, s)
}

// ForFile returns the summarizer for a file, matching its extension
// case-insensitively, or nil if the extension is unsupported.
func (r *Registry) ForFile(filePath string) Summarizer {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, s := range r.summarizers {
		for _, e := range s.Extensions() {
			if e == ext {
				return s
			}
		}
	}
	return nil
}

// ScanDir lists the files directly inside dir whose extension belongs to
// a registered summarizer, sorted by name. With foldCase false only
// exact lower-case extensions match.
func (r *Registry) ScanDir(dir string, foldCase bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	known := make(map[string]struct{})
	for _, s := range r.summarizers {
		for _, e := range s.Extensions() {
			known[e] = struct{}{}
		}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if foldCase {
			ext = strings.ToLower(ext)
		}
		if _, ok := known[ext]; ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
