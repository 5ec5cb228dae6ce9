package report

import (
	"encoding/json"
	"fmt"
	"os"
)

type jsonEntry struct {
	URL              string `json:"url"`
	StatusCode       int    `json:"status"`
	ContentLength    int64  `json:"size"`
	RedirectLocation string `json:"redirect,omitempty"`
}

// JSONWriter records every response via an embedded Collector and emits
// a single JSON array from Flush. Grounded on maxvaer/dirfuzz's
// JSONWriter, generalized to a whole recursion tree instead of one scan.
type JSONWriter struct {
	*Collector
	path string
}

// NewJSONWriter creates a JSON output writer. If path is empty, Flush
// writes to stdout.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{Collector: NewCollector(), path: path}
}

// Flush encodes every recorded response as a JSON array to the
// configured path (or stdout).
func (j *JSONWriter) Flush() error {
	out := os.Stdout
	if j.path != "" {
		f, err := os.Create(j.path)
		if err != nil {
			return fmt.Errorf("creating json output %s: %w", j.path, err)
		}
		defer f.Close()
		out = f
	}

	entries := make([]jsonEntry, 0)
	for _, r := range j.Snapshot() {
		entries = append(entries, jsonEntry{
			URL:              r.URL,
			StatusCode:       r.StatusCode,
			ContentLength:    r.ContentLength,
			RedirectLocation: r.RedirectLocation,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

var (
	_ Writer  = (*JSONWriter)(nil)
	_ Flusher = (*JSONWriter)(nil)
	_ Writer  = (*Collector)(nil)
)
