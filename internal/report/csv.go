package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSVWriter records every response via an embedded Collector and emits a
// single CSV document from Flush. Grounded on maxvaer/dirfuzz's
// CSVWriter, generalized to a whole recursion tree instead of one scan.
type CSVWriter struct {
	*Collector
	path string
}

// NewCSVWriter creates a CSV output writer. If path is empty, Flush
// writes to stdout.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{Collector: NewCollector(), path: path}
}

func (c *CSVWriter) Flush() error {
	out := os.Stdout
	if c.path != "" {
		f, err := os.Create(c.path)
		if err != nil {
			return fmt.Errorf("creating csv output %s: %w", c.path, err)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write([]string{"url", "status", "size", "redirect"}); err != nil {
		return err
	}
	for _, r := range c.Snapshot() {
		record := []string{
			r.URL,
			strconv.Itoa(r.StatusCode),
			strconv.FormatInt(r.ContentLength, 10),
			r.RedirectLocation,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

var _ Flusher = (*CSVWriter)(nil)
