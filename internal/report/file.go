package report

import (
	"fmt"
	"os"
	"sync"

	"github.com/markvantol/dirhunt/internal/scanner"
)

// FileWriter appends formatted lines to an output file, flushing after
// every record so partial results survive abrupt termination (spec.md
// §4.5 file variant). Safe for concurrent use: every nested Scan in a
// recursion tree shares one FileWriter.
type FileWriter struct {
	f     *os.File
	quiet bool
	mu    sync.Mutex
}

// NewFileWriter opens path in create-or-append mode.
func NewFileWriter(path string, quiet bool) (*FileWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening output file %s: %w", path, err)
	}
	return &FileWriter{f: f, quiet: quiet}, nil
}

func (w *FileWriter) Write(resp *scanner.Response) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.quiet {
		_, err = fmt.Fprintf(w.f, "%s\n", resp.URL)
	} else {
		_, err = fmt.Fprintf(w.f, "%3d %10d %s\n", resp.StatusCode, resp.ContentLength, resp.URL)
	}
	if err != nil {
		return err
	}
	return w.f.Sync()
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
