package report

import (
	"fmt"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/markvantol/dirhunt/internal/scanner"
)

// TerminalWriter formats reported responses for stdout, colorizing the
// status code by class. Grounded on maxvaer/dirfuzz's TextWriter; line
// layout follows spec.md §4.5/§6's file-format contract so terminal and
// file output agree byte-for-byte modulo color codes.
type TerminalWriter struct {
	quiet   bool
	noColor bool
	mu      sync.Mutex
}

// NewTerminalWriter creates a writer printing to stdout.
func NewTerminalWriter(quiet, noColor bool) *TerminalWriter {
	return &TerminalWriter{quiet: quiet, noColor: noColor}
}

func (t *TerminalWriter) Write(resp *scanner.Response) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.quiet {
		_, err := fmt.Fprintln(os.Stdout, resp.URL)
		return err
	}

	status := fmt.Sprintf("%3d", resp.StatusCode)
	if !t.noColor {
		status = statusColor(resp.StatusCode)(status)
	}

	_, err := fmt.Fprintf(os.Stdout, "%s %10d %s\n", status, resp.ContentLength, resp.URL)
	return err
}

// statusColor returns the fatih/color sprint function for code's class,
// mirroring the 2xx/3xx/4xx-5xx palette spec.md §4.5 names.
func statusColor(code int) func(a ...interface{}) string {
	switch {
	case code >= 200 && code < 300:
		return color.New(color.FgGreen).SprintFunc()
	case code >= 300 && code < 400:
		return color.New(color.FgYellow).SprintFunc()
	case code >= 400 && code < 600:
		return color.New(color.FgRed).SprintFunc()
	default:
		return color.New(color.FgWhite).SprintFunc()
	}
}
