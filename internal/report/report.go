// Package report implements the Report Sink (spec.md §4.5): the single
// consumer of a Scan's report channel, responsible for formatting and
// emitting every response that survived the filter chain.
//
// Grounded on maxvaer/dirfuzz's internal/output package (Writer interface,
// terminal/file/JSON/CSV/sorted variants), reshaped around the trimmed
// scanner.Response the new filter pipeline produces, and on
// original_source/src/scanner.rs's spawn_terminal_reporter/
// spawn_file_reporter for the streaming, flush-per-record contract §4.5
// specifies.
package report

import (
	"log/slog"

	"github.com/markvantol/dirhunt/internal/hook"
	"github.com/markvantol/dirhunt/internal/progress"
	"github.com/markvantol/dirhunt/internal/scanner"
)

// Writer formats and emits a single reported response. Implementations
// must be safe for concurrent use: every Scan in a recursion tree shares
// one Writer instance.
type Writer interface {
	Write(resp *scanner.Response) error
}

// Flusher is implemented by writers that buffer results instead of
// emitting them immediately (JSON, CSV, sorted replay). Run does not call
// Flush itself — spec.md's baseline sink flushes per record — callers
// invoke it once after the root scan's tree has fully drained.
type Flusher interface {
	Flush() error
}

// Closer is implemented by writers that hold an open file handle.
type Closer interface {
	Close() error
}

// Run consumes rx until it is closed, handing each response to w and,
// if hookRunner is non-nil, firing the on-result hook. bar may be nil; if
// set, ClearLine/Redraw bracket each write so the progress bar is never
// corrupted by an interleaved report line.
func Run(rx <-chan *scanner.Response, w Writer, bar *progress.Bar, hookRunner *hook.Runner) {
	for resp := range rx {
		if bar != nil {
			bar.ClearLine()
		}
		if err := w.Write(resp); err != nil {
			slog.Warn("writing report line failed", "url", resp.URL, "error", err)
		}
		if bar != nil {
			bar.Redraw()
		}
		if hookRunner != nil {
			hookRunner.Run(resp)
		}
	}
}
