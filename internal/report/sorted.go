package report

import (
	"sort"

	"github.com/markvantol/dirhunt/internal/scanner"
)

// SortedWriter buffers every response via an embedded Collector and, on
// Flush, replays them in sorted order through an inner Writer. Grounded
// on maxvaer/dirfuzz's SortedWriter, which wrapped any other Writer the
// same way.
type SortedWriter struct {
	*Collector
	inner Writer
	by    string
}

// NewSortedWriter wraps inner, replaying results ordered by by ("status",
// "size", or "url"; anything else preserves arrival order).
func NewSortedWriter(inner Writer, by string) *SortedWriter {
	return &SortedWriter{Collector: NewCollector(), inner: inner, by: by}
}

// Flush sorts every recorded response and writes each through inner,
// then flushes inner if it buffers as well.
func (s *SortedWriter) Flush() error {
	results := s.Snapshot()
	sort.SliceStable(results, func(i, j int) bool {
		switch s.by {
		case "status":
			return results[i].StatusCode < results[j].StatusCode
		case "size":
			return results[i].ContentLength < results[j].ContentLength
		case "url":
			return results[i].URL < results[j].URL
		default:
			return false
		}
	})

	for _, r := range results {
		if err := s.inner.Write(r); err != nil {
			return err
		}
	}
	if f, ok := s.inner.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

var (
	_ Flusher = (*SortedWriter)(nil)
	_         = scanner.Response{}
)
