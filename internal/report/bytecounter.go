package report

import (
	"sync/atomic"

	"github.com/markvantol/dirhunt/internal/scanner"
)

// ByteCounter wraps a Writer and tallies ContentLength across every
// response that passes through it, regardless of output format. Used to
// feed PrintSummary's humanized byte total even when the active Writer
// (Terminal, File) doesn't buffer results the way Collector-backed writers
// do.
type ByteCounter struct {
	inner Writer
	total atomic.Int64
}

// NewByteCounter wraps inner.
func NewByteCounter(inner Writer) *ByteCounter {
	return &ByteCounter{inner: inner}
}

func (b *ByteCounter) Write(resp *scanner.Response) error {
	if resp.ContentLength > 0 {
		b.total.Add(resp.ContentLength)
	}
	return b.inner.Write(resp)
}

// Total returns the cumulative ContentLength recorded so far.
func (b *ByteCounter) Total() int64 {
	return b.total.Load()
}

// Inner returns the wrapped Writer, letting callers reach format-specific
// behavior (e.g. a Collector-backed writer's Directories) ByteCounter
// itself doesn't expose.
func (b *ByteCounter) Inner() Writer {
	return b.inner
}

// Flush delegates to inner if it buffers output.
func (b *ByteCounter) Flush() error {
	if f, ok := b.inner.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close delegates to inner if it holds a file handle.
func (b *ByteCounter) Close() error {
	if c, ok := b.inner.(Closer); ok {
		return c.Close()
	}
	return nil
}

var (
	_ Writer  = (*ByteCounter)(nil)
	_ Flusher = (*ByteCounter)(nil)
	_ Closer  = (*ByteCounter)(nil)
)
