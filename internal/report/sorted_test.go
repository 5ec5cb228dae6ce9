package report

import (
	"os"
	"testing"

	"github.com/markvantol/dirhunt/internal/scanner"
)

type recordingWriter struct {
	urls []string
}

func (r *recordingWriter) Write(resp *scanner.Response) error {
	r.urls = append(r.urls, resp.URL)
	return nil
}

func TestSortedWriterByStatus(t *testing.T) {
	inner := &recordingWriter{}
	sw := NewSortedWriter(inner, "status")

	_ = sw.Write(&scanner.Response{URL: "http://h/c", StatusCode: 500})
	_ = sw.Write(&scanner.Response{URL: "http://h/a", StatusCode: 200})
	_ = sw.Write(&scanner.Response{URL: "http://h/b", StatusCode: 301})

	if err := sw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := []string{"http://h/a", "http://h/b", "http://h/c"}
	if len(inner.urls) != len(want) {
		t.Fatalf("got %v, want %v", inner.urls, want)
	}
	for i := range want {
		if inner.urls[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, inner.urls[i], want[i])
		}
	}
}

func TestSortedWriterByURLStable(t *testing.T) {
	inner := &recordingWriter{}
	sw := NewSortedWriter(inner, "url")

	_ = sw.Write(&scanner.Response{URL: "http://h/z", StatusCode: 200})
	_ = sw.Write(&scanner.Response{URL: "http://h/a", StatusCode: 200})

	_ = sw.Flush()
	if inner.urls[0] != "http://h/a" || inner.urls[1] != "http://h/z" {
		t.Fatalf("expected sorted order, got %v", inner.urls)
	}
}

func TestSortedWriterFlushesInnerWhenFlusher(t *testing.T) {
	path := t.TempDir() + "/out.json"
	jw := NewJSONWriter(path)
	sw := NewSortedWriter(jw, "size")

	_ = sw.Write(&scanner.Response{URL: "http://h/a", ContentLength: 10})
	if err := sw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected inner JSONWriter to have flushed to disk: %v", err)
	}
}
