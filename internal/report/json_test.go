package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/markvantol/dirhunt/internal/scanner"
)

func TestJSONWriterFlushWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	jw := NewJSONWriter(path)

	_ = jw.Write(&scanner.Response{URL: "http://h/a", StatusCode: 200, ContentLength: 10})
	_ = jw.Write(&scanner.Response{URL: "http://h/b", StatusCode: 301, RedirectLocation: "http://h/b/"})

	if err := jw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []jsonEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].RedirectLocation != "http://h/b/" {
		t.Errorf("expected redirect location preserved, got %q", entries[1].RedirectLocation)
	}
}

func TestJSONWriterEmptyProducesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	jw := NewJSONWriter(path)
	if err := jw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	data, _ := os.ReadFile(path)
	var entries []jsonEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty array, got %v", entries)
	}
}
