package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markvantol/dirhunt/internal/scanner"
)

func TestFileWriterAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w, err := NewFileWriter(path, false)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	if err := w.Write(&scanner.Response{URL: "http://h/a", StatusCode: 200, ContentLength: 5}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write(&scanner.Response{URL: "http://h/b", StatusCode: 301, ContentLength: 0}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "http://h/a") || !strings.Contains(lines[0], "200") {
		t.Errorf("unexpected first line: %q", lines[0])
	}
}

func TestFileWriterQuietWritesBareURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w, err := NewFileWriter(path, true)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	_ = w.Write(&scanner.Response{URL: "http://h/a", StatusCode: 200})
	_ = w.Close()

	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "http://h/a" {
		t.Fatalf("expected bare url line, got %q", string(data))
	}
}

func TestFileWriterReopenAppendsNotTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w1, _ := NewFileWriter(path, true)
	_ = w1.Write(&scanner.Response{URL: "http://h/a"})
	_ = w1.Close()

	w2, err := NewFileWriter(path, true)
	if err != nil {
		t.Fatalf("NewFileWriter (reopen): %v", err)
	}
	_ = w2.Write(&scanner.Response{URL: "http://h/b"})
	_ = w2.Close()

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected append to preserve both lines, got %v", lines)
	}
}
