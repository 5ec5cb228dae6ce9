package report

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/markvantol/dirhunt/internal/scanner"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestTerminalWriterQuietPrintsBareURL(t *testing.T) {
	tw := NewTerminalWriter(true, true)
	out := captureStdout(t, func() {
		tw.Write(&scanner.Response{URL: "http://h/admin", StatusCode: 200, ContentLength: 1234})
	})
	if strings.TrimSpace(out) != "http://h/admin" {
		t.Fatalf("quiet output = %q, want bare url", out)
	}
}

func TestTerminalWriterVerboseIncludesStatusAndSize(t *testing.T) {
	tw := NewTerminalWriter(false, true)
	out := captureStdout(t, func() {
		tw.Write(&scanner.Response{URL: "http://h/admin", StatusCode: 200, ContentLength: 1234})
	})
	if !strings.Contains(out, "200") || !strings.Contains(out, "1234") || !strings.Contains(out, "http://h/admin") {
		t.Fatalf("verbose output missing a field: %q", out)
	}
}
