// Package hook runs a user-supplied shell command for every response the
// Report Sink accepts, grounded on maxvaer/dirfuzz's internal/hook.Runner
// and trimmed to the fields the new scanner.Response carries.
package hook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/markvantol/dirhunt/internal/scanner"
)

// resultJSON is the JSON payload sent to the hook command via stdin.
type resultJSON struct {
	URL              string `json:"url"`
	StatusCode       int    `json:"status"`
	ContentLength    int64  `json:"size"`
	RedirectLocation string `json:"redirect,omitempty"`
}

// Runner executes a shell command for each reported response.
type Runner struct {
	cmd   string
	quiet bool
}

// NewRunner creates a hook runner. cmd is the shell command to execute.
func NewRunner(cmd string, quiet bool) *Runner {
	return &Runner{cmd: cmd, quiet: quiet}
}

// Run executes the hook command with the result as JSON on stdin.
// The command runs with a 30-second timeout. Errors are logged but
// do not halt the scan.
func (r *Runner) Run(resp *scanner.Response) {
	payload := resultJSON{
		URL:              resp.URL,
		StatusCode:       resp.StatusCode,
		ContentLength:    resp.ContentLength,
		RedirectLocation: resp.RedirectLocation,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[hook] marshal error: %v\n", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	shell, args := shellCommand()
	expanded := r.cmd
	expanded = strings.ReplaceAll(expanded, "{url}", resp.URL)
	expanded = strings.ReplaceAll(expanded, "{status}", fmt.Sprintf("%d", resp.StatusCode))
	expanded = strings.ReplaceAll(expanded, "{size}", fmt.Sprintf("%d", resp.ContentLength))

	cmd := exec.CommandContext(ctx, shell, append(args, expanded)...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		if !r.quiet {
			fmt.Fprintf(os.Stderr, "[hook] error: %v\n", err)
		}
		return
	}

	if len(output) > 0 && !r.quiet {
		fmt.Fprintf(os.Stderr, "[hook] %s", output)
	}
}

func shellCommand() (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}
	}
	return "sh", []string{"-c"}
}
