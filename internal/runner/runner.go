// Package runner wires together configuration, the HTTP requester, the
// word list, the report writer and the Scan Coordinator into one
// executable pipeline, and resolves the multi-target surface (-u, -l,
// --cidr) into one Engine.Scan call per target.
//
// Grounded on maxvaer/dirfuzz's internal/runner.Run, trimmed of the
// crawl/resume/vhost passes that don't survive into this spec and
// rebuilt around internal/engine's S0-S6 state machine instead of the
// teacher's flat worker-pool-per-pass loop.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/markvantol/dirhunt/internal/config"
	"github.com/markvantol/dirhunt/internal/engine"
	"github.com/markvantol/dirhunt/internal/hook"
	"github.com/markvantol/dirhunt/internal/netutil"
	"github.com/markvantol/dirhunt/internal/pause"
	"github.com/markvantol/dirhunt/internal/report"
	"github.com/markvantol/dirhunt/internal/scanner"
	"github.com/markvantol/dirhunt/internal/wordlist"
	"github.com/markvantol/dirhunt/pkg/version"
)

// Run executes the full scan pipeline against every resolved target.
func Run(ctx context.Context, cfg *config.ScanConfig) error {
	targets, err := resolveTargets(cfg)
	if err != nil {
		return err
	}

	paths, err := wordlist.Load(cfg.WordlistPath, cfg.Extensions, cfg.ForceExtensions)
	if err != nil {
		return fmt.Errorf("loading wordlist: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("wordlist is empty")
	}

	req, err := scanner.NewRequester(cfg)
	if err != nil {
		return fmt.Errorf("creating requester: %w", err)
	}

	writer, counted, closer, flusher, err := buildWriter(cfg)
	if err != nil {
		return fmt.Errorf("creating output writer: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	var hookRunner *hook.Runner
	if cfg.OnResultCmd != "" {
		hookRunner = hook.NewRunner(cfg.OnResultCmd, cfg.Quiet)
	}

	pauser, cleanup := pause.StartStdinToggle(cfg.Quiet)
	defer cleanup()

	if !cfg.Quiet {
		printBanner(cfg, len(paths))
	}

	eng := engine.New(cfg, req, paths, writer, hookRunner, pauser)

	for idx, target := range targets {
		if len(targets) > 1 && !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "\n[*] Target %d/%d: %s\n", idx+1, len(targets), target)
		}
		baseDepth := engine.RootBaseDepth(target)
		eng.Scan(ctx, target, baseDepth)
		if ctx.Err() != nil {
			break
		}
	}

	if flusher != nil {
		if err := flusher.Flush(); err != nil {
			return fmt.Errorf("flushing output: %w", err)
		}
	}

	if cfg.Tree {
		if bc, ok := writer.(*report.ByteCounter); ok {
			if dirs, ok := bc.Inner().(interface{ Directories() []string }); ok {
				report.PrintTree(os.Stderr, dirs.Directories())
			}
		}
	}

	if !cfg.Quiet {
		totalBytes := int64(0)
		if counted != nil {
			totalBytes = counted.Total()
		}
		report.PrintSummary(os.Stderr, eng.Stats(), totalBytes)
	}

	return nil
}

// resolveTargets builds the list of base URLs to scan from -u, -l and
// --cidr, in that order.
func resolveTargets(cfg *config.ScanConfig) ([]string, error) {
	var targets []string

	if cfg.URL != "" {
		targets = append(targets, cfg.URL)
	}

	if cfg.URLsFile != "" {
		f, err := os.Open(cfg.URLsFile)
		if err != nil {
			return nil, fmt.Errorf("opening URLs file: %w", err)
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if !strings.HasPrefix(line, "http://") && !strings.HasPrefix(line, "https://") {
				line = "http://" + line
			}
			targets = append(targets, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading URLs file: %w", err)
		}
	}

	if cfg.CIDRTargets != "" {
		scheme := "https"
		if cfg.URL != "" && strings.HasPrefix(cfg.URL, "http://") {
			scheme = "http"
		}
		cidrURLs, err := netutil.ExpandTargets(cfg.CIDRTargets, cfg.Ports, scheme)
		if err != nil {
			return nil, fmt.Errorf("expanding CIDR: %w", err)
		}
		targets = append(targets, cidrURLs...)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets specified (-u, -l, or --cidr)")
	}
	return targets, nil
}

// byteCounter narrows report.ByteCounter to the method buildWriter needs,
// so callers don't have to import report just to read a total.
type byteCounter interface {
	Total() int64
}

// buildWriter assembles the report.Writer for cfg.OutputFormat, wrapping
// it in a ByteCounter for the summary footer and, for buffered formats,
// returning the Flusher half separately so Run can flush once every
// target has finished.
func buildWriter(cfg *config.ScanConfig) (writer report.Writer, counted byteCounter, closer report.Closer, flusher report.Flusher, err error) {
	var base report.Writer

	switch cfg.OutputFormat {
	case "json":
		jw := report.NewJSONWriter(cfg.OutputFile)
		base, flusher = jw, jw
	case "csv":
		cw := report.NewCSVWriter(cfg.OutputFile)
		base, flusher = cw, cw
	default:
		var inner report.Writer
		if cfg.OutputFile != "" {
			fw, ferr := report.NewFileWriter(cfg.OutputFile, cfg.Quiet)
			if ferr != nil {
				return nil, nil, nil, nil, ferr
			}
			inner, closer = fw, fw
		} else {
			inner = report.NewTerminalWriter(cfg.Quiet, cfg.NoColor)
		}

		if cfg.SortBy != "" {
			sw := report.NewSortedWriter(inner, cfg.SortBy)
			base, flusher = sw, sw
		} else {
			base = inner
		}
	}

	bc := report.NewByteCounter(base)
	return bc, bc, closer, flusher, nil
}

func printBanner(cfg *config.ScanConfig, pathCount int) {
	const (
		cyan  = "\033[36m"
		white = "\033[97m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	c, w, d, rs := cyan, white, dim, reset
	if cfg.NoColor {
		c, w, d, rs = "", "", "", ""
	}

	fmt.Fprintf(os.Stderr, `
%s     _____ _      __  __            __
%s    / ___/(_)____/ / / /_  ______  / /_
%s    \__ \/ / ___/ /_/ / / / / __ \/ __/
%s   ___/ / / /  / __  / /_/ / / / / /_
%s  /____/_/_/  /_/ /_/\__,_/_/ /_/\__/   %s %sv%s%s
`,
		c, c, c, c, c, rs, d, version.Version, rs)

	fmt.Fprintf(os.Stderr, "%s  ──────────────────────────────────────%s\n", d, rs)
	fmt.Fprintf(os.Stderr, "  %sTarget:%s       %s%s%s\n", d, rs, w, cfg.URL, rs)
	fmt.Fprintf(os.Stderr, "  %sThreads:%s      %s%d%s\n", d, rs, w, cfg.Threads, rs)
	fmt.Fprintf(os.Stderr, "  %sWordlist:%s     %s%d paths%s\n", d, rs, w, pathCount, rs)
	if len(cfg.Extensions) > 0 {
		fmt.Fprintf(os.Stderr, "  %sExtensions:%s   %s%s%s\n", d, rs, w, strings.Join(cfg.Extensions, ", "), rs)
	}
	if cfg.Recursive {
		fmt.Fprintf(os.Stderr, "  %sRecursion:%s    %son, max-depth %d%s\n", d, rs, w, cfg.MaxDepth, rs)
	}
	fmt.Fprintf(os.Stderr, "%s  ──────────────────────────────────────%s\n\n", d, rs)
}
