// Package worker implements the per-word Request Worker (spec.md §4.4):
// expand one wordlist entry into candidate URLs, request each, attempt
// recursion on directory-shaped responses, and forward survivors to the
// report channel.
//
// Grounded on original_source/src/scanner.rs's make_requests/try_recursion,
// generalized from Rust's per-word tokio::spawn into a plain function a
// bounded goroutine pool (internal/engine) calls directly — mirroring how
// maxvaer/dirfuzz's RunWorkerPool hands each pool slot a unit of work.
package worker

import (
	"context"
	"log/slog"

	"github.com/markvantol/dirhunt/internal/chanx"
	"github.com/markvantol/dirhunt/internal/classify"
	"github.com/markvantol/dirhunt/internal/config"
	"github.com/markvantol/dirhunt/internal/filter"
	"github.com/markvantol/dirhunt/internal/pause"
	"github.com/markvantol/dirhunt/internal/progress"
	"github.com/markvantol/dirhunt/internal/scanner"
	"github.com/markvantol/dirhunt/internal/urlx"
)

// Work expands word against target, issues one request per resulting URL,
// and routes each response to recursion and/or the report sink. pauser may
// be nil, meaning the worker never suspends for a pause toggle.
func Work(
	ctx context.Context,
	target, word string,
	baseDepth int,
	cfg *config.ScanConfig,
	req *scanner.Requester,
	chain *filter.Chain,
	recursionTx chanx.Sender[string],
	reportTx chanx.Sender[*scanner.Response],
	bar *progress.Bar,
	pauser *pause.Pauser,
) {
	urls := urlx.Expand(target, word, cfg.Extensions, cfg.AddSlash, cfg.Queries)

	for _, u := range urls {
		if pauser != nil {
			pauser.Wait()
		}

		resp, err := req.Do(ctx, u)
		if err != nil {
			slog.Debug("request failed", "url", u, "error", err)
			bar.IncrementErrors()
			continue
		}

		if cfg.Recursive && classify.IsDirectory(resp) && withinDepth(resp.URL, baseDepth, cfg.MaxDepth) {
			if !recursionTx.Send(resp.URL) {
				slog.Debug("recursion channel closed, dropping candidate", "url", resp.URL)
			}
		}

		// Recursion is attempted before filtering: a page filtered out of
		// the report can still seed further scanning.
		if discard, reason := chain.Apply(resp); discard {
			bar.IncrementFiltered()
			slog.Debug("response filtered", "url", resp.URL, "reason", reason)
			continue
		}

		if !reportTx.Send(resp) {
			slog.Debug("report channel closed, dropping result", "url", resp.URL)
			continue
		}
		bar.IncrementFound()
	}

	bar.Increment()
}

// withinDepth reports whether urlStr is still within the configured
// recursion depth relative to baseDepth. maxDepth == 0 means unbounded.
func withinDepth(urlStr string, baseDepth, maxDepth int) bool {
	if maxDepth == 0 {
		return true
	}
	return urlx.CurrentDepth(urlStr)-baseDepth < maxDepth
}
