// Package engine implements the Scan Coordinator (spec.md §4.8): the
// state machine that owns one Scan's channels, worker pool, wildcard
// calibration, report sink and recursion dispatcher, and drives them
// through setup, production, and the ordered shutdown in which the parent
// waits for every child scan before closing its own report channel. Each
// child Scan owns its own channels and report sink; all of them write to
// the one shared report Writer.
//
// Grounded on original_source/src/scanner.rs's scan_url, the single
// entrypoint that wires together spawn_file_reporter/spawn_terminal_reporter,
// spawn_recursion_handler, heuristics::wildcard_test and make_requests, and
// on maxvaer/dirfuzz's RunWorkerPool bounded-concurrency pattern for the
// per-Scan thread cap.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/markvantol/dirhunt/internal/chanx"
	"github.com/markvantol/dirhunt/internal/config"
	"github.com/markvantol/dirhunt/internal/filter"
	"github.com/markvantol/dirhunt/internal/hook"
	"github.com/markvantol/dirhunt/internal/pause"
	"github.com/markvantol/dirhunt/internal/progress"
	"github.com/markvantol/dirhunt/internal/recursion"
	"github.com/markvantol/dirhunt/internal/report"
	"github.com/markvantol/dirhunt/internal/scanner"
	"github.com/markvantol/dirhunt/internal/urlx"
	"github.com/markvantol/dirhunt/internal/wildcard"
	"github.com/markvantol/dirhunt/internal/worker"
)

// channelBufferPerThread sizes the report/recursion channel buffer per
// configured thread, so a worker's channel send practically never blocks
// on the single consumer goroutine regardless of how many extensions or
// recursion candidates one word produces.
const channelBufferPerThread = 32

// engineStats aggregates counters across every Scan in a recursion tree:
// each nested Scan has its own local *progress.Bar (spec.md leaves
// multi-bar coordination across a recursion tree unspecified), so totals
// are folded in here once a Scan's bar stops.
type engineStats struct {
	completed atomic.Int64
	filtered  atomic.Int64
	errors    atomic.Int64
	found     atomic.Int64
	start     time.Time
}

// Engine holds everything shared read-only across every Scan in one
// recursion tree: configuration, the HTTP client, the word list, the
// report writer and the pauser. It is constructed once per process and its
// Scan method is called recursively by the Recursion Dispatcher.
type Engine struct {
	cfg        *config.ScanConfig
	req        *scanner.Requester
	wordlist   []string
	writer     report.Writer
	hookRunner *hook.Runner
	pauser     *pause.Pauser
	stats      *engineStats
}

// New builds an Engine ready to run scans. writer receives every response
// that survives its Scan's filter chain, shared across every nested Scan in
// the recursion tree; hookRunner and pauser may be nil.
func New(cfg *config.ScanConfig, req *scanner.Requester, wordlist []string, writer report.Writer, hookRunner *hook.Runner, pauser *pause.Pauser) *Engine {
	return &Engine{
		cfg: cfg, req: req, wordlist: wordlist, writer: writer, hookRunner: hookRunner, pauser: pauser,
		stats: &engineStats{start: time.Now()},
	}
}

// Stats returns the counters accumulated across every Scan run by this
// Engine so far (elapsed time is measured from Engine construction, not
// from any single Scan call).
func (e *Engine) Stats() progress.Stats {
	return progress.Stats{
		Completed: e.stats.completed.Load(),
		Filtered:  e.stats.filtered.Load(),
		Errors:    e.stats.errors.Load(),
		Found:     e.stats.found.Load(),
		Elapsed:   time.Since(e.stats.start),
	}
}

// Scan runs the S0-S6 state machine for one target URL, recursing into
// directories it discovers (when enabled) before returning. baseDepth
// anchors max-depth enforcement for this entire recursion subtree: the
// root call passes the target's own current depth, and every recursive
// child Scan must be given that same value, not its own.
func (e *Engine) Scan(ctx context.Context, target string, baseDepth int) {
	slog.Info("starting scan", "target", target)

	// S0 Setup. Report/recursion channels are buffered generously (scaled
	// to the thread count) so a worker's Send rarely waits on the single
	// consumer goroutine. The buffer is bounded: once it is full, Send
	// blocks until the consumer catches up.
	chanBuf := e.cfg.Threads * channelBufferPerThread
	if chanBuf < channelBufferPerThread {
		chanBuf = channelBufferPerThread
	}
	reportTx, reportRx := chanx.New[*scanner.Response](chanBuf)
	recursionTx, recursionRx := chanx.New[string](chanBuf)

	// expected counts candidate URLs, but workers advance the bar once per
	// word, so with extensions the completed count stays below this total.
	expected := len(e.wordlist)
	if n := len(e.cfg.Extensions); n > 0 {
		expected *= n + 1
	}
	bar := progress.New(expected, e.cfg.Quiet, e.cfg.NoColor)
	if e.pauser != nil {
		bar.SetPauser(e.pauser)
	}
	bar.Start()

	reportDone := make(chan struct{})
	go func() {
		report.Run(reportRx, e.writer, bar, e.hookRunner)
		close(reportDone)
	}()

	dispatcher := recursion.NewDispatcher(func(ctx context.Context, childTarget string) {
		e.Scan(ctx, childTarget, baseDepth)
	})
	dispatcherDone := make(chan struct{})
	go func() {
		dispatcher.Run(ctx, recursionRx)
		close(dispatcherDone)
	}()

	wf := &wildcard.Filter{}
	if e.cfg.AutoFilter {
		if calibrated, err := wildcard.Calibrate(ctx, e.req, target); err != nil {
			slog.Debug("wildcard calibration skipped", "target", target, "error", err)
		} else {
			wf = calibrated
		}
	}
	chain := filter.Build(e.cfg, wf)

	// S1 Produce: bounded-concurrency fan-out, at most cfg.Threads
	// workers in flight at once.
	threads := e.cfg.Threads
	if threads <= 0 {
		threads = 1
	}
	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup

	for _, word := range e.wordlist {
		sem <- struct{}{}
		wg.Add(1)

		workerReportTx := reportTx.Clone()
		workerRecursionTx := recursionTx.Clone()

		go func(w string) {
			defer func() {
				workerReportTx.Close()
				workerRecursionTx.Close()
				<-sem
				wg.Done()
			}()
			worker.Work(ctx, target, w, baseDepth, e.cfg, e.req, chain, workerRecursionTx, workerReportTx, bar, e.pauser)
		}(word)
	}

	// S2 Drain-producers.
	wg.Wait()
	bar.Stop()

	snap := bar.Snapshot()
	e.stats.completed.Add(snap.Completed)
	e.stats.filtered.Add(snap.Filtered)
	e.stats.errors.Add(snap.Errors)
	e.stats.found.Add(snap.Found)

	// S3 Close-recursion: drop the coordinator's own handle. Every
	// worker clone has already been closed above, so this is the final
	// reference and the channel closes now.
	recursionTx.Close()

	// S4 Drain-recursion: wait for the dispatcher to observe channel
	// closure and for every child scan it spawned to finish.
	<-dispatcherDone
	dispatcher.Wait()

	// S5 Close-report: drop the coordinator's handle, now that every
	// worker is done publishing and every child scan (each with its own
	// report channel and sink over the shared Writer) has returned.
	reportTx.Close()
	<-reportDone

	// S6 Done.
	slog.Info("finished scan", "target", target)
}

// RootBaseDepth returns the depth to anchor max-depth enforcement to for a
// fresh top-level scan of target.
func RootBaseDepth(target string) int {
	return urlx.CurrentDepth(target)
}
