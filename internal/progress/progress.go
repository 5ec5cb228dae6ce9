// Package progress displays live scan progress on stderr: completed/total
// counters, throughput, ETA and pause state.
//
// Grounded on maxvaer/dirfuzz's internal/output.Progress (renamed out of the
// output package, which now only concerns itself with final report
// rendering); status coloring follows the status-code-to-color mapping in
// other_examples' boxlegs-gembuster main.go (color.*String helpers).
package progress

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
)

// PauseState provides pause-related information for display and ETA.
// Implemented by *pause.Pauser; kept as an interface here so progress
// doesn't need to import pause.
type PauseState interface {
	IsPaused() bool
	PausedDuration() time.Duration
	CurrentPauseDuration() time.Duration
}

// Bar tracks and displays scan progress on stderr.
type Bar struct {
	total     int
	completed atomic.Int64
	filtered  atomic.Int64
	errors    atomic.Int64
	found     atomic.Int64
	start     time.Time
	done      chan struct{}
	quiet     bool
	noColor   bool
	mu        sync.Mutex
	visible   bool // whether the progress line is currently drawn
	pauser    PauseState
}

// New creates a progress tracker. Call Start() to begin display updates.
func New(total int, quiet, noColor bool) *Bar {
	return &Bar{
		total:   total,
		start:   time.Now(),
		done:    make(chan struct{}),
		quiet:   quiet,
		noColor: noColor,
	}
}

// Start begins periodically printing progress to stderr.
func (p *Bar) Start() {
	if p.quiet {
		return
	}
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.mu.Lock()
				p.draw()
				p.mu.Unlock()
			case <-p.done:
				p.mu.Lock()
				p.draw()
				fmt.Fprint(os.Stderr, "\n")
				p.visible = false
				p.mu.Unlock()
				return
			}
		}
	}()
}

// ClearLine temporarily removes the progress bar from the terminal so that
// a result line can be printed cleanly. Call Redraw() after printing.
func (p *Bar) ClearLine() {
	if p.quiet {
		return
	}
	p.mu.Lock()
	if p.visible {
		fmt.Fprint(os.Stderr, "\r\033[K")
		p.visible = false
	}
}

// Redraw redraws the progress bar after a ClearLine+print cycle.
func (p *Bar) Redraw() {
	if p.quiet {
		return
	}
	p.draw()
	p.mu.Unlock()
}

// Increment records one completed unit of work. The Request Worker calls
// it once per word, however many URLs that word expanded to.
func (p *Bar) Increment() {
	p.completed.Add(1)
}

// Completed returns the number of Increment calls so far.
func (p *Bar) Completed() int64 {
	return p.completed.Load()
}

// IncrementFiltered records a filtered result.
func (p *Bar) IncrementFiltered() {
	p.filtered.Add(1)
}

// IncrementErrors records an error.
func (p *Bar) IncrementErrors() {
	p.errors.Add(1)
}

// IncrementFound records a result that passed all filters.
func (p *Bar) IncrementFound() {
	p.found.Add(1)
}

// SetPauser attaches a PauseState for pause-aware ETA and display.
func (p *Bar) SetPauser(ps PauseState) {
	p.mu.Lock()
	p.pauser = ps
	p.mu.Unlock()
}

// AddTotal increases the total count. The engine does not call it: each
// nested Scan has its own Bar with its own total.
func (p *Bar) AddTotal(n int) {
	p.mu.Lock()
	p.total += n
	p.mu.Unlock()
}

// ETA returns the estimated remaining time based on current progress rate.
// Returns 0 if not enough data to estimate.
func (p *Bar) ETA() time.Duration {
	completed := p.completed.Load()
	elapsed := time.Since(p.start).Seconds()
	if p.pauser != nil {
		elapsed -= p.pauser.PausedDuration().Seconds()
	}
	if elapsed <= 0 || completed <= 0 {
		return 0
	}
	rate := float64(completed) / elapsed
	p.mu.Lock()
	total := p.total
	p.mu.Unlock()
	remaining := float64(int64(total)-completed) / rate
	return time.Duration(remaining * float64(time.Second))
}

// Stop ends the progress display.
func (p *Bar) Stop() {
	close(p.done)
}

// Stats is a point-in-time snapshot of a Bar's counters, used to render the
// scan-summary footer once a recursion tree finishes.
type Stats struct {
	Completed int64
	Filtered  int64
	Errors    int64
	Found     int64
	Elapsed   time.Duration
}

// Snapshot captures the current counters and elapsed wall-clock time.
func (p *Bar) Snapshot() Stats {
	return Stats{
		Completed: p.completed.Load(),
		Filtered:  p.filtered.Load(),
		Errors:    p.errors.Load(),
		Found:     p.found.Load(),
		Elapsed:   time.Since(p.start),
	}
}

// buildBar creates a visual progress bar of the given width.
func buildBar(pct float64, width int) string {
	filled := int(pct / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var buf strings.Builder
	buf.WriteByte('[')
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			buf.WriteByte('=')
		case i == filled && pct < 100:
			buf.WriteByte('>')
		default:
			buf.WriteByte(' ')
		}
	}
	buf.WriteByte(']')
	return buf.String()
}

func (p *Bar) draw() {
	completed := p.completed.Load()
	elapsed := time.Since(p.start).Seconds()
	if p.pauser != nil {
		elapsed -= p.pauser.PausedDuration().Seconds()
		if elapsed < 0 {
			elapsed = 0
		}
	}
	rate := float64(0)
	if elapsed > 0 {
		rate = float64(completed) / elapsed
	}

	pct := float64(0)
	if p.total > 0 {
		pct = float64(completed) / float64(p.total) * 100
	}

	eta := ""
	if rate > 0 && completed < int64(p.total) {
		remaining := float64(int64(p.total)-completed) / rate
		eta = fmt.Sprintf("ETA: %s", time.Duration(remaining*float64(time.Second)).Round(time.Second))
	}

	pauseTag := ""
	if p.pauser != nil && p.pauser.IsPaused() {
		pd := p.pauser.CurrentPauseDuration().Round(time.Second)
		pauseTag = p.colorize(color.YellowString, fmt.Sprintf(" [paused %s]", pd))
	}

	bar := buildBar(pct, 20)
	found := p.colorize(color.GreenString, fmt.Sprintf("%d", p.found.Load()))
	errs := p.colorize(color.RedString, fmt.Sprintf("%d", p.errors.Load()))

	fmt.Fprintf(os.Stderr, "\r\033[K%s %3.0f%% | %d/%d | %.0f req/s | found: %s | filtered: %d | errors: %s | %s%s",
		bar, pct, completed, p.total, rate,
		found, p.filtered.Load(), errs, eta, pauseTag)
	p.visible = true
}

func (p *Bar) colorize(f func(string, ...interface{}) string, s string) string {
	if p.noColor {
		return s
	}
	return f("%s", s)
}
