package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/markvantol/dirhunt/internal/progress"
)

// PrintSummary writes a one-line scan-summary footer: total requests,
// results found, filtered and errored, elapsed time and the cumulative
// bytes received across every recorded response. Grounded on
// maxvaer/dirfuzz's Progress.draw() counters, pulled out into its own
// end-of-run line per SPEC_FULL.md's footer addition; byte counts are
// humanized since, unlike the per-line report format, this summary isn't
// bound to spec.md's exact column layout.
func PrintSummary(w io.Writer, stats progress.Stats, totalBytes int64) {
	fmt.Fprintf(w, "\nScan complete: %d requests, %d found, %d filtered, %d errors, %s received in %s\n",
		stats.Completed, stats.Found, stats.Filtered, stats.Errors,
		humanize.Bytes(uint64(totalBytes)), stats.Elapsed.Round(time.Millisecond))
}
