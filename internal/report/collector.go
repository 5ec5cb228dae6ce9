package report

import (
	"strings"
	"sync"

	"github.com/markvantol/dirhunt/internal/scanner"
)

// Collector buffers every reported response across an entire recursion
// tree (every nested Scan shares one Collector instance through a shared
// Writer), so formats that need the complete result set — JSON, CSV,
// sorted replay, the directory tree summary — can be produced once after
// the root Scan returns. Grounded on maxvaer/dirfuzz's JSONWriter/
// SortedWriter, which buffered similarly but per-process rather than
// per-recursion-tree.
type Collector struct {
	mu      sync.Mutex
	results []*scanner.Response
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Write records resp. Always succeeds.
func (c *Collector) Write(resp *scanner.Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cpy := *resp
	c.results = append(c.results, &cpy)
	return nil
}

// Snapshot returns a copy of every response recorded so far.
func (c *Collector) Snapshot() []*scanner.Response {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*scanner.Response, len(c.results))
	copy(out, c.results)
	return out
}

// Directories extracts the set of distinct directory-shaped paths among
// the recorded responses (URL path ends in "/"), relative to each
// response's host, for use by PrintTree.
func (c *Collector) Directories() []string {
	snap := c.Snapshot()
	seen := make(map[string]struct{})
	var dirs []string
	for _, r := range snap {
		if !strings.HasSuffix(r.URL, "/") {
			continue
		}
		path := pathOf(r.URL)
		path = strings.Trim(path, "/")
		if path == "" {
			continue
		}
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			dirs = append(dirs, path)
		}
	}
	return dirs
}

// TotalBytes sums ContentLength across every recorded response, ignoring
// negative (unknown) lengths. The summary footer takes its byte total from
// ByteCounter, not from this method.
func (c *Collector) TotalBytes() int64 {
	snap := c.Snapshot()
	var total int64
	for _, r := range snap {
		if r.ContentLength > 0 {
			total += r.ContentLength
		}
	}
	return total
}

func pathOf(rawURL string) string {
	idx := strings.Index(rawURL, "://")
	if idx < 0 {
		return rawURL
	}
	rest := rawURL[idx+3:]
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return ""
	}
	return rest[slash:]
}
