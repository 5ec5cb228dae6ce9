// Package recursion implements the Recursion Dispatcher (spec.md §4.7):
// the single consumer of a Scan's recursion channel, which spawns one new
// child Scan per received URL and tracks them to completion.
//
// Grounded on original_source/src/scanner.rs's spawn_recursion_handler,
// which ranges over the receiver and tokio::spawns a scan_url call per
// message, then hands back the join handles for the caller to await.
package recursion

import (
	"context"
	"sync"
)

// Spawn starts a new child scan rooted at target and blocks until it (and
// everything it transitively recurses into) has finished. The Dispatcher
// never constructs Spawn itself — the caller (internal/engine) supplies
// it, which keeps this package from importing engine and creating a
// cycle.
type Spawn func(ctx context.Context, target string)

// Dispatcher consumes a recursion channel and fans each URL out to a new
// child scan via Spawn, run concurrently and tracked with a WaitGroup.
type Dispatcher struct {
	spawn Spawn
	wg    sync.WaitGroup
}

// NewDispatcher builds a Dispatcher that uses spawn to start each child
// scan.
func NewDispatcher(spawn Spawn) *Dispatcher {
	return &Dispatcher{spawn: spawn}
}

// Run ranges over recursionRx until it is closed, spawning one goroutine
// per received URL. Run itself returns as soon as the channel closes;
// call Wait afterward to block until every spawned child scan completes.
func (d *Dispatcher) Run(ctx context.Context, recursionRx <-chan string) {
	for target := range recursionRx {
		d.wg.Add(1)
		go func(u string) {
			defer d.wg.Done()
			d.spawn(ctx, u)
		}(target)
	}
}

// Wait blocks until every child scan spawned by Run has completed. Per
// spec.md §4.7, the dispatcher's completion means both that the recursion
// channel was closed and that every child scan has been awaited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
