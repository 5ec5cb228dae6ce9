package recursion

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDispatcherSpawnsOnePerURL(t *testing.T) {
	var count atomic.Int32
	var seen sync.Map

	d := NewDispatcher(func(ctx context.Context, target string) {
		count.Add(1)
		seen.Store(target, true)
		time.Sleep(5 * time.Millisecond)
	})

	ch := make(chan string, 3)
	ch <- "http://h/a/"
	ch <- "http://h/b/"
	ch <- "http://h/c/"
	close(ch)

	d.Run(context.Background(), ch)
	d.Wait()

	if count.Load() != 3 {
		t.Errorf("expected 3 spawns, got %d", count.Load())
	}
	for _, u := range []string{"http://h/a/", "http://h/b/", "http://h/c/"} {
		if _, ok := seen.Load(u); !ok {
			t.Errorf("expected %s to have been spawned", u)
		}
	}
}

func TestDispatcherWaitBlocksUntilChildrenFinish(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	d := NewDispatcher(func(ctx context.Context, target string) {
		close(started)
		<-release
	})

	ch := make(chan string, 1)
	ch <- "http://h/x/"
	close(ch)

	d.Run(context.Background(), ch)

	<-started
	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before the child scan was released")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-done
}

func TestDispatcherNoURLsCompletesImmediately(t *testing.T) {
	d := NewDispatcher(func(ctx context.Context, target string) {
		t.Fatal("spawn should never be called")
	})

	ch := make(chan string)
	close(ch)

	d.Run(context.Background(), ch)
	d.Wait()
}
