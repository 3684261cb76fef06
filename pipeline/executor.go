package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wudi/hebscan/memory"
)

// unitFunc processes one 1-based page index. Per-page failures never surface
// as errors; they resolve to placeholder results inside the function.
type unitFunc func(ctx context.Context, index int) PageResult

// runParallel drives the parallel and batch strategies. All pageCount units
// are launched eagerly; a fixed slot array throttles execution so that at
// most maxConcurrency units run at once. Unit i occupies slot i mod
// maxConcurrency and waits for the slot's prior occupant to settle before
// starting. Completion is join-all: every unit settles regardless of
// individual page failures.
func runParallel(ctx context.Context, pageCount, maxConcurrency int, fn unitFunc, store *resultStore, obs Context) error {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	slots := make([]chan struct{}, maxConcurrency)
	var wg sync.WaitGroup
	for i := 1; i <= pageCount; i++ {
		slot := (i - 1) % maxConcurrency
		prev := slots[slot]
		done := make(chan struct{})
		slots[slot] = done
		wg.Add(1)
		go func(index int, prev <-chan struct{}, done chan<- struct{}) {
			defer wg.Done()
			defer close(done)
			if prev != nil {
				select {
				case <-prev:
				case <-ctx.Done():
					return
				}
			}
			if ctx.Err() != nil {
				return
			}
			res := fn(ctx, index)
			store.put(index, res)
			obs.StoreIntermediate(store.snapshot())
		}(i, prev, done)
	}
	wg.Wait()
	return ctx.Err()
}

// runChunked drives the chunked and progressive strategies. Page indices are
// processed in contiguous ranges of chunkSize; pages within a chunk run fully
// concurrently while chunks execute strictly sequentially, putting a hard
// ceiling on simultaneously held surfaces. Before each chunk the memory gate
// blocks on a cleanup pass when the estimate is over threshold.
func runChunked(ctx context.Context, pageCount, chunkSize int, fn unitFunc, store *resultStore, obs Context, tracker *memory.Tracker) error {
	if chunkSize < 1 {
		chunkSize = 1
	}
	for start := 1; start <= pageCount; start += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tracker.OverThreshold() {
			if err := tracker.Cleanup(ctx); err != nil {
				return err
			}
			obs.ReportMemory(tracker.EstimateMB())
		}
		end := start + chunkSize - 1
		if end > pageCount {
			end = pageCount
		}
		g, gctx := errgroup.WithContext(ctx)
		for i := start; i <= end; i++ {
			index := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				store.put(index, fn(gctx, index))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		obs.StoreIntermediate(store.snapshot())
	}
	return nil
}
