package batchutils

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestForEachRespectsBatchSize(t *testing.T) {
	var running, peak int32
	var mu sync.Mutex
	seen := make(map[int]bool)

	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	done := ForEach(context.Background(), items, 5, time.Millisecond, func(_ context.Context, item int) {
		current := atomic.AddInt32(&running, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if current <= old || atomic.CompareAndSwapInt32(&peak, old, current) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)

		mu.Lock()
		seen[item] = true
		mu.Unlock()
	})

	if !done {
		t.Fatal("expected every item to be processed")
	}
	if len(seen) != len(items) {
		t.Errorf("expected %d items, got %d", len(items), len(seen))
	}
	if peak > 5 {
		t.Errorf("expected at most 5 concurrent calls, got %d", peak)
	}
}

func TestForEachWaitsBetweenBatches(t *testing.T) {
	start := time.Now()
	ForEach(context.Background(), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 5, 100*time.Millisecond, func(context.Context, int) {})

	if elapsed := time.Since(start); elapsed < 200*time.Millisecond {
		t.Errorf("expected two pauses of 100ms, took %v", elapsed)
	}
}

func TestForEachStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls int32

	done := ForEach(ctx, []int{1, 2, 3, 4}, 2, time.Second, func(context.Context, int) {
		atomic.AddInt32(&calls, 1)
		cancel()
	})

	if done {
		t.Error("expected ForEach to report an interrupted run")
	}
	if calls != 2 {
		t.Errorf("expected only the first batch to run, got %d calls", calls)
	}
}
