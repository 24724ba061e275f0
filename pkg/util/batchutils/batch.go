package batchutils

import (
	"context"
	"sync"
	"time"
)

// ForEach calls fn for every item, running up to size calls concurrently per batch
// and pausing delay between batches. It stops before the next batch when ctx ends
// and reports whether every item was processed.
func ForEach[T any](ctx context.Context, items []T, size int, delay time.Duration, fn func(context.Context, T)) bool {
	if size <= 0 {
		size = 1
	}

	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))

		var wg sync.WaitGroup
		for _, item := range items[start:end] {
			wg.Add(1)
			go func(item T) {
				defer wg.Done()
				fn(ctx, item)
			}(item)
		}
		wg.Wait()

		if end < len(items) && !Sleep(ctx, delay) {
			return false
		}
	}
	return true
}

// Sleep waits for d and reports false when ctx ended first
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
