// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Map runs fn over items with at most workerCount goroutines. Results and
// errors are aligned with items. A failing item never cancels its siblings;
// items not yet started when ctx is done report ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	if len(items) == 0 {
		return results, errs
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				results[idx], errs[idx] = fn(ctx, items[idx])
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results, errs
}
