// Package fanout runs a function across a slice of inputs with bounded
// concurrency, preserving input order in the results. The extraction service
// uses it to process batch requests.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines; values below 1 are treated as 1. Results are returned in input
// order.
//
// An item still waiting for a worker slot when ctx is canceled records
// ctx.Err() and fn is not called for it. Calls already running finish; fn is
// responsible for observing ctx. A panic inside fn is recovered and recorded
// as that item's error.
//
// Run blocks until every item is settled. An empty items slice yields an
// empty, non-nil result.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, item, fn)
		})
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			res = Result[R]{Err: fmt.Errorf("fanout: panic: %v", r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return Result[R]{Err: err}
	}
	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
