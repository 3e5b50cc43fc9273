package util

import (
	"context"
	"sync"
)

// Result pairs an input with the error its task returned (nil on success).
type Result[T any] struct {
	Input T
	Err   error
}

// ParallelCollect runs fn for every input on at most workerLimit goroutines.
// Every input is attempted; a failing task never cancels the others. Results
// are returned in input order.
func ParallelCollect[T any](ctx context.Context, inputs []T, workerLimit int, fn func(context.Context, T) error) []Result[T] {
	if len(inputs) == 0 {
		return nil
	}

	if workerLimit <= 0 {
		workerLimit = 1
	}
	if workerLimit > len(inputs) {
		workerLimit = len(inputs)
	}

	results := make([]Result[T], len(inputs))
	tasks := make(chan int)

	// workers
	wg := sync.WaitGroup{}
	for i := 0; i < workerLimit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				item := inputs[idx]
				if err := ctx.Err(); err != nil {
					results[idx] = Result[T]{Input: item, Err: err}
					continue
				}
				results[idx] = Result[T]{Input: item, Err: fn(ctx, item)}
			}
		}()
	}

	// feed tasks
	for idx := range inputs {
		tasks <- idx
	}
	close(tasks)

	wg.Wait()
	return results
}

// Failed returns only the results that carry an error.
func Failed[T any](results []Result[T]) []Result[T] {
	var out []Result[T]
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
