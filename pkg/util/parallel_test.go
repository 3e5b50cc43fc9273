package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestParallelCollectAttemptsEveryInput(t *testing.T) {
	inputs := []int{1, 2, 3, 4, 5, 6}
	var calls int32

	results := ParallelCollect(context.Background(), inputs, 3, func(_ context.Context, n int) error {
		atomic.AddInt32(&calls, 1)
		if n%2 == 0 {
			return errors.New("even")
		}
		return nil
	})

	if calls != int32(len(inputs)) {
		t.Fatalf("calls = %d, want %d", calls, len(inputs))
	}
	if len(results) != len(inputs) {
		t.Fatalf("results = %d, want %d", len(results), len(inputs))
	}
	for i, r := range results {
		if r.Input != inputs[i] {
			t.Errorf("result %d input = %d, want %d", i, r.Input, inputs[i])
		}
		if (r.Err != nil) != (r.Input%2 == 0) {
			t.Errorf("result for %d: err = %v", r.Input, r.Err)
		}
	}
	if failed := Failed(results); len(failed) != 3 {
		t.Fatalf("failed = %d, want 3", len(failed))
	}
}

func TestParallelCollectEmpty(t *testing.T) {
	results := ParallelCollect(context.Background(), nil, 4, func(context.Context, string) error {
		t.Fatal("fn must not run")
		return nil
	})
	if results != nil {
		t.Fatalf("expected nil results, got %v", results)
	}
}

func TestParallelCollectCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := ParallelCollect(ctx, []string{"a", "b"}, 0, func(context.Context, string) error {
		t.Fatal("fn must not run after cancel")
		return nil
	})
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", r.Err)
		}
	}
}
