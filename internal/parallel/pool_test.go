package parallel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsTasks(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Shutdown()

	var ran atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		err := pool.Submit(context.Background(), func() {
			defer wg.Done()
			ran.Add(1)
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	wg.Wait()
	if ran.Load() != 20 {
		t.Fatalf("expected 20 tasks run, got %d", ran.Load())
	}
}

func TestWorkerPoolDefaultSize(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Shutdown()
	if pool.maxWorkers < 1 {
		t.Fatalf("expected positive default worker count, got %d", pool.maxWorkers)
	}
}

func TestWorkerPoolSubmitAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Shutdown()

	err := pool.Submit(context.Background(), func() {})
	if !errors.Is(err, ErrPoolShutdown) {
		t.Fatalf("expected ErrPoolShutdown, got %v", err)
	}
}

func TestWorkerPoolShutdownIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Shutdown()
	pool.Shutdown()
}

func TestWorkerPoolSubmitHonorsContext(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Shutdown()

	// Fill the single worker and the queue with blocking tasks so the
	// next submission must wait, then cancel it.
	release := make(chan struct{})
	for i := 0; i < 3; i++ {
		if err := pool.Submit(context.Background(), func() { <-release }); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.Submit(ctx, func() {})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	close(release)
}
