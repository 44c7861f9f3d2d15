package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countJob struct {
	executed *atomic.Int64
	fail     bool
}

type countResult struct {
	err error
}

func (r *countResult) Err() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	j.executed.Add(1)
	if j.fail {
		return &countResult{err: errors.New("job failed")}
	}
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var executed atomic.Int64
	pool := NewPool(3)
	pool.Start(context.Background())

	for i := 0; i < 20; i++ {
		pool.Submit(context.Background(), &countJob{executed: &executed})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
	if executed.Load() != 20 {
		t.Errorf("Expected 20 executions, got %d", executed.Load())
	}
}

func TestPool_CollectsFailures(t *testing.T) {
	var executed atomic.Int64
	pool := NewPool(2)
	pool.Start(context.Background())

	pool.Submit(context.Background(), &countJob{executed: &executed})
	pool.Submit(context.Background(), &countJob{executed: &executed, fail: true})

	failures := 0
	for _, r := range pool.Wait() {
		if r.Err() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failed result, got %d", failures)
	}
}

// Submitting far more jobs than the bounded channels can hold must not
// stall: the collector drains results while submissions are still going
// in, so a caller can queue everything up front and call Wait after.
func TestPool_ManyJobsFewWorkers(t *testing.T) {
	var executed atomic.Int64
	pool := NewPool(1)
	pool.Start(context.Background())

	done := make(chan []Result)
	go func() {
		for i := 0; i < 25; i++ {
			pool.Submit(context.Background(), &countJob{executed: &executed})
		}
		done <- pool.Wait()
	}()

	select {
	case results := <-done:
		if len(results) != 25 {
			t.Errorf("Expected 25 results, got %d", len(results))
		}
		if executed.Load() != 25 {
			t.Errorf("Expected 25 executions, got %d", executed.Load())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Pool stalled with jobs exceeding channel capacity")
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	var executed atomic.Int64
	pool := NewPool(0)
	pool.Start(context.Background())
	pool.Submit(context.Background(), &countJob{executed: &executed})

	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

type slowJob struct{}

func (j *slowJob) Execute(ctx context.Context) Result {
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
	}
	return &countResult{err: ctx.Err()}
}

func TestPool_CancelledContextAbandonsWork(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(1)
	pool.Start(ctx)
	pool.Submit(ctx, &slowJob{})

	cancel()

	done := make(chan struct{})
	go func() {
		pool.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Pool did not shut down after context cancel")
	}
}
