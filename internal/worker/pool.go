package worker

import (
	"context"
	"sync"
)

// Job is one unit of fetch work.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is what a job produced, successful or not.
type Result interface {
	Err() error
}

// Pool runs jobs on a fixed number of workers. The wayback adapter uses it
// to fetch archived pages with bounded concurrency while the rate limiter
// keeps per-domain spacing.
//
// A collector goroutine drains results from the moment Start is called, so
// workers never stall on a full results buffer and callers may submit any
// number of jobs before calling Wait.
type Pool struct {
	workers int
	jobs    chan Job
	results chan Result

	wg        sync.WaitGroup
	collected []Result
	done      chan struct{}
}

// NewPool creates a pool with the given worker count (minimum one).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
		done:    make(chan struct{}),
	}
}

// Start launches the workers and the result collector. Jobs observe ctx;
// cancelling it abandons queued work but never loses results already
// produced.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					select {
					case p.results <- job.Execute(ctx):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		for r := range p.results {
			p.collected = append(p.collected, r)
		}
		close(p.done)
	}()
}

// Submit queues a job; it is dropped if ctx already ended.
func (p *Pool) Submit(ctx context.Context, job Job) {
	select {
	case <-ctx.Done():
	case p.jobs <- job:
	}
}

// Wait closes the queue, waits for the workers, and returns everything the
// collector gathered.
func (p *Pool) Wait() []Result {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	<-p.done
	return p.collected
}
