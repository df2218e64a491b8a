package worker

import (
	"context"
	"sync"

	"github.com/osse101/roomcrawl/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process implements Job
func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool represents a worker pool
type Pool struct {
	workers   int
	jobQueue  chan Job
	wg        sync.WaitGroup
	quit      chan struct{}
	stopOnce  sync.Once
	drainOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers. Jobs run with ctx, so cancelling it reaches
// every job still running.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// worker is the worker loop
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log := logger.FromContext(ctx).With(LogKeyWorkerID, id)
	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			// A failing job is logged and never stops the worker.
			if err := job.Process(ctx); err != nil {
				log.Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Drain stops accepting jobs and waits until every queued job has run.
// Enqueue must not be called afterwards.
func (p *Pool) Drain() {
	p.drainOnce.Do(func() { close(p.jobQueue) })
	p.wg.Wait()
}

// Stop stops the workers without running queued jobs and waits for them to finish
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
