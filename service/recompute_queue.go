// service/recompute_queue.go
package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/bookfeed/logging"
	"github.com/dev-mohitbeniwal/bookfeed/metrics"
	"github.com/dev-mohitbeniwal/bookfeed/model"
)

// recomputeJob names one user whose feed must be rebuilt. When user is set
// it is used as is; otherwise the user is loaded by userID first.
type recomputeJob struct {
	userID string
	user   *model.User
	reason string
}

func (j recomputeJob) id() string {
	if j.user != nil {
		return j.user.ID
	}
	return j.userID
}

// RecomputeQueue runs recomputations on a fixed pool of workers fed by a
// bounded channel. Jobs are independent: a failing or panicking job is
// logged and does not affect the others.
type RecomputeQueue struct {
	jobs    chan recomputeJob
	workers int
	process func(context.Context, recomputeJob) error

	// mu orders Enqueue against Stop: senders hold it shared, Stop takes it
	// exclusively before draining, so no job is left in the buffer unseen.
	mu      sync.RWMutex
	closed  bool
	stopped chan struct{}

	pending   sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

func NewRecomputeQueue(workers, size int, process func(context.Context, recomputeJob) error) *RecomputeQueue {
	if workers < 1 {
		workers = 1
	}
	if size < 0 {
		size = 0
	}
	return &RecomputeQueue{
		jobs:    make(chan recomputeJob, size),
		workers: workers,
		process: process,
		stopped: make(chan struct{}),
	}
}

// Start launches the workers. The queue stops when ctx is done.
func (q *RecomputeQueue) Start(ctx context.Context) {
	q.startOnce.Do(func() {
		for i := 0; i < q.workers; i++ {
			go q.work(ctx)
		}
		go func() {
			select {
			case <-ctx.Done():
				q.Stop()
			case <-q.stopped:
			}
		}()
		logger.Info("Recompute queue started", zap.Int("workers", q.workers), zap.Int("capacity", cap(q.jobs)))
	})
}

// Enqueue schedules job, waiting for room when the queue is full. It
// returns false once the queue has been stopped.
func (q *RecomputeQueue) Enqueue(job recomputeJob) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		dropJob(job)
		return false
	}

	q.pending.Add(1)
	select {
	case q.jobs <- job:
		metrics.RecomputeQueueDepth.Set(float64(len(q.jobs)))
		return true
	case <-q.stopped:
		q.pending.Done()
		dropJob(job)
		return false
	}
}

// Stop refuses further jobs, discards the buffered ones and waits for the
// jobs already running. It is safe to call more than once.
func (q *RecomputeQueue) Stop() {
	q.stopOnce.Do(func() {
		close(q.stopped)
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()
		q.drain()
		metrics.RecomputeQueueDepth.Set(0)
	})
	q.pending.Wait()
}

// Wait blocks until every enqueued job has been processed. It must not
// race with Enqueue on a running queue.
func (q *RecomputeQueue) Wait() {
	q.pending.Wait()
}

func (q *RecomputeQueue) work(ctx context.Context) {
	for {
		select {
		case <-q.stopped:
			return
		case job := <-q.jobs:
			metrics.RecomputeQueueDepth.Set(float64(len(q.jobs)))
			q.run(ctx, job)
		}
	}
}

// drain discards jobs still buffered after shutdown so Wait can return.
func (q *RecomputeQueue) drain() {
	for {
		select {
		case job := <-q.jobs:
			dropJob(job)
			q.pending.Done()
		default:
			return
		}
	}
}

func dropJob(job recomputeJob) {
	logger.Warn("Recompute queue stopped, dropping job",
		zap.String("userID", job.id()),
		zap.String("reason", job.reason))
}

func (q *RecomputeQueue) run(ctx context.Context, job recomputeJob) {
	defer q.pending.Done()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recompute job panicked",
				zap.String("userID", job.id()),
				zap.Error(fmt.Errorf("panic: %v", r)))
		}
	}()

	if err := q.process(ctx, job); err != nil {
		logger.Error("Recompute job failed",
			zap.Error(err),
			zap.String("userID", job.id()),
			zap.String("reason", job.reason))
	}
}
