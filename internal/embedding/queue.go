package embedding

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nordstaff/consultant-matcher/internal/repository"
)

// Task asks for one owner's vector to be (re)generated.
type Task struct {
	Owner       repository.OwnerType
	OwnerID     uuid.UUID
	SubmittedAt time.Time
}

// Queue runs embedding generation off the ingestion path. The worker bound
// exists to respect rate limits on the remote backend, not because of any
// shared in-memory state; writes are per-owner overwrites and safe to run
// concurrently across different owners.
type Queue struct {
	svc     *Service
	logger  *zap.Logger
	workers int
	timeout time.Duration

	ch   chan Task
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type QueueOption func(*Queue)

func WithWorkers(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Task, n)
		}
	}
}

func WithTaskTimeout(d time.Duration) QueueOption {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(svc *Service, logger *zap.Logger, opts ...QueueOption) *Queue {
	q := &Queue{
		svc:     svc,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Task, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("embed worker started", zap.Int("worker_id", workerID))

				for task := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.process(ctx, task)
					cancel()

					if err != nil {
						// Left for the scheduled re-embedding pass.
						q.logger.Warn("embedding task failed",
							zap.Int("worker_id", workerID),
							zap.String("owner_type", string(task.Owner)),
							zap.String("owner_id", task.OwnerID.String()),
							zap.Error(err))
					}
				}

				q.logger.Info("embed worker stopped", zap.Int("worker_id", workerID))
			}(i + 1)
		}
	})
}

func (q *Queue) process(ctx context.Context, task Task) error {
	if task.Owner == repository.OwnerJob {
		job, err := q.svc.jobs.GetByID(ctx, task.OwnerID)
		if err != nil {
			return err
		}
		return q.svc.EmbedJob(ctx, job)
	}
	c, err := q.svc.candidates.GetByID(ctx, task.OwnerID)
	if err != nil {
		return err
	}
	return q.svc.EmbedCandidate(ctx, c)
}

func (q *Queue) Enqueue(_ context.Context, task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down",
			zap.String("owner_id", task.OwnerID.String()))
		return nil
	}
	select {
	case q.ch <- task:
	default:
		q.logger.Warn("embed queue full, applying backpressure",
			zap.String("owner_id", task.OwnerID.String()))
		q.ch <- task
	}
	return nil
}

func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("queue shutdown interrupted by context")
	case <-done:
		q.logger.Info("embed queue drained, shutdown complete")
	}
}
