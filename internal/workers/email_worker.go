package workers

import (
	"context"
	"sync"
	"time"

	"jobportal_backend/internal/email"
	"jobportal_backend/internal/logger"

	"github.com/sethvargo/go-retry"
)

// EmailWorker is the in-process task queue for outbound mail. Producers hand
// off messages with Enqueue and never wait for delivery; a fixed pool of
// workers drains the queue. Transient send failures are retried with
// exponential backoff inside the queue, invisible to producers.
type EmailWorker struct {
	sender  email.Sender
	tasks   chan email.Email
	workers int

	wg      sync.WaitGroup
	startMu sync.Mutex
	started bool
}

func NewEmailWorker(sender email.Sender, queueSize, workers int) *EmailWorker {
	if queueSize <= 0 {
		queueSize = 256
	}
	if workers <= 0 {
		workers = 4
	}
	return &EmailWorker{
		sender:  sender,
		tasks:   make(chan email.Email, queueSize),
		workers: workers,
	}
}

// Start launches the worker pool. Workers run until ctx is cancelled.
func (w *EmailWorker) Start(ctx context.Context) {
	w.startMu.Lock()
	defer w.startMu.Unlock()
	if w.started {
		return
	}
	w.started = true

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.run(ctx)
	}
	logger.Info("Email worker pool started", "workers", w.workers, "queue_size", cap(w.tasks))
}

// Enqueue hands a message to the queue without blocking. When the queue is
// full the task is dropped; the failure is logged and invisible to the
// caller.
func (w *EmailWorker) Enqueue(task email.Email) bool {
	select {
	case w.tasks <- task:
		return true
	default:
		logger.Warn("Email queue full, dropping task", "to", task.To, "subject", task.Subject)
		return false
	}
}

// Wait blocks until all workers have exited. Only meaningful after the
// context passed to Start has been cancelled.
func (w *EmailWorker) Wait() {
	w.wg.Wait()
}

func (w *EmailWorker) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task := <-w.tasks:
			w.deliver(ctx, task)
		}
	}
}

func (w *EmailWorker) deliver(ctx context.Context, task email.Email) {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := w.sender.Send(&task); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})

	// A recipient that cannot be reached is reported and forgotten; the
	// rest of the queue is unaffected.
	if err != nil {
		logger.Error("Failed to send email", "to", task.To, "subject", task.Subject, "error", err)
		return
	}
	logger.Debug("Email sent", "to", task.To, "subject", task.Subject)
}
