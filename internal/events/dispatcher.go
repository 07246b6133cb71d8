package events

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/soulbind/kyc-attestor/internal/adapter"
	"github.com/soulbind/kyc-attestor/internal/domain"
	"github.com/soulbind/kyc-attestor/internal/logger"
	"github.com/soulbind/kyc-attestor/internal/messaging"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 10
	DEFAULT_WORKER_QUEUE_SIZE = 1024

	// publishTimeout bounds a single broker publish attempt
	publishTimeout = 10 * time.Second
)

// Dispatcher defines the interface for asynchronous credential event dispatch.
// Dispatch runs strictly after the state change it reports has committed, so
// a failed publish never unwinds the mutation.
//
//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatcher.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Dispatch queues a credential event for publishing. It stamps the
	// event with an ID and timestamp if the caller left them empty.
	Dispatch(event *domain.CredentialEvent)

	// Close drains the queue and stops the worker pool
	Close()
}

// dispatcher is the internal implementation of Dispatcher interface
type dispatcher struct {
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
}

// Config holds worker pool sizing for the dispatcher
type Config struct {
	WorkerPoolSize  int
	WorkerQueueSize int
}

// NewDispatcher creates a new Dispatcher backed by a bounded worker pool
func NewDispatcher(cfg Config, publisher messaging.Publisher, clock adapter.Clock) Dispatcher {
	workerPoolSize := cfg.WorkerPoolSize
	if workerPoolSize == 0 {
		workerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	workerQueueSize := cfg.WorkerQueueSize
	if workerQueueSize == 0 {
		workerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}

	pool := pond.NewPool(
		workerPoolSize,
		pond.WithQueueSize(workerQueueSize),
	)

	logger.Info("Event dispatcher pool created",
		zap.Int("workers", workerPoolSize),
		zap.Int("queue_size", workerQueueSize))

	return &dispatcher{
		publisher: publisher,
		clock:     clock,
		pool:      pool,
	}
}

// Dispatch queues a credential event for publishing
func (d *dispatcher) Dispatch(event *domain.CredentialEvent) {
	now := d.clock.Now()
	if event.ID == "" {
		event.ID = domain.NewEventID(now)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = now
	}

	// Submit to the worker pool instead of spawning unbounded goroutines.
	// The publish gets its own context: the request context that triggered
	// the event is usually done by the time the worker runs.
	d.pool.SubmitErr(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := d.publisher.PublishCredentialEvent(ctx, event); err != nil {
			logger.Error(err,
				zap.String("message", "Failed to publish credential event"),
				zap.String("event_id", event.ID),
				zap.String("event_type", string(event.Type)),
				zap.String("credential_key", event.CredentialKey.String()))
			return err
		}
		return nil
	})
}

// Close drains the queue and stops the worker pool
func (d *dispatcher) Close() {
	logger.Info("Shutting down event dispatcher",
		zap.Uint64("submitted", d.pool.SubmittedTasks()),
		zap.Uint64("waiting", d.pool.WaitingTasks()))

	d.pool.StopAndWait()

	logger.Info("Event dispatcher shutdown complete",
		zap.Uint64("total_completed", d.pool.CompletedTasks()),
		zap.Uint64("total_failed", d.pool.FailedTasks()))
}
