package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iyhunko/inventory-manager/internal/metrics"
	"github.com/iyhunko/inventory-manager/internal/sqs"
)

// DefaultOutboxSize is how many notifications may wait for the worker.
const DefaultOutboxSize = 100

// ErrOutboxFull is returned when a notification cannot be queued.
var ErrOutboxFull = errors.New("notification outbox is full")

// OutboxWorker queues product notifications in memory and publishes them in
// the background, so saving a product never waits for the queue.
type OutboxWorker struct {
	publisher EventPublisher
	outbox    chan sqs.ProductMessage
	stopChan  chan struct{}
}

// NewOutboxWorker creates a new OutboxWorker
func NewOutboxWorker(publisher EventPublisher, size int) *OutboxWorker {
	if size <= 0 {
		size = DefaultOutboxSize
	}
	return &OutboxWorker{
		publisher: publisher,
		outbox:    make(chan sqs.ProductMessage, size),
		stopChan:  make(chan struct{}),
	}
}

// PublishProductMessage queues msg for the worker. It never blocks.
func (w *OutboxWorker) PublishProductMessage(_ context.Context, msg sqs.ProductMessage) error {
	select {
	case w.outbox <- msg:
		return nil
	default:
		return ErrOutboxFull
	}
}

// Pending returns the number of queued notifications.
func (w *OutboxWorker) Pending() int {
	return len(w.outbox)
}

// Start publishes queued notifications until the context is done or Stop is called.
func (w *OutboxWorker) Start(ctx context.Context) {
	slog.Info("Outbox worker started", slog.Int("capacity", cap(w.outbox)))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox worker stopped by context", slog.Int("dropped", len(w.outbox)))
			return
		case <-w.stopChan:
			slog.Info("Outbox worker stopped", slog.Int("dropped", len(w.outbox)))
			return
		case msg := <-w.outbox:
			w.processMessage(ctx, msg)
		}
	}
}

// Stop stops the outbox worker
func (w *OutboxWorker) Stop() {
	close(w.stopChan)
}

func (w *OutboxWorker) processMessage(ctx context.Context, msg sqs.ProductMessage) {
	if err := w.publisher.PublishProductMessage(ctx, msg); err != nil {
		metrics.NotificationFailures.Inc()
		slog.Error("Failed to publish product notification",
			slog.String("action", msg.Action),
			slog.Int64("product_id", msg.ProductID),
			slog.Any("err", err))
		return
	}
	slog.Info("Product notification published",
		slog.String("action", msg.Action),
		slog.Int64("product_id", msg.ProductID))
}
