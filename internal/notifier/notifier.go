package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cuongbtq/workopia-be/internal/notifier/domain"
	"github.com/cuongbtq/workopia-be/internal/notifier/storage"
	"github.com/cuongbtq/workopia-be/shared/postgresql"
	"github.com/cuongbtq/workopia-be/shared/rabbitmq"
	"github.com/google/uuid"
)

// Config holds notifier configuration
type Config struct {
	Logger        *slog.Logger
	DBClient      *postgresql.Client
	RabbitClient  *rabbitmq.Client
	Concurrency   int
	PrefetchCount int
	QueueName     string
}

// Notifier consumes listing events and records them as an audit trail.
type Notifier struct {
	logger        *slog.Logger
	recorder      EventRecorder
	rabbitClient  *rabbitmq.Client
	concurrency   int
	prefetchCount int
	queueName     string
	consumerID    string
	eventsChan    chan *domain.EventMessage
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

// New creates a new notifier instance
func New(cfg *Config) *Notifier {
	return &Notifier{
		logger:        cfg.Logger,
		recorder:      storage.NewStorage(cfg.DBClient.GetDB(), cfg.Logger),
		rabbitClient:  cfg.RabbitClient,
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		queueName:     cfg.QueueName,
		consumerID:    fmt.Sprintf("notifier-%s", uuid.New().String()[:8]),
		eventsChan:    make(chan *domain.EventMessage, cfg.Concurrency*2),
		stopChan:      make(chan struct{}),
	}
}

// Start begins consuming listing events. It blocks until the context is
// canceled or the delivery channel closes.
func (n *Notifier) Start(ctx context.Context) error {
	n.logger.Info("Starting notifier",
		slog.String("consumer_id", n.consumerID),
		slog.Int("concurrency", n.concurrency),
	)

	deliveries, err := n.setupConsumer()
	if err != nil {
		return fmt.Errorf("failed to set up consumer: %w", err)
	}

	n.spawnPool(ctx)
	n.dispatch(ctx, deliveries)

	return nil
}

// Stop gracefully stops the notifier, draining the pool.
func (n *Notifier) Stop() {
	n.logger.Info("Stopping notifier...")
	close(n.stopChan)
	n.wg.Wait()
	n.logger.Info("Notifier stopped")
}
