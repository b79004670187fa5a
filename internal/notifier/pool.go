package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/workopia-be/internal/notifier/domain"
)

// spawnPool starts N goroutines that drain the events channel.
func (n *Notifier) spawnPool(ctx context.Context) {
	n.logger.Info("Spawning notifier pool",
		slog.Int("concurrency", n.concurrency),
		slog.String("consumer_id", n.consumerID),
	)

	for i := 0; i < n.concurrency; i++ {
		n.wg.Add(1)
		go n.poolLoop(ctx, i)
	}
}

// poolLoop processes events and ACKs or NACKs each delivery based on
// the outcome.
func (n *Notifier) poolLoop(ctx context.Context, workerNum int) {
	defer n.wg.Done()

	workerName := fmt.Sprintf("%s-%d", n.consumerID, workerNum)
	n.logger.Info("Pool goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-n.stopChan:
			n.logger.Info("Pool goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			n.logger.Info("Pool goroutine stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-n.eventsChan:
			if !ok {
				return
			}

			err := n.processEvent(ctx, msg.Event)

			channel := n.rabbitClient.GetChannel()
			if channel == nil {
				n.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
					slog.String("worker_name", workerName),
					slog.Int64("listing_id", msg.Event.ListingID),
				)
				continue
			}

			if err != nil {
				requeue := n.shouldRequeue(err)

				n.logger.Error("Event processing failed",
					slog.String("worker_name", workerName),
					slog.String("event_type", msg.Event.EventType),
					slog.Int64("listing_id", msg.Event.ListingID),
					slog.Bool("requeue", requeue),
					slog.String("error", err.Error()),
				)

				if nackErr := channel.Nack(msg.DeliveryTag, false, requeue); nackErr != nil {
					n.logger.Error("Failed to NACK event",
						slog.String("worker_name", workerName),
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			if ackErr := channel.Ack(msg.DeliveryTag, false); ackErr != nil {
				n.logger.Error("Failed to ACK event",
					slog.String("worker_name", workerName),
					slog.String("error", ackErr.Error()),
				)
			}
		}
	}
}

// shouldRequeue decides the NACK requeue flag from the error type.
// Only transient failures are worth redelivering.
func (n *Notifier) shouldRequeue(err error) bool {
	if errors.Is(err, domain.ErrUnknownEventType) || errors.Is(err, domain.ErrInvalidEvent) {
		return false
	}

	var retryable *domain.RetryableError
	return errors.As(err, &retryable)
}
