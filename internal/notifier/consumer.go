package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/workopia-be/internal/notifier/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// setupConsumer sets QoS and starts consuming from the listing-events
// queue. Manual acknowledgment keeps delivery at-least-once.
func (n *Notifier) setupConsumer() (<-chan amqp.Delivery, error) {
	channel := n.rabbitClient.GetChannel()
	if channel == nil {
		return nil, fmt.Errorf("rabbitmq channel is nil")
	}

	if err := channel.Qos(n.prefetchCount, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	deliveries, err := n.rabbitClient.Consume(n.consumerID)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	n.logger.Info("Listing-event consumer started",
		slog.String("consumer_id", n.consumerID),
		slog.String("queue", n.queueName),
		slog.Int("prefetch_count", n.prefetchCount),
	)

	return deliveries, nil
}

// dispatch decodes deliveries and hands them to the pool. Malformed
// messages are NACKed without requeue; re-delivering them can never
// succeed.
func (n *Notifier) dispatch(ctx context.Context, deliveries <-chan amqp.Delivery) {
	n.logger.Info("Event dispatcher started",
		slog.String("consumer_id", n.consumerID),
	)

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("Event dispatcher stopped - context canceled")
			return

		case delivery, ok := <-deliveries:
			if !ok {
				n.logger.Warn("RabbitMQ delivery channel closed")
				return
			}

			var event domain.ListingEvent
			if err := json.Unmarshal(delivery.Body, &event); err != nil {
				n.logger.Error("Failed to parse event JSON",
					slog.String("error", err.Error()),
					slog.String("body", string(delivery.Body)),
				)
				if nackErr := delivery.Nack(false, false); nackErr != nil {
					n.logger.Error("Failed to NACK malformed event",
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			msg := &domain.EventMessage{
				Event:       event,
				DeliveryTag: delivery.DeliveryTag,
			}

			select {
			case n.eventsChan <- msg:
				n.logger.Debug("Event dispatched to pool",
					slog.String("event_type", event.EventType),
					slog.Int64("listing_id", event.ListingID),
				)
			case <-ctx.Done():
				n.logger.Info("Event dispatcher stopped while dispatching")
				// NACK with requeue so the event is reprocessed after restart
				if nackErr := delivery.Nack(false, true); nackErr != nil {
					n.logger.Error("Failed to NACK event on shutdown",
						slog.String("error", nackErr.Error()),
					)
				}
				return
			}
		}
	}
}
