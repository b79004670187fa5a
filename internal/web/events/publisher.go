package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/workopia-be/internal/web/domain"
	"github.com/cuongbtq/workopia-be/shared/rabbitmq"
)

// Publisher emits listing events to RabbitMQ for the notifier service.
type Publisher struct {
	rabbit *rabbitmq.Client
	logger *slog.Logger
}

func NewPublisher(rabbit *rabbitmq.Client, logger *slog.Logger) *Publisher {
	return &Publisher{
		rabbit: rabbit,
		logger: logger,
	}
}

// PublishListingEvent publishes one event as a persistent JSON message.
func (p *Publisher) PublishListingEvent(ctx context.Context, event domain.ListingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode listing event: %w", err)
	}

	if err := p.rabbit.PublishWithRetry(ctx, body, "application/json"); err != nil {
		return fmt.Errorf("failed to publish listing event: %w", err)
	}

	p.logger.Debug("Listing event published",
		slog.String("event_type", event.EventType),
		slog.Int64("listing_id", event.ListingID),
	)

	return nil
}
