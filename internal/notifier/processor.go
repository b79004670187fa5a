package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/workopia-be/internal/notifier/domain"
)

// EventRecorder persists processed listing events.
type EventRecorder interface {
	RecordEvent(ctx context.Context, event domain.ListingEvent) error
}

// processEvent validates an event, records it, and logs the notice a
// delivery channel would pick up. A recording failure is transient and
// triggers a requeue; an unknown type never will, so it is terminal.
func (n *Notifier) processEvent(ctx context.Context, event domain.ListingEvent) error {
	if !domain.KnownEventType(event.EventType) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownEventType, event.EventType)
	}

	if event.ListingID <= 0 {
		return fmt.Errorf("%w: listing_id %d", domain.ErrInvalidEvent, event.ListingID)
	}

	if err := n.recorder.RecordEvent(ctx, event); err != nil {
		return domain.NewRetryableError(fmt.Errorf("failed to record event: %w", err))
	}

	n.logger.Info("Listing event recorded",
		slog.String("event_type", event.EventType),
		slog.Int64("listing_id", event.ListingID),
		slog.Int64("user_id", event.UserID),
		slog.Time("occurred_at", event.OccurredAt),
	)

	return nil
}
