package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/workopia-be/internal/notifier/domain"
	"github.com/jmoiron/sqlx"
)

// Storage handles all database operations for the notifier
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// RecordEvent appends one listing event to the audit trail.
func (s *Storage) RecordEvent(ctx context.Context, event domain.ListingEvent) error {
	query := `
		INSERT INTO listing_events (event_type, listing_id, user_id, occurred_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		event.EventType,
		event.ListingID,
		event.UserID,
		event.OccurredAt,
	)

	if err != nil {
		return fmt.Errorf("failed to record listing event: %w", err)
	}

	return nil
}

// RecentEvents returns the latest audit rows, newest first.
func (s *Storage) RecentEvents(ctx context.Context, limit int) ([]domain.ListingEvent, error) {
	query := `
		SELECT event_type, listing_id, user_id, occurred_at
		FROM listing_events
		ORDER BY occurred_at DESC, id DESC
		LIMIT $1
	`

	var events []domain.ListingEvent
	if err := s.db.SelectContext(ctx, &events, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list listing events: %w", err)
	}

	return events, nil
}
