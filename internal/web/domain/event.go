package domain

import "time"

const (
	EventListingCreated = "listing.created"
	EventListingUpdated = "listing.updated"
	EventListingDeleted = "listing.deleted"
)

// ListingEvent is published to RabbitMQ after every successful mutation
type ListingEvent struct {
	EventType  string    `json:"event_type"`
	ListingID  int64     `json:"listing_id"`
	UserID     int64     `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
