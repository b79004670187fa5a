package domain

import "time"

const (
	EventListingCreated = "listing.created"
	EventListingUpdated = "listing.updated"
	EventListingDeleted = "listing.deleted"
)

// ListingEvent is the message the web service publishes after each
// successful listing mutation.
type ListingEvent struct {
	EventType  string    `json:"event_type" db:"event_type"`
	ListingID  int64     `json:"listing_id" db:"listing_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
}

// KnownEventType reports whether the notifier handles this event type.
func KnownEventType(t string) bool {
	switch t {
	case EventListingCreated, EventListingUpdated, EventListingDeleted:
		return true
	}
	return false
}

// EventMessage pairs a decoded event with its RabbitMQ delivery tag so
// the pool can ACK or NACK after processing.
type EventMessage struct {
	Event       ListingEvent
	DeliveryTag uint64
}
