package domain

import "errors"

var (
	// ErrUnknownEventType is returned for event types the notifier does not handle
	ErrUnknownEventType = errors.New("unknown listing event type")

	// ErrInvalidEvent is returned when an event message is malformed
	ErrInvalidEvent = errors.New("invalid listing event")
)

// RetryableError wraps transient errors that should trigger a requeue
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError creates a new retryable error
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}
