package notifier

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongbtq/workopia-be/internal/notifier/domain"
)

type fakeRecorder struct {
	events []domain.ListingEvent
	err    error
}

func (r *fakeRecorder) RecordEvent(ctx context.Context, event domain.ListingEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func newTestNotifier(recorder EventRecorder) *Notifier {
	return &Notifier{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder:   recorder,
		consumerID: "notifier-test",
	}
}

func validEvent() domain.ListingEvent {
	return domain.ListingEvent{
		EventType:  domain.EventListingCreated,
		ListingID:  42,
		UserID:     7,
		OccurredAt: time.Now().UTC(),
	}
}

func TestNotifier_ProcessEvent(t *testing.T) {
	recorder := &fakeRecorder{}
	n := newTestNotifier(recorder)

	err := n.processEvent(context.Background(), validEvent())

	require.NoError(t, err)
	require.Len(t, recorder.events, 1)
	assert.Equal(t, int64(42), recorder.events[0].ListingID)
}

func TestNotifier_ProcessEvent_Failures(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.ListingEvent)
		recorderErr error
		wantErr     error
		wantRequeue bool
	}{
		{
			name:        "unknown event type",
			mutate:      func(e *domain.ListingEvent) { e.EventType = "listing.exploded" },
			wantErr:     domain.ErrUnknownEventType,
			wantRequeue: false,
		},
		{
			name:        "zero listing id",
			mutate:      func(e *domain.ListingEvent) { e.ListingID = 0 },
			wantErr:     domain.ErrInvalidEvent,
			wantRequeue: false,
		},
		{
			name:        "negative listing id",
			mutate:      func(e *domain.ListingEvent) { e.ListingID = -1 },
			wantErr:     domain.ErrInvalidEvent,
			wantRequeue: false,
		},
		{
			name:        "recorder failure is retryable",
			mutate:      func(e *domain.ListingEvent) {},
			recorderErr: errors.New("connection refused"),
			wantRequeue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{err: tt.recorderErr}
			n := newTestNotifier(recorder)

			event := validEvent()
			tt.mutate(&event)

			err := n.processEvent(context.Background(), event)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Empty(t, recorder.events)
			assert.Equal(t, tt.wantRequeue, n.shouldRequeue(err))
		})
	}
}

func TestNotifier_ShouldRequeue(t *testing.T) {
	n := newTestNotifier(&fakeRecorder{})

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "retryable error",
			err:  domain.NewRetryableError(errors.New("db down")),
			want: true,
		},
		{
			name: "wrapped retryable error",
			err:  domain.NewRetryableError(errors.New("timeout")),
			want: true,
		},
		{
			name: "unknown event type",
			err:  domain.ErrUnknownEventType,
			want: false,
		},
		{
			name: "invalid event",
			err:  domain.ErrInvalidEvent,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("unexpected"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.shouldRequeue(tt.err))
		})
	}
}

func TestKnownEventType(t *testing.T) {
	assert.True(t, domain.KnownEventType(domain.EventListingCreated))
	assert.True(t, domain.KnownEventType(domain.EventListingUpdated))
	assert.True(t, domain.KnownEventType(domain.EventListingDeleted))
	assert.False(t, domain.KnownEventType("listing.archived"))
	assert.False(t, domain.KnownEventType(""))
}
