package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portail-rse/pkg/requestcontext"
)

type recordingStore struct {
	events []Event
	err    error
}

func (s *recordingStore) Append(_ context.Context, e Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func TestEmitStampsRequestMetadata(t *testing.T) {
	store := &recordingStore{}
	p := NewPublisher(store)

	userID := uuid.New()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithUser(context.Background(), userID, []string{"123456789"})
	ctx = requestcontext.WithRequestID(ctx, "req-1")
	ctx = requestcontext.WithTime(ctx, at)

	require.NoError(t, p.Emit(ctx, Event{Action: ActionReportCreated, Siren: "123456789"}))
	require.Len(t, store.events, 1)
	got := store.events[0]
	assert.Equal(t, at, got.Timestamp)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, userID.String(), got.UserID)
}

func TestEmitOpensCircuitAfterRepeatedFailures(t *testing.T) {
	store := &recordingStore{err: errors.New("broker down")}
	p := NewPublisher(store, WithBreaker(2, time.Minute))
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p.breaker.now = func() time.Time { return now }
	ctx := context.Background()

	require.Error(t, p.Emit(ctx, Event{Action: ActionStepValidated}))
	require.Error(t, p.Emit(ctx, Event{Action: ActionStepValidated}))
	assert.ErrorIs(t, p.Emit(ctx, Event{Action: ActionStepValidated}), ErrCircuitOpen)

	store.err = nil
	now = now.Add(2 * time.Minute)
	require.NoError(t, p.Emit(ctx, Event{Action: ActionStepValidated}))
	assert.Len(t, store.events, 1)
}
