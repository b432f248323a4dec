package audit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"portail-rse/pkg/requestcontext"
)

// ErrCircuitOpen is returned by Emit while the store is considered down.
var ErrCircuitOpen = errors.New("audit store unavailable")

// Store is an append-only sink for events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Publisher stamps events with request metadata and appends them to the
// store.
type Publisher struct {
	store   Store
	logger  *slog.Logger
	breaker *breaker
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithBreaker overrides the failure threshold and cooldown.
func WithBreaker(threshold int, cooldown time.Duration) Option {
	return func(p *Publisher) {
		p.breaker = newBreaker(threshold, cooldown)
	}
}

func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, breaker: newBreaker(5, 30*time.Second)}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.UserID == "" && requestcontext.IsAuthenticated(ctx) {
		event.UserID = requestcontext.UserID(ctx).String()
	}

	if !p.breaker.allow() {
		p.logger.WarnContext(ctx, "audit event dropped", "action", event.Action, "siren", event.Siren)
		return ErrCircuitOpen
	}
	if err := p.store.Append(ctx, event); err != nil {
		p.breaker.failure()
		return err
	}
	p.breaker.success()
	return nil
}
