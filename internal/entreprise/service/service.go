// Package service records company facts and yearly snapshots.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"portail-rse/internal/audit"
	"portail-rse/internal/entreprise/models"
	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/sentinel"
	"portail-rse/pkg/requestcontext"
)

var tracer = otel.Tracer("portail-rse/entreprise")

// Store is implemented by store.InMemory and store.PostgresStore.
type Store interface {
	UpsertCompany(ctx context.Context, c *models.Company) error
	FindCompany(ctx context.Context, siren string) (*models.Company, error)
	CreateSnapshot(ctx context.Context, snap *models.Snapshot) error
	FindSnapshot(ctx context.Context, siren string, year int) (*models.Snapshot, error)
	LatestSnapshot(ctx context.Context, siren string) (*models.Snapshot, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Service struct {
	store          Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// UpsertCompany validates and stores the slow-changing company facts.
func (s *Service) UpsertCompany(ctx context.Context, c *models.Company) (*models.Company, error) {
	ctx, span := tracer.Start(ctx, "entreprise.UpsertCompany", trace.WithAttributes(attribute.String("siren", c.Siren)))
	defer span.End()

	if err := models.ValidateSiren(c.Siren); err != nil {
		return nil, err
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Normalize()
	c.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.UpsertCompany(ctx, c); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upsert failed")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save company")
	}
	s.emit(ctx, audit.Event{Action: audit.ActionCompanyUpserted, Siren: c.Siren})
	return c, nil
}

func (s *Service) GetCompany(ctx context.Context, siren string) (*models.Company, error) {
	c, err := s.store.FindCompany(ctx, siren)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "entreprise inconnue")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load company")
	}
	return c, nil
}

// CreateSnapshot normalizes the snapshot against its company, validates it,
// and stores it. A year can only be recorded once.
func (s *Service) CreateSnapshot(ctx context.Context, snap *models.Snapshot) (*models.Snapshot, error) {
	ctx, span := tracer.Start(ctx, "entreprise.CreateSnapshot", trace.WithAttributes(
		attribute.String("siren", snap.Siren),
		attribute.Int("annee", snap.Year),
	))
	defer span.End()

	company, err := s.GetCompany(ctx, snap.Siren)
	if err != nil {
		return nil, err
	}
	snap.Normalize(*company)
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	snap.CreatedAt = requestcontext.Now(ctx)

	if err := s.store.CreateSnapshot(ctx, snap); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrAlreadyUsed):
			return nil, dErrors.New(dErrors.CodeConflict, "les caractéristiques de cette année sont déjà enregistrées")
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "entreprise inconnue")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save snapshot")
	}

	s.logger.InfoContext(ctx, "snapshot created", "siren", snap.Siren, "annee", snap.Year)
	s.emit(ctx, audit.Event{Action: audit.ActionSnapshotCreated, Siren: snap.Siren, Year: snap.Year})
	return snap, nil
}

// Qualification is what the rules read: the company and its latest
// snapshot. Snapshot is nil when no year was recorded yet.
type Qualification struct {
	Company  *models.Company
	Snapshot *models.Snapshot
}

func (s *Service) LatestQualification(ctx context.Context, siren string) (*Qualification, error) {
	company, err := s.GetCompany(ctx, siren)
	if err != nil {
		return nil, err
	}
	snap, err := s.store.LatestSnapshot(ctx, siren)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load snapshot")
	}
	return &Qualification{Company: company, Snapshot: snap}, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", event.Action, "error", err)
	}
}
