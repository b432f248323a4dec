// Package service runs the report workflow: creation, step validation,
// issue selection and materiality, publication.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"portail-rse/internal/audit"
	"portail-rse/internal/csrd/export"
	"portail-rse/internal/csrd/metrics"
	"portail-rse/internal/csrd/models"
	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/sentinel"
	"portail-rse/pkg/requestcontext"
)

var tracer = otel.Tracer("portail-rse/csrd")

// Store is implemented by store.InMemory and store.PostgresStore.
type Store interface {
	Create(ctx context.Context, r *models.Report) error
	Find(ctx context.Context, siren string, year int, owner *uuid.UUID) (*models.Report, error)
	LatestOfficial(ctx context.Context, siren string) (*models.Report, error)
	Save(ctx context.Context, r *models.Report) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Service struct {
	store          Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
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

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
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

// Ref addresses one report. Personal reports belong to the caller.
type Ref struct {
	Siren    string
	Year     int
	Personal bool
}

func (ref Ref) owner(ctx context.Context) (*uuid.UUID, error) {
	if !ref.Personal {
		return nil, nil
	}
	userID := requestcontext.UserID(ctx)
	if userID == uuid.Nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "un rapport personnel nécessite un utilisateur connecté")
	}
	return &userID, nil
}

// Create builds a report seeded with the standard issues. A second report
// for the same company, year and owner is a conflict.
func (s *Service) Create(ctx context.Context, ref Ref) (*models.Report, error) {
	ctx, span := tracer.Start(ctx, "csrd.Create", trace.WithAttributes(
		attribute.String("siren", ref.Siren),
		attribute.Int("annee", ref.Year),
		attribute.Bool("personnel", ref.Personal),
	))
	defer span.End()

	owner, err := ref.owner(ctx)
	if err != nil {
		return nil, err
	}
	report, err := models.NewReport(ref.Siren, ref.Year, owner, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, report); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			s.metrics.IncrementMutation("create", string(dErrors.CodeConflict))
			return nil, duplicateReport(ref.Personal)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create report")
	}

	s.metrics.IncrementMutation("create", "ok")
	s.metrics.IncrementCreated(ref.Personal)
	s.logger.InfoContext(ctx, "report created",
		"siren", ref.Siren,
		"annee", ref.Year,
		"rapport_id", report.ID,
		"enjeux", len(report.Issues()),
	)
	s.emit(ctx, report, audit.ActionReportCreated, nil)
	return report, nil
}

func (s *Service) Get(ctx context.Context, ref Ref) (*models.Report, error) {
	owner, err := ref.owner(ctx)
	if err != nil {
		return nil, err
	}
	report, err := s.store.Find(ctx, ref.Siren, ref.Year, owner)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "rapport inconnu")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load report")
	}
	return report, nil
}

// Latest returns the most recent official report of a company, nil when
// there is none.
func (s *Service) Latest(ctx context.Context, siren string) (*models.Report, error) {
	report, err := s.store.LatestOfficial(ctx, siren)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load report")
	}
	return report, nil
}

// mutate loads the report, applies fn and saves it. A stale version is a
// conflict; the caller retries with a fresh read.
func (s *Service) mutate(ctx context.Context, op string, ref Ref, action audit.Action, fn func(r *models.Report) (map[string]string, error)) (*models.Report, error) {
	ctx, span := tracer.Start(ctx, "csrd."+op, trace.WithAttributes(
		attribute.String("siren", ref.Siren),
		attribute.Int("annee", ref.Year),
	))
	defer span.End()

	report, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	details, err := fn(report)
	if err != nil {
		s.metrics.IncrementMutation(op, string(dErrors.CodeOf(err)))
		if dErrors.HasCode(err, dErrors.CodeLocked) {
			s.metrics.IncrementLockedWrite()
			s.logger.WarnContext(ctx, "write refused on locked report",
				"operation", op,
				"rapport_id", report.ID,
			)
			s.emit(ctx, report, audit.ActionLockedWrite, map[string]string{"operation": op})
		}
		return nil, err
	}

	if err := s.store.Save(ctx, report); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrConflict):
			s.metrics.IncrementMutation(op, string(dErrors.CodeConflict))
			return nil, dErrors.New(dErrors.CodeConflict, "le rapport a été modifié entre-temps, veuillez recharger la page")
		case errors.Is(err, sentinel.ErrAlreadyUsed):
			s.metrics.IncrementMutation(op, string(dErrors.CodeConflict))
			return nil, duplicateReport(ref.Personal)
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "rapport inconnu")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save report")
	}

	s.metrics.IncrementMutation(op, "ok")
	if action != "" {
		s.emit(ctx, report, action, details)
	}
	return report, nil
}

// ValidateStep moves the validated step forward. An earlier step leaves the
// report unchanged.
func (s *Service) ValidateStep(ctx context.Context, ref Ref, step models.StepID) (*models.Report, error) {
	return s.mutate(ctx, "validate_step", ref, audit.ActionStepValidated, func(r *models.Report) (map[string]string, error) {
		moved, err := r.Validate(step, requestcontext.Now(ctx))
		if err != nil {
			return nil, err
		}
		if !moved {
			s.logger.InfoContext(ctx, "step already validated", "etape", step, "etape_validee", r.ValidatedStep)
		} else {
			s.metrics.IncrementStepValidation(string(step))
		}
		return map[string]string{"etape": string(step)}, nil
	})
}

func (s *Service) ToggleSelection(ctx context.Context, ref Ref, code models.ESRS, ids []int64) (*models.Report, error) {
	return s.mutate(ctx, "toggle_selection", ref, audit.ActionSelectionReplaced, func(r *models.Report) (map[string]string, error) {
		if err := r.ToggleSelection(ids, code, requestcontext.Now(ctx)); err != nil {
			return nil, err
		}
		return map[string]string{"esrs": string(code), "selection": strconv.Itoa(len(r.Issues().ByCode(code).Selected()))}, nil
	})
}

func (s *Service) Deselect(ctx context.Context, ref Ref, id int64) (*models.Report, error) {
	return s.mutate(ctx, "deselect", ref, audit.ActionIssueDeselected, func(r *models.Report) (map[string]string, error) {
		return issueDetails(id), r.Deselect(id, requestcontext.Now(ctx))
	})
}

// CreateIssue adds a custom issue and returns it.
func (s *Service) CreateIssue(ctx context.Context, ref Ref, code models.ESRS, name, description string) (models.Issue, error) {
	var created models.Issue
	_, err := s.mutate(ctx, "create_issue", ref, audit.ActionIssueCreated, func(r *models.Report) (map[string]string, error) {
		issue, err := r.CreateCustom(code, name, description, requestcontext.Now(ctx))
		if err != nil {
			return nil, err
		}
		created = issue
		return issueDetails(issue.ID), nil
	})
	if err != nil {
		return models.Issue{}, err
	}
	return created, nil
}

func (s *Service) DeleteIssue(ctx context.Context, ref Ref, id int64) (*models.Report, error) {
	return s.mutate(ctx, "delete_issue", ref, audit.ActionIssueDeleted, func(r *models.Report) (map[string]string, error) {
		return issueDetails(id), r.Delete(id, requestcontext.Now(ctx))
	})
}

// SetMaterial records a materiality answer; nil clears it.
func (s *Service) SetMaterial(ctx context.Context, ref Ref, id int64, material *bool) (*models.Report, error) {
	return s.mutate(ctx, "set_material", ref, audit.ActionMaterialitySet, func(r *models.Report) (map[string]string, error) {
		return issueDetails(id), r.SetMaterial(id, material, requestcontext.Now(ctx))
	})
}

func (s *Service) Update(ctx context.Context, ref Ref, patch models.Patch) (*models.Report, error) {
	return s.mutate(ctx, "update", ref, audit.ActionReportUpdated, func(r *models.Report) (map[string]string, error) {
		return nil, r.Update(patch, requestcontext.Now(ctx))
	})
}

// Publish sets the published link and locks the report.
func (s *Service) Publish(ctx context.Context, ref Ref, link string) (*models.Report, error) {
	report, err := s.mutate(ctx, "publish", ref, audit.ActionReportPublished, func(r *models.Report) (map[string]string, error) {
		return map[string]string{"lien": link}, r.Publish(link, requestcontext.Now(ctx))
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "report published", "siren", report.Siren, "annee", report.Year, "rapport_id", report.ID)
	return report, nil
}

// Export renders the selected or analysed issues as a spreadsheet.
func (s *Service) Export(ctx context.Context, ref Ref, variant export.Variant) (*models.Report, []byte, error) {
	ctx, span := tracer.Start(ctx, "csrd.Export", trace.WithAttributes(attribute.String("variant", string(variant))))
	defer span.End()

	report, err := s.Get(ctx, ref)
	if err != nil {
		return nil, nil, err
	}
	data, err := export.Issues(report, variant)
	if err != nil {
		span.RecordError(err)
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to export issues")
	}
	s.metrics.IncrementExport(string(variant))
	return report, data, nil
}

func duplicateReport(personal bool) error {
	if personal {
		return dErrors.New(dErrors.CodeConflict, "Vous avez déjà un rapport CSRD personnel pour cette entreprise et cette année")
	}
	return dErrors.New(dErrors.CodeConflict, "Il existe déjà un rapport CSRD officiel pour cette entreprise")
}

func issueDetails(id int64) map[string]string {
	return map[string]string{"enjeu_id": strconv.FormatInt(id, 10)}
}

func (s *Service) emit(ctx context.Context, r *models.Report, action audit.Action, details map[string]string) {
	if s.auditPublisher == nil {
		return
	}
	event := audit.Event{
		Action:   action,
		Siren:    r.Siren,
		Year:     r.Year,
		ReportID: r.ID.String(),
		Details:  details,
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "action", action, "error", err)
	}
}
