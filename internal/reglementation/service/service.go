// Package service is the applicability orchestrator: it gathers the facts
// about a company and runs every regulation rule over them.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks SimulationCache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	entreprise "portail-rse/internal/entreprise/models"
	"portail-rse/internal/reglementation/metrics"
	"portail-rse/internal/reglementation/models"
	"portail-rse/internal/reglementation/ports"
	"portail-rse/internal/reglementation/rules"
	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/sentinel"
	"portail-rse/pkg/requestcontext"
)

var tracer = otel.Tracer("portail-rse/reglementation")

const (
	defaultSimulationTTL = 30 * time.Minute
	batchLimit           = 8
)

// SimulationCache is implemented by store.InMemory and store.RedisCache.
type SimulationCache interface {
	Put(ctx context.Context, sim *models.Simulation, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*models.Simulation, error)
}

type Service struct {
	companies ports.CompanyPort
	registry  ports.RegistryPort
	csrd      ports.CSRDPort
	cache     SimulationCache
	rules     []rules.Rule
	ttl       time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSimulationTTL sets how long simulations stay readable.
func WithSimulationTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithRules replaces the rule list. The order is the display order.
func WithRules(list ...rules.Rule) Option {
	return func(s *Service) {
		s.rules = list
	}
}

func New(
	companies ports.CompanyPort,
	registry ports.RegistryPort,
	csrd ports.CSRDPort,
	cache SimulationCache,
	opts ...Option,
) *Service {
	s := &Service{
		companies: companies,
		registry:  registry,
		csrd:      csrd,
		cache:     cache,
		rules:     rules.All(),
		ttl:       defaultSimulationTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// EvaluateAll runs every rule over the facts, in display order. A rule that
// lacks data yields an Insufficient entry instead of a status.
func (s *Service) EvaluateAll(ctx context.Context, facts rules.Facts) []models.Result {
	_, span := tracer.Start(ctx, "reglementation.EvaluateAll", trace.WithAttributes(
		attribute.String("siren", facts.Company.Siren),
		attribute.Int("viewer", int(facts.Viewer)),
	))
	defer span.End()

	results := make([]models.Result, 0, len(s.rules))
	for _, rule := range s.rules {
		result := models.Result{Info: rule.Info()}
		status, err := rules.Evaluate(rule, facts)
		if err != nil {
			result.Insufficient = true
			s.metrics.IncrementEvaluation(string(result.Info.ID), metrics.StateInsufficient)
		} else {
			result.Status = &status
			s.metrics.IncrementEvaluation(string(result.Info.ID), string(status.State))
		}
		results = append(results, result)
	}
	return results
}

// viewerOf decides how much of each status the caller may see.
func viewerOf(ctx context.Context, siren string) rules.ViewerKind {
	switch {
	case requestcontext.IsMember(ctx, siren):
		return rules.ViewerMember
	case requestcontext.IsAuthenticated(ctx):
		return rules.ViewerUnauthorized
	default:
		return rules.ViewerAnonymous
	}
}

// EvaluateCompany evaluates a stored company on its latest snapshot with
// the filings it already made.
func (s *Service) EvaluateCompany(ctx context.Context, siren string) ([]models.Result, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "reglementation.EvaluateCompany", trace.WithAttributes(
		attribute.String("siren", siren),
	))
	defer span.End()

	company, snapshot, err := s.companies.Latest(ctx, siren)
	if err != nil {
		return nil, err
	}
	facts := rules.Facts{
		Company: *company,
		Viewer:  viewerOf(ctx, siren),
		Today:   requestcontext.Now(ctx),
	}
	if snapshot != nil {
		facts.Snapshot = *snapshot
	}

	facts.Filings, err = s.gatherFilings(ctx, siren, facts.Today)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "filings lookup failed")
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to gather filings")
	}

	results := s.EvaluateAll(ctx, facts)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	s.logger.InfoContext(ctx, "regulations evaluated",
		"siren", siren,
		"has_snapshot", snapshot != nil,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return results, nil
}

// CompanyResults is one line of a batch evaluation.
type CompanyResults struct {
	Siren   string          `json:"siren"`
	Results []models.Result `json:"reglementations"`
}

// EvaluateMany evaluates independent companies concurrently. The output
// keeps the order of sirens; the first failure cancels the rest.
func (s *Service) EvaluateMany(ctx context.Context, sirens []string) ([]CompanyResults, error) {
	ctx, span := tracer.Start(ctx, "reglementation.EvaluateMany", trace.WithAttributes(
		attribute.Int("count", len(sirens)),
	))
	defer span.End()

	out := make([]CompanyResults, len(sirens))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchLimit)
	for i, siren := range sirens {
		g.Go(func() error {
			results, err := s.EvaluateCompany(ctx, siren)
			if err != nil {
				return err
			}
			out[i] = CompanyResults{Siren: siren, Results: results}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch evaluation failed")
		return nil, err
	}
	return out, nil
}

// Simulate evaluates form values that are never stored with the company
// records. The result is always computed for an anonymous viewer, and is
// cached so it can be read back by id. A cache failure is logged but does
// not fail the simulation.
func (s *Service) Simulate(ctx context.Context, company entreprise.Company, snapshot entreprise.Snapshot) (*models.Simulation, error) {
	ctx, span := tracer.Start(ctx, "reglementation.Simulate", trace.WithAttributes(
		attribute.String("siren", company.Siren),
	))
	defer span.End()

	if err := entreprise.ValidateSiren(company.Siren); err != nil {
		return nil, err
	}
	company.Normalize()
	snapshot.Siren = company.Siren
	snapshot.Normalize(company)
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	sim := &models.Simulation{
		ID:        uuid.New(),
		Company:   company,
		Snapshot:  snapshot,
		CreatedAt: now,
	}
	sim.Results = s.EvaluateAll(ctx, rules.Facts{
		Company:  company,
		Snapshot: snapshot,
		Viewer:   rules.ViewerAnonymous,
		Today:    now,
	})

	if err := s.cache.Put(ctx, sim, s.ttl); err != nil {
		span.RecordError(err)
		s.metrics.IncrementSimulation("uncached")
		s.logger.WarnContext(ctx, "failed to cache simulation",
			"simulation_id", sim.ID,
			"error", err,
		)
		return sim, nil
	}
	s.metrics.IncrementSimulation("cached")
	return sim, nil
}

func (s *Service) GetSimulation(ctx context.Context, id uuid.UUID) (*models.Simulation, error) {
	sim, err := s.cache.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "simulation inconnue ou expirée")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read simulation")
	}
	return sim, nil
}
