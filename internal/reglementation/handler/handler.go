package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"portail-rse/internal/entreprise/models"
	reglementation "portail-rse/internal/reglementation/models"
	"portail-rse/internal/reglementation/service"
	"portail-rse/internal/platform/middleware"
	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/httputil"
	"portail-rse/pkg/requestcontext"
)

// Service is implemented by service.Service.
type Service interface {
	EvaluateCompany(ctx context.Context, siren string) ([]reglementation.Result, error)
	EvaluateMany(ctx context.Context, sirens []string) ([]service.CompanyResults, error)
	Simulate(ctx context.Context, company models.Company, snapshot models.Snapshot) (*reglementation.Simulation, error)
	GetSimulation(ctx context.Context, id uuid.UUID) (*reglementation.Simulation, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts the company evaluation routes. The router must already
// run RequireAuth.
func (h *Handler) Register(r chi.Router) {
	r.With(middleware.RequireMember).Get("/entreprises/{siren}/reglementations", h.HandleEvaluateCompany)
	r.Get("/reglementations", h.HandleEvaluateMany)
}

// RegisterPublic mounts the simulation routes, which anonymous visitors
// may use. The router should run OptionalAuth.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/simulations", h.HandleSimulate)
	r.Get("/simulations/{id}", h.HandleGetSimulation)
}

// HandleEvaluateCompany handles GET /entreprises/{siren}/reglementations.
func (h *Handler) HandleEvaluateCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	siren := chi.URLParam(r, "siren")

	results, err := h.service.EvaluateCompany(ctx, siren)
	if err != nil {
		h.fail(ctx, w, "evaluation failed", err, "siren", siren)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EvaluationResponse{Siren: siren, Results: results})
}

// HandleEvaluateMany handles GET /reglementations?siren=...&siren=...
// The caller must be a member of every listed company.
func (h *Handler) HandleEvaluateMany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sirens, err := sirensFrom(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	for _, siren := range sirens {
		if !requestcontext.IsMember(ctx, siren) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "vous n'êtes pas membre de l'entreprise "+siren))
			return
		}
	}

	batch, err := h.service.EvaluateMany(ctx, sirens)
	if err != nil {
		h.fail(ctx, w, "batch evaluation failed", err, "count", len(sirens))
		return
	}
	out := make([]EvaluationResponse, len(batch))
	for i, b := range batch {
		out[i] = EvaluationResponse{Siren: b.Siren, Results: b.Results}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleSimulate handles POST /simulations.
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SimulationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sim, err := h.service.Simulate(ctx, req.Company, req.Snapshot)
	if err != nil {
		h.fail(ctx, w, "simulation failed", err, "siren", req.Company.Siren)
		return
	}
	w.Header().Set("Location", "/simulations/"+sim.ID.String())
	httputil.WriteJSON(w, http.StatusCreated, sim)
}

// HandleGetSimulation handles GET /simulations/{id}.
func (h *Handler) HandleGetSimulation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "id must be a uuid"))
		return
	}
	sim, err := h.service.GetSimulation(ctx, id)
	if err != nil {
		h.fail(ctx, w, "simulation lookup failed", err, "simulation_id", id)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sim)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	args := append([]any{"request_id", requestcontext.RequestID(ctx), "error", err}, attrs...)
	h.logger.WarnContext(ctx, msg, args...)
	httputil.WriteError(w, err)
}
