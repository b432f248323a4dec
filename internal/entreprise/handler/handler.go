package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portail-rse/internal/entreprise/models"
	"portail-rse/internal/platform/middleware"
	"portail-rse/pkg/platform/httputil"
	"portail-rse/pkg/requestcontext"
)

// Service is implemented by service.Service.
type Service interface {
	UpsertCompany(ctx context.Context, c *models.Company) (*models.Company, error)
	CreateSnapshot(ctx context.Context, snap *models.Snapshot) (*models.Snapshot, error)
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

// Register mounts the company routes. The router must already run
// RequireAuth.
func (h *Handler) Register(r chi.Router) {
	r.With(middleware.RequireMember).Put("/entreprises/{siren}", h.HandleUpsertCompany)
	r.With(middleware.RequireMember).Post("/entreprises/{siren}/caracteristiques", h.HandleCreateSnapshot)
}

// HandleUpsertCompany handles PUT /entreprises/{siren}.
func (h *Handler) HandleUpsertCompany(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	siren := chi.URLParam(r, "siren")

	req, ok := httputil.DecodeAndPrepare[CompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	company, err := h.service.UpsertCompany(ctx, req.toModel(siren))
	if err != nil {
		h.logger.WarnContext(ctx, "company upsert failed",
			"request_id", requestID,
			"siren", siren,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, company)
}

// HandleCreateSnapshot handles POST /entreprises/{siren}/caracteristiques.
func (h *Handler) HandleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	siren := chi.URLParam(r, "siren")

	req, ok := httputil.DecodeAndPrepare[SnapshotRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	snap := req.Snapshot
	snap.Siren = siren

	created, err := h.service.CreateSnapshot(ctx, &snap)
	if err != nil {
		h.logger.WarnContext(ctx, "snapshot creation failed",
			"request_id", requestID,
			"siren", siren,
			"annee", snap.Year,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, created)
}
