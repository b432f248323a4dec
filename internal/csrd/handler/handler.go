package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portail-rse/internal/csrd/export"
	"portail-rse/internal/csrd/models"
	"portail-rse/internal/csrd/service"
	"portail-rse/internal/platform/middleware"
	dErrors "portail-rse/pkg/domain-errors"
	"portail-rse/pkg/platform/httputil"
	"portail-rse/pkg/requestcontext"
)

// Service is implemented by service.Service.
type Service interface {
	Create(ctx context.Context, ref service.Ref) (*models.Report, error)
	Get(ctx context.Context, ref service.Ref) (*models.Report, error)
	ValidateStep(ctx context.Context, ref service.Ref, step models.StepID) (*models.Report, error)
	ToggleSelection(ctx context.Context, ref service.Ref, code models.ESRS, ids []int64) (*models.Report, error)
	Deselect(ctx context.Context, ref service.Ref, id int64) (*models.Report, error)
	CreateIssue(ctx context.Context, ref service.Ref, code models.ESRS, name, description string) (models.Issue, error)
	DeleteIssue(ctx context.Context, ref service.Ref, id int64) (*models.Report, error)
	SetMaterial(ctx context.Context, ref service.Ref, id int64, material *bool) (*models.Report, error)
	Update(ctx context.Context, ref service.Ref, patch models.Patch) (*models.Report, error)
	Publish(ctx context.Context, ref service.Ref, link string) (*models.Report, error)
	Export(ctx context.Context, ref service.Ref, variant export.Variant) (*models.Report, []byte, error)
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

// Register mounts the report routes. Every route addresses the official
// report unless ?personnel=true is set. The router must already run
// RequireAuth.
func (h *Handler) Register(r chi.Router) {
	r.Route("/entreprises/{siren}/csrd/{annee}", func(r chi.Router) {
		r.Use(middleware.RequireMember)
		r.Post("/", h.HandleCreate)
		r.Get("/", h.HandleGet)
		r.Patch("/", h.HandleUpdate)
		r.Post("/publier", h.HandlePublish)
		r.Post("/etapes/{etape}/valider", h.HandleValidateStep)
		r.Put("/enjeux/selection", h.HandleToggleSelection)
		r.Post("/enjeux", h.HandleCreateIssue)
		r.Delete("/enjeux/{id}", h.HandleDeleteIssue)
		r.Delete("/enjeux/{id}/selection", h.HandleDeselect)
		r.Put("/enjeux/{id}/materialite", h.HandleSetMaterial)
		r.Get("/enjeux.xlsx", h.exportHandler(export.Selected))
		r.Get("/enjeux-materiels.xlsx", h.exportHandler(export.Analyzed))
	})
}

func refFrom(r *http.Request) (service.Ref, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "annee"))
	if err != nil {
		return service.Ref{}, dErrors.New(dErrors.CodeBadRequest, "annee must be a number")
	}
	personal, _ := strconv.ParseBool(r.URL.Query().Get("personnel"))
	return service.Ref{Siren: chi.URLParam(r, "siren"), Year: year, Personal: personal}, nil
}

func issueIDFrom(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "id must be a number")
	}
	return id, nil
}

// fail logs and writes a service error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, ref service.Ref, err error) {
	h.logger.WarnContext(r.Context(), msg,
		"request_id", requestcontext.RequestID(r.Context()),
		"siren", ref.Siren,
		"annee", ref.Year,
		"error", err,
	)
	httputil.WriteError(w, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, msg string, ref service.Ref, report *models.Report, err error) {
	if err != nil {
		h.fail(w, r, msg, ref, err)
		return
	}
	httputil.WriteJSON(w, status, toReportResponse(report))
}

// HandleCreate handles POST /entreprises/{siren}/csrd/{annee}.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	report, err := h.service.Create(r.Context(), ref)
	h.respond(w, r, http.StatusCreated, "report creation failed", ref, report, err)
}

// HandleGet handles GET /entreprises/{siren}/csrd/{annee}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	report, err := h.service.Get(r.Context(), ref)
	h.respond(w, r, http.StatusOK, "report lookup failed", ref, report, err)
}

// HandleUpdate handles PATCH /entreprises/{siren}/csrd/{annee}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	report, err := h.service.Update(ctx, ref, req.toPatch())
	h.respond(w, r, http.StatusOK, "report update failed", ref, report, err)
}

// HandlePublish handles POST .../publier.
func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[PublishRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	report, err := h.service.Publish(ctx, ref, req.PublishedLink)
	h.respond(w, r, http.StatusOK, "report publication failed", ref, report, err)
}

// HandleValidateStep handles POST .../etapes/{etape}/valider.
func (h *Handler) HandleValidateStep(w http.ResponseWriter, r *http.Request) {
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	step := models.StepID(chi.URLParam(r, "etape"))
	report, err := h.service.ValidateStep(r.Context(), ref, step)
	h.respond(w, r, http.StatusOK, "step validation failed", ref, report, err)
}

// HandleToggleSelection handles PUT .../enjeux/selection.
func (h *Handler) HandleToggleSelection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[SelectionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	report, err := h.service.ToggleSelection(ctx, ref, req.code, req.Issues)
	h.respond(w, r, http.StatusOK, "selection update failed", ref, report, err)
}

// HandleCreateIssue handles POST .../enjeux.
func (h *Handler) HandleCreateIssue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[IssueRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	issue, err := h.service.CreateIssue(ctx, ref, req.code, req.Name, req.Description)
	if err != nil {
		h.fail(w, r, "issue creation failed", ref, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, issue)
}

// HandleDeleteIssue handles DELETE .../enjeux/{id}.
func (h *Handler) HandleDeleteIssue(w http.ResponseWriter, r *http.Request) {
	h.withIssue(w, r, "issue deletion failed", h.service.DeleteIssue)
}

// HandleDeselect handles DELETE .../enjeux/{id}/selection.
func (h *Handler) HandleDeselect(w http.ResponseWriter, r *http.Request) {
	h.withIssue(w, r, "issue deselection failed", h.service.Deselect)
}

func (h *Handler) withIssue(w http.ResponseWriter, r *http.Request, msg string, fn func(context.Context, service.Ref, int64) (*models.Report, error)) {
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	id, err := issueIDFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	report, err := fn(r.Context(), ref, id)
	h.respond(w, r, http.StatusOK, msg, ref, report, err)
}

// HandleSetMaterial handles PUT .../enjeux/{id}/materialite.
func (h *Handler) HandleSetMaterial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref, err := refFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	id, err := issueIDFrom(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[MaterialityRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	report, err := h.service.SetMaterial(ctx, ref, id, req.Material)
	h.respond(w, r, http.StatusOK, "materiality update failed", ref, report, err)
}

func (h *Handler) exportHandler(variant export.Variant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := refFrom(r)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		report, data, err := h.service.Export(r.Context(), ref, variant)
		if err != nil {
			h.fail(w, r, "issue export failed", ref, err)
			return
		}
		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(report, variant)+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
