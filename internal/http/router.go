// Package httpapi assembles the module handlers behind one chi router.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portail-rse/internal/platform/metrics"
	"portail-rse/internal/platform/middleware"
	"portail-rse/pkg/platform/httputil"
	"portail-rse/pkg/platform/middleware/requesttime"
)

const healthTimeout = 2 * time.Second

// Registrar mounts routes reserved to authenticated users.
type Registrar interface {
	Register(r chi.Router)
}

// PublicRegistrar mounts routes anonymous visitors may call.
type PublicRegistrar interface {
	RegisterPublic(r chi.Router)
}

// HealthCheck is one dependency probed by /healthz.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Deps struct {
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Validator middleware.JWTValidator
	Protected []Registrar
	Public    []PublicRegistrar
	Health    []HealthCheck
}

func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(deps.Metrics.Middleware)

	r.Get("/healthz", healthHandler(deps.Health, logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(deps.Validator, logger))
		for _, h := range deps.Public {
			h.RegisterPublic(r)
		}
	})
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.Validator, logger))
		for _, h := range deps.Protected {
			h.Register(r)
		}
	})
	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func healthHandler(checks []HealthCheck, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.WarnContext(ctx, "health check failed", "check", c.Name, "error", err)
				resp.Status = "degraded"
				resp.Checks[c.Name] = err.Error()
				continue
			}
			resp.Checks[c.Name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, resp)
	}
}
