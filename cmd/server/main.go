package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	csrdHandler "portail-rse/internal/csrd/handler"
	csrdMetrics "portail-rse/internal/csrd/metrics"
	csrdService "portail-rse/internal/csrd/service"
	entrepriseHandler "portail-rse/internal/entreprise/handler"
	entrepriseService "portail-rse/internal/entreprise/service"
	httpapi "portail-rse/internal/http"
	jwttoken "portail-rse/internal/jwt_token"
	"portail-rse/internal/platform/config"
	"portail-rse/internal/platform/httpserver"
	"portail-rse/internal/platform/logger"
	"portail-rse/internal/platform/metrics"
	"portail-rse/internal/reglementation/adapters"
	reglementationHandler "portail-rse/internal/reglementation/handler"
	reglementationMetrics "portail-rse/internal/reglementation/metrics"
	reglementationService "portail-rse/internal/reglementation/service"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)
	slog.SetDefault(log)
	if cfg.UsesDevSigningKey() {
		log.Warn("using the development JWT signing key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	infra, err := openInfra(ctx, cfg, log)
	if err != nil {
		log.Error("failed to open infrastructure", "error", err)
		os.Exit(1)
	}
	defer infra.Close()

	registry, err := adapters.LoadStaticRegistry(cfg.FilingsFile)
	if err != nil {
		log.Error("failed to load filings", "error", err)
		os.Exit(1)
	}

	companies := entrepriseService.New(infra.entreprises,
		entrepriseService.WithLogger(log),
		entrepriseService.WithAuditPublisher(infra.audit),
	)
	reports := csrdService.New(infra.reports,
		csrdService.WithLogger(log),
		csrdService.WithAuditPublisher(infra.audit),
		csrdService.WithMetrics(csrdMetrics.New()),
	)
	evaluations := reglementationService.New(
		adapters.NewEntrepriseAdapter(companies),
		registry,
		adapters.NewCSRDAdapter(reports),
		infra.simulations,
		reglementationService.WithLogger(log),
		reglementationService.WithMetrics(reglementationMetrics.New()),
		reglementationService.WithSimulationTTL(cfg.SimulationTTL),
	)

	reglementationRoutes := reglementationHandler.New(evaluations, log)
	router := httpapi.NewRouter(httpapi.Deps{
		Logger:    log,
		Metrics:   metrics.New(),
		Validator: jwttoken.NewAdapter(jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer)),
		Protected: []httpapi.Registrar{
			entrepriseHandler.New(companies, log),
			reglementationRoutes,
			csrdHandler.New(reports, log),
		},
		Public: []httpapi.PublicRegistrar{reglementationRoutes},
		Health: infra.health,
	})

	srv := httpserver.New(cfg.Addr, router)
	go func() {
		log.Info("starting portail-rse", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
