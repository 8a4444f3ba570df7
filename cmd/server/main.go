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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"clubsessions/config"
	"clubsessions/internal/adapters/email"
	deliveryhttp "clubsessions/internal/delivery/http"
	"clubsessions/internal/delivery/http/controllers"
	"clubsessions/internal/delivery/http/middleware"
	"clubsessions/internal/domain"
	"clubsessions/internal/repository/memory"
	"clubsessions/internal/seed"
	"clubsessions/internal/services"
	"clubsessions/internal/tracing"
)

//go:generate swag init --dir ../.. -g cmd/server/main.go -o ../../docs --parseInternal

// @title Club Sessions API
// @version 1.0
// @description Browse, filter and create club sessions.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.InitTracerProvider(context.Background(), cfg.ServiceName, cfg.OTLPEndpoint, logger)
	if err != nil {
		logger.Error("failed to init tracing", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracer shutdown failed", "err", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, err := newHandler(cfg, logger, reg)
	if err != nil {
		logger.Error("failed to build application", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// newHandler wires repositories, services and controllers into the HTTP handler
// chain. Request metrics are registered on reg and exposed on /metrics.
func newHandler(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	clubs := memory.NewClubRepository(seed.Clubs())

	var sessions []*domain.Session
	if cfg.SeedData {
		sessions = seed.Sessions(seed.Clubs())
	}

	assigner, err := services.NewClubAssigner(cfg.ClubAssignment, clubs, nil)
	if err != nil {
		return nil, err
	}
	ids := memory.NewCounter(memory.MaxID(sessions))
	sessionRepo := memory.NewSessionRepository(ids, assigner, sessions)

	var announcer domain.AnnouncementService
	if len(cfg.Mail.AnnounceTo) > 0 {
		mailer, err := email.NewMailer(email.MailerConfig{
			Provider:    cfg.Mail.Provider,
			FromAddress: cfg.Mail.FromAddress,
			FromName:    cfg.Mail.FromName,
			SES: email.SESConfig{
				Region:             cfg.Mail.AWSRegion,
				AccessKeyID:        cfg.Mail.AWSAccessKeyID,
				SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
				InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
			},
		}, logger)
		if err != nil {
			return nil, err
		}
		announcer = services.NewAnnouncementService(mailer, email.NewTemplateRenderer(), cfg.Mail.AnnounceTo, logger)
	}

	sessionService := services.NewSessionService(sessionRepo, announcer, logger, cfg.RequestTimeout)
	browseService := services.NewBrowseService(sessionRepo, cfg.RequestTimeout)

	mux := deliveryhttp.NewRouter(
		controllers.NewSessionController(logger, sessionService),
		controllers.NewBrowseController(logger, browseService),
		controllers.NewClubController(logger, clubs),
	)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	metrics := middleware.NewMetrics(reg)

	logger.Info("application wired",
		"sessions", len(sessions),
		"club_assignment", cfg.ClubAssignment,
		"mail_provider", cfg.Mail.Provider,
		"announcements", announcer != nil,
		"tracing", cfg.OTLPEndpoint != "",
	)

	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(cfg.AllowedOrigins, metrics.Middleware(mux)),
		),
	)
	return otelhttp.NewHandler(handler, cfg.ServiceName), nil
}
