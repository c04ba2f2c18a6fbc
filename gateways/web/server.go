package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	config "github.com/xilidan/interview/config/interview"
	"github.com/xilidan/interview/gateways/web/handler"
	"github.com/xilidan/interview/services/interview/reporter"
	"github.com/xilidan/interview/services/interview/usecase"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg      *config.Config
	log      *slog.Logger
	reporter *reporter.Reporter
	router   http.Handler
}

func New(cfg *config.Config, uc usecase.Usecase, rep *reporter.Reporter, log *slog.Logger) *Server {
	log.Info("creating web server")
	log.Debug("server config",
		slog.Int("port", cfg.Port),
		slog.Bool("auth_enabled", cfg.JWTSecret != ""))

	h := handler.NewHandler(uc, rep, log)

	return &Server{
		cfg:      cfg,
		log:      log,
		reporter: rep,
		router:   NewRouter(h, cfg.JWTSecret, log),
	}
}

// NewRouter mounts the API. Everything except / and /health goes through
// bearer auth when secret is set.
func NewRouter(h handler.Handler, secret string, log *slog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/", h.Welcome)
	router.Get("/health", h.Health)

	router.Group(func(r chi.Router) {
		r.Use(handler.Auth(secret, log))

		r.Post("/meetings", h.CreateMeeting)
		r.Get("/meetings", h.ListMeetings)
		r.Post("/suggestions", h.Suggest)

		r.Route("/meeting/{id}", func(mr chi.Router) {
			mr.Get("/", h.GetMeeting)
			mr.Patch("/status", h.UpdateStatus)
			mr.Get("/analysis", h.GetAnalysis)
			mr.Post("/generate-report", h.GenerateReport)
			mr.Get("/report-status", h.ReportStatus)
		})
	})

	return router
}

func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("interview api started", slog.String("address", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		s.log.Error("server error received", slog.String("error", err.Error()))
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		s.log.Info("start shutdown", slog.String("signal", sig.String()))
	case <-ctx.Done():
		s.log.Info("closing server due to context cancellation")
	}

	return s.stop(srv)
}

func (s *Server) stop(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("shutting down HTTP server gracefully")
	if err := srv.Shutdown(ctx); err != nil {
		s.log.Error("graceful shutdown failed", slog.String("error", err.Error()))
		s.log.Warn("forcing server close")
		srv.Close()
		return fmt.Errorf("failed to gracefully shutdown server: %w", err)
	}

	s.log.Info("waiting for report jobs")
	if err := s.reporter.Shutdown(ctx); err != nil {
		return fmt.Errorf("report jobs did not finish: %w", err)
	}

	s.log.Info("server stopped cleanly")
	return nil
}
