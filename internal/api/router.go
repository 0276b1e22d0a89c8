package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"guardpost/internal/api/handlers/http/admin"
	"guardpost/internal/api/handlers/http/patrol"
	"guardpost/internal/api/handlers/http/system"
	"guardpost/internal/config"
	"guardpost/internal/middleware"
	"guardpost/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(
		logger,
		svc.Checkpoints,
		svc.Patrol,
		svc.JobSites,
		svc.Workforce,
		svc.Payroll,
		svc.Contracts,
		svc.Dashboard,
	)
	patrolHandler := patrol.NewHandler(logger, svc.Attendance, svc.Patrol)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, patrolHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, patrolHandler *patrol.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/compliance", adminHandler.AdminCompliance)
			ar.Get("/dashboard", adminHandler.AdminDashboard)

			ar.Route("/checkpoints", func(cr chi.Router) {
				cr.Post("/", adminHandler.AdminCheckpointCreate)
				cr.Get("/", adminHandler.AdminCheckpointList)

				cr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminCheckpointGet)
					rr.Put("/", adminHandler.AdminCheckpointUpdate)
					rr.Delete("/", adminHandler.AdminCheckpointDeactivate)
					rr.Get("/cadence", adminHandler.AdminCheckpointCadence)
				})
			})

			ar.Route("/job-sites", func(jr chi.Router) {
				jr.Post("/", adminHandler.AdminJobSiteCreate)
				jr.Get("/", adminHandler.AdminJobSiteList)
				jr.Get("/{id}", adminHandler.AdminJobSiteGet)
			})

			ar.Route("/employees", func(er chi.Router) {
				er.Post("/", adminHandler.AdminEmployeeCreate)
				er.Get("/", adminHandler.AdminEmployeeList)

				er.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminEmployeeGet)
					rr.Put("/", adminHandler.AdminEmployeeUpdate)
					rr.Delete("/", adminHandler.AdminEmployeeDelete)
				})
			})

			ar.Route("/payslips", func(pr chi.Router) {
				pr.Post("/", adminHandler.AdminPayslipCreate)
				pr.Get("/", adminHandler.AdminPayslipList)
				pr.Get("/{id}", adminHandler.AdminPayslipGet)
				pr.Delete("/{id}", adminHandler.AdminPayslipDelete)
			})

			ar.Route("/contracts", func(cr chi.Router) {
				cr.Post("/", adminHandler.AdminContractCreate)
				cr.Get("/", adminHandler.AdminContractList)

				cr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminContractGet)
					rr.Put("/", adminHandler.AdminContractUpdate)
					rr.Delete("/", adminHandler.AdminContractDelete)
				})
			})
		})

		// PATROL
		api.Route("/patrol", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/clock-in", patrolHandler.PatrolClockIn)
			pr.Post("/clock-out", patrolHandler.PatrolClockOut)
			pr.Post("/check-in", patrolHandler.PatrolCheckIn)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
