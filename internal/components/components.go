package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"guardpost/internal/api"
	"guardpost/internal/config"
	"guardpost/internal/redis"
	"guardpost/internal/service"
	"guardpost/internal/storage/postgres"
	"guardpost/internal/workers"
	"guardpost/pkg/logger"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	AlertQueue  *redis.AlertQueue
	Monitor     *workers.OverdueMonitor
	AlertSender *service.AlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	cache := redis.NewCheckpointCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:overdue")

	checkpointSvc := service.NewCheckpointAdminService(storage.Checkpoints, cache, logger)
	patrolSvc := service.NewPatrolService(storage.Checkpoints, storage.CheckIns, cache, logger)
	attendanceSvc := service.NewAttendanceService(storage.Attendance, storage.JobSites, logger)
	jobSiteSvc := service.NewJobSiteService(storage.JobSites)
	workforceSvc := service.NewWorkforceService(storage.Employees)
	payrollSvc := service.NewPayrollService(storage.Payslips, storage.Employees)
	contractSvc := service.NewContractService(storage.Contracts, storage.Employees)
	dashboardSvc := service.NewDashboardService(storage.Dashboard)

	srv := service.NewService(
		checkpointSvc,
		patrolSvc,
		attendanceSvc,
		jobSiteSvc,
		workforceSvc,
		payrollSvc,
		contractSvc,
		dashboardSvc,
	)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	monitor := workers.NewOverdueMonitor(
		storage.Checkpoints,
		cache,
		storage.CheckIns,
		alertQueue,
		logger,
		cfg.Alerts.CheckInterval,
	)
	alertSender := service.NewAlertSender(logger, cfg.Alerts, alertQueue)

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		AlertQueue:  alertQueue,
		Monitor:     monitor,
		AlertSender: alertSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
