package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"guardpost/internal/config"
	"guardpost/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool        *pgxpool.Pool
	Checkpoints CheckpointRepository
	CheckIns    CheckInRepository
	Attendance  AttendanceRepository
	JobSites    JobSiteRepository
	Employees   EmployeeRepository
	Payslips    PayslipRepository
	Contracts   ContractRepository
	Dashboard   DashboardRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns
	poolCfg.MinConns = cfg.Postgres.MinConns
	poolCfg.MaxConnLifetime = cfg.Postgres.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	pg := &Postgres{
		Pool:        pool,
		Checkpoints: NewCheckpointRepo(pool, logger),
		CheckIns:    NewCheckInRepo(pool, logger),
		Attendance:  NewAttendanceRepo(pool, logger),
		JobSites:    NewJobSiteRepo(pool, logger),
		Employees:   NewEmployeeRepo(pool, logger),
		Payslips:    NewPayslipRepo(pool, logger),
		Contracts:   NewContractRepo(pool, logger),
		Dashboard:   NewDashboardRepo(pool, logger),
	}

	return pg, nil
}
