package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"guardpost/internal/domain"
	"guardpost/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDashboardRepo(pool *pgxpool.Pool, logger *slog.Logger) *DashboardRepo {
	return &DashboardRepo{pool: pool, logger: logger}
}

func (p *DashboardRepo) EmployeeTotals(ctx context.Context) (int64, float64, error) {
	const op = "postgres.Dashboard.EmployeeTotals"

	const query = `SELECT COUNT(*), COALESCE(SUM(annual_salary), 0) FROM employees`

	var (
		count int64
		total float64
	)
	if err := p.pool.QueryRow(ctx, query).Scan(&count, &total); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, 0, e.WrapError(ctx, op, err)
	}

	return count, total, nil
}

func (p *DashboardRepo) DepartmentRollup(ctx context.Context) ([]domain.DepartmentRollup, error) {
	const op = "postgres.Dashboard.DepartmentRollup"

	const query = `
		SELECT department, COUNT(*), COALESCE(SUM(annual_salary), 0)
		FROM employees
		GROUP BY department
		ORDER BY department
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var rollup []domain.DepartmentRollup
	for rows.Next() {
		var d domain.DepartmentRollup
		if err := rows.Scan(&d.Name, &d.Count, &d.TotalSalary); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		rollup = append(rollup, d)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return rollup, nil
}

func (p *DashboardRepo) RecentPayslips(ctx context.Context, limit int) ([]domain.RecentPayslip, error) {
	const op = "postgres.Dashboard.RecentPayslips"

	if limit <= 0 {
		limit = 5
	}

	const query = `
		SELECT id, employee_name, period_month, period_year, net_salary
		FROM payslips
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var recent []domain.RecentPayslip
	for rows.Next() {
		var (
			rp          domain.RecentPayslip
			month, year int
		)
		if err := rows.Scan(&rp.ID, &rp.EmployeeName, &month, &year, &rp.NetSalary); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		rp.Period = fmt.Sprintf("%d/%d", month, year)
		recent = append(recent, rp)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return recent, nil
}
