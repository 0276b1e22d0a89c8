package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"guardpost/internal/domain"
	"guardpost/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PayslipRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPayslipRepo(pool *pgxpool.Pool, logger *slog.Logger) *PayslipRepo {
	return &PayslipRepo{pool: pool, logger: logger}
}

const payslipColumns = `id, employee_id, employee_name, period_month, period_year, gross_salary, tax_deduction, ni_deduction, other_deductions, bonuses, net_salary, created_at`

func (p *PayslipRepo) Create(ctx context.Context, ps *domain.Payslip) error {
	const op = "postgres.Payslip.Create"

	const query = `
		INSERT INTO payslips (id, employee_id, employee_name, period_month, period_year, gross_salary, tax_deduction, ni_deduction, other_deductions, bonuses, net_salary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if ps.ID == uuid.Nil {
		ps.ID = uuid.New()
	}
	if ps.CreatedAt.IsZero() {
		ps.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		ps.ID,
		ps.EmployeeID,
		ps.EmployeeName,
		ps.PeriodMonth,
		ps.PeriodYear,
		ps.GrossSalary,
		ps.TaxDeduction,
		ps.NIDeduction,
		ps.OtherDeductions,
		ps.Bonuses,
		ps.NetSalary,
		ps.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *PayslipRepo) List(ctx context.Context) ([]*domain.Payslip, error) {
	const op = "postgres.Payslip.List"

	query := `SELECT ` + payslipColumns + ` FROM payslips ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var payslips []*domain.Payslip
	for rows.Next() {
		ps, err := scanPayslip(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		payslips = append(payslips, ps)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return payslips, nil
}

func (p *PayslipRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Payslip, error) {
	const op = "postgres.Payslip.Get"

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`

	ps, err := scanPayslip(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return ps, nil
}

func (p *PayslipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Payslip.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func scanPayslip(row pgx.Row) (*domain.Payslip, error) {
	var ps domain.Payslip
	err := row.Scan(
		&ps.ID,
		&ps.EmployeeID,
		&ps.EmployeeName,
		&ps.PeriodMonth,
		&ps.PeriodYear,
		&ps.GrossSalary,
		&ps.TaxDeduction,
		&ps.NIDeduction,
		&ps.OtherDeductions,
		&ps.Bonuses,
		&ps.NetSalary,
		&ps.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ps, nil
}
