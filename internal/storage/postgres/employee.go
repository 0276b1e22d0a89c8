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

type EmployeeRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEmployeeRepo(pool *pgxpool.Pool, logger *slog.Logger) *EmployeeRepo {
	return &EmployeeRepo{pool: pool, logger: logger}
}

const employeeColumns = `id, name, email, department, position, annual_salary, contract_id, bank_account, sort_code, tax_code, ni_number, created_at`

func (p *EmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	const op = "postgres.Employee.Create"

	const query = `
		INSERT INTO employees (id, name, email, department, position, annual_salary, contract_id, bank_account, sort_code, tax_code, ni_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if emp.ID == uuid.Nil {
		emp.ID = uuid.New()
	}
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = time.Now().UTC()
	}
	if emp.TaxCode == "" {
		emp.TaxCode = "1257L"
	}

	_, err := p.pool.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.Department,
		emp.Position,
		emp.AnnualSalary,
		emp.ContractID,
		emp.BankAccount,
		emp.SortCode,
		emp.TaxCode,
		emp.NINumber,
		emp.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *EmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	const op = "postgres.Employee.List"

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	return p.queryEmployees(ctx, op, query)
}

func (p *EmployeeRepo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]*domain.Employee, error) {
	const op = "postgres.Employee.ListByContract"

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE contract_id = $1 ORDER BY created_at DESC`

	return p.queryEmployees(ctx, op, query, contractID)
}

func (p *EmployeeRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	const op = "postgres.Employee.Get"

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return emp, nil
}

func (p *EmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	const op = "postgres.Employee.Update"

	const query = `
		UPDATE employees
		SET name = $2,
			email = $3,
			department = $4,
			position = $5,
			annual_salary = $6,
			contract_id = $7,
			bank_account = $8,
			sort_code = $9,
			tax_code = $10,
			ni_number = $11
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.Department,
		emp.Position,
		emp.AnnualSalary,
		emp.ContractID,
		emp.BankAccount,
		emp.SortCode,
		emp.TaxCode,
		emp.NINumber,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", emp.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Employee.Delete"

	cmd, err := p.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *EmployeeRepo) queryEmployees(ctx context.Context, op, query string, args ...any) ([]*domain.Employee, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var emp domain.Employee
	err := row.Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.Department,
		&emp.Position,
		&emp.AnnualSalary,
		&emp.ContractID,
		&emp.BankAccount,
		&emp.SortCode,
		&emp.TaxCode,
		&emp.NINumber,
		&emp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
