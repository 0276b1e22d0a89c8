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

type ContractRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewContractRepo(pool *pgxpool.Pool, logger *slog.Logger) *ContractRepo {
	return &ContractRepo{pool: pool, logger: logger}
}

const contractColumns = `id, name, client, budget, start_date, end_date, description, status, created_at`

func (p *ContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	const op = "postgres.Contract.Create"

	const query = `
		INSERT INTO contracts (id, name, client, budget, start_date, end_date, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.Status == "" {
		c.Status = domain.ContractActive
	}

	_, err := p.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Client,
		c.Budget,
		c.StartDate,
		c.EndDate,
		c.Description,
		c.Status,
		c.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ContractRepo) List(ctx context.Context) ([]*domain.Contract, error) {
	const op = "postgres.Contract.List"

	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var contracts []*domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return contracts, nil
}

func (p *ContractRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	const op = "postgres.Contract.Get"

	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`

	c, err := scanContract(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return c, nil
}

func (p *ContractRepo) Update(ctx context.Context, c *domain.Contract) error {
	const op = "postgres.Contract.Update"

	const query = `
		UPDATE contracts
		SET name = $2,
			client = $3,
			budget = $4,
			start_date = $5,
			end_date = $6,
			description = $7,
			status = $8
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Client,
		c.Budget,
		c.StartDate,
		c.EndDate,
		c.Description,
		c.Status,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", c.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// Delete removes a contract after detaching its employees, so their records
// survive with contract_id cleared.
func (p *ContractRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Contract.Delete"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE employees SET contract_id = NULL WHERE contract_id = $1`, id); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Client,
		&c.Budget,
		&c.StartDate,
		&c.EndDate,
		&c.Description,
		&c.Status,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
