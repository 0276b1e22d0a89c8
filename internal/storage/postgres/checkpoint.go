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

type CheckpointRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCheckpointRepo(pool *pgxpool.Pool, logger *slog.Logger) *CheckpointRepo {
	return &CheckpointRepo{pool: pool, logger: logger}
}

const checkpointColumns = `id, name, site_name, lat, lng, radius_m, check_frequency_min, questions, require_location, is_active, created_at`

func (p *CheckpointRepo) Create(ctx context.Context, cp *domain.Checkpoint) error {
	const op = "postgres.Checkpoint.Create"

	const query = `
		INSERT INTO checkpoints (id, name, site_name, lat, lng, radius_m, check_frequency_min, questions, require_location, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	for i := range cp.Questions {
		if cp.Questions[i].ID == uuid.Nil {
			cp.Questions[i].ID = uuid.New()
		}
	}

	_, err := p.pool.Exec(ctx, query,
		cp.ID,
		cp.Name,
		cp.SiteName,
		cp.Location.Lat,
		cp.Location.Lng,
		cp.RadiusMeters,
		cp.CheckFreqMin,
		cp.Questions,
		cp.RequireLocation,
		cp.IsActive,
		cp.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CheckpointRepo) List(ctx context.Context, page, limit int) ([]*domain.Checkpoint, int64, error) {
	const op = "postgres.Checkpoint.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM checkpoints`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `
		SELECT ` + checkpointColumns + `
		FROM checkpoints
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	checkpoints, err := scanCheckpoints(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return checkpoints, total, nil
}

func (p *CheckpointRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Checkpoint, error) {
	const op = "postgres.Checkpoint.Get"

	query := `
		SELECT ` + checkpointColumns + `
		FROM checkpoints
		WHERE id = $1
	`

	cp, err := scanCheckpoint(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return cp, nil
}

func (p *CheckpointRepo) Update(ctx context.Context, cp *domain.Checkpoint) error {
	const op = "postgres.Checkpoint.Update"

	const query = `
		UPDATE checkpoints
		SET name = $2,
			site_name = $3,
			lat = $4,
			lng = $5,
			radius_m = $6,
			check_frequency_min = $7,
			questions = $8,
			require_location = $9
		WHERE id = $1
	`

	for i := range cp.Questions {
		if cp.Questions[i].ID == uuid.Nil {
			cp.Questions[i].ID = uuid.New()
		}
	}

	cmd, err := p.pool.Exec(ctx, query,
		cp.ID,
		cp.Name,
		cp.SiteName,
		cp.Location.Lat,
		cp.Location.Lng,
		cp.RadiusMeters,
		cp.CheckFreqMin,
		cp.Questions,
		cp.RequireLocation,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", cp.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// Deactivate soft-deletes: historical check-ins keep referencing the row.
func (p *CheckpointRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Checkpoint.Deactivate"

	const query = `
		UPDATE checkpoints
		SET is_active = FALSE
		WHERE id = $1 AND is_active = TRUE
	`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *CheckpointRepo) ListActive(ctx context.Context, siteName string) ([]*domain.Checkpoint, error) {
	const op = "postgres.Checkpoint.ListActive"

	query := `
		SELECT ` + checkpointColumns + `
		FROM checkpoints
		WHERE is_active = TRUE
		  AND ($1 = '' OR site_name = $1)
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query, siteName)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	checkpoints, err := scanCheckpoints(rows)
	if err != nil {
		p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return checkpoints, nil
}

func scanCheckpoints(rows pgx.Rows) ([]*domain.Checkpoint, error) {
	var checkpoints []*domain.Checkpoint
	for rows.Next() {
		cp, err := scanCheckpoint(rows)
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return checkpoints, nil
}

func scanCheckpoint(row pgx.Row) (*domain.Checkpoint, error) {
	var cp domain.Checkpoint
	err := row.Scan(
		&cp.ID,
		&cp.Name,
		&cp.SiteName,
		&cp.Location.Lat,
		&cp.Location.Lng,
		&cp.RadiusMeters,
		&cp.CheckFreqMin,
		&cp.Questions,
		&cp.RequireLocation,
		&cp.IsActive,
		&cp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}
