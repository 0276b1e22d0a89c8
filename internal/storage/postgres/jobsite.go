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

type JobSiteRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewJobSiteRepo(pool *pgxpool.Pool, logger *slog.Logger) *JobSiteRepo {
	return &JobSiteRepo{pool: pool, logger: logger}
}

func (p *JobSiteRepo) Create(ctx context.Context, site *domain.JobSite) error {
	const op = "postgres.JobSite.Create"

	const query = `
		INSERT INTO job_sites (id, name, client_name, lat, lng, radius_m, require_location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if site.ID == uuid.Nil {
		site.ID = uuid.New()
	}
	if site.CreatedAt.IsZero() {
		site.CreatedAt = time.Now().UTC()
	}

	var lat, lng *float64
	if site.Location != nil {
		lat = &site.Location.Lat
		lng = &site.Location.Lng
	}

	_, err := p.pool.Exec(ctx, query,
		site.ID,
		site.Name,
		site.ClientName,
		lat,
		lng,
		site.RadiusMeters,
		site.RequireLocation,
		site.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *JobSiteRepo) Get(ctx context.Context, id uuid.UUID) (*domain.JobSite, error) {
	const op = "postgres.JobSite.Get"

	const query = `
		SELECT id, name, client_name, lat, lng, radius_m, require_location, created_at
		FROM job_sites
		WHERE id = $1
	`

	site, err := scanJobSite(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return site, nil
}

func (p *JobSiteRepo) List(ctx context.Context) ([]*domain.JobSite, error) {
	const op = "postgres.JobSite.List"

	const query = `
		SELECT id, name, client_name, lat, lng, radius_m, require_location, created_at
		FROM job_sites
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var sites []*domain.JobSite
	for rows.Next() {
		site, err := scanJobSite(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return sites, nil
}

func scanJobSite(row pgx.Row) (*domain.JobSite, error) {
	var (
		site     domain.JobSite
		lat, lng *float64
	)
	err := row.Scan(
		&site.ID,
		&site.Name,
		&site.ClientName,
		&lat,
		&lng,
		&site.RadiusMeters,
		&site.RequireLocation,
		&site.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		site.Location = &domain.Coordinate{Lat: *lat, Lng: *lng}
	}
	return &site, nil
}
