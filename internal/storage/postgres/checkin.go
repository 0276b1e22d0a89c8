package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"guardpost/internal/domain"
	"guardpost/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckInRepo writes the append-only check-in log. There is deliberately no
// update or delete statement for checkin_events.
type CheckInRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCheckInRepo(pool *pgxpool.Pool, logger *slog.Logger) *CheckInRepo {
	return &CheckInRepo{pool: pool, logger: logger}
}

func (p *CheckInRepo) Insert(ctx context.Context, ev *domain.CheckInEvent) error {
	const op = "postgres.CheckIn.Insert"

	const query = `
		INSERT INTO checkin_events (id, checkpoint_id, employee_id, lat, lng, distance_m, location_verified, scanned_qr, answers, notes, photos, checked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CheckedAt.IsZero() {
		ev.CheckedAt = time.Now().UTC()
	}

	var lat, lng *float64
	if ev.ReportedLocation != nil {
		lat = &ev.ReportedLocation.Lat
		lng = &ev.ReportedLocation.Lng
	}

	_, err := p.pool.Exec(ctx, query,
		ev.ID,
		ev.CheckpointID,
		ev.EmployeeID,
		lat,
		lng,
		ev.DistanceMeters,
		ev.LocationVerified,
		ev.ScannedQR,
		ev.Answers,
		ev.Notes,
		ev.Photos,
		ev.CheckedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("checkpoint_id", ev.CheckpointID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CheckInRepo) ListInScope(ctx context.Context, scope domain.ComplianceScope) ([]*domain.CheckInEvent, error) {
	const op = "postgres.CheckIn.ListInScope"

	const query = `
		SELECT ce.id, ce.checkpoint_id, ce.employee_id, ce.lat, ce.lng, ce.distance_m,
		       ce.location_verified, ce.scanned_qr, ce.answers, ce.notes, ce.photos, ce.checked_at
		FROM checkin_events ce
		JOIN checkpoints cp ON cp.id = ce.checkpoint_id
		WHERE ce.checked_at >= $1
		  AND ce.checked_at <= $2
		  AND ($3 = '' OR cp.site_name = $3)
		ORDER BY ce.checked_at
	`

	rows, err := p.pool.Query(ctx, query, scope.From, scope.To, scope.SiteName)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var events []*domain.CheckInEvent
	for rows.Next() {
		ev, err := scanCheckInEvent(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return events, nil
}

func (p *CheckInRepo) LastCheckinAt(ctx context.Context, checkpointID uuid.UUID) (*time.Time, error) {
	const op = "postgres.CheckIn.LastCheckinAt"

	const query = `
		SELECT checked_at
		FROM checkin_events
		WHERE checkpoint_id = $1
		ORDER BY checked_at DESC
		LIMIT 1
	`

	var at time.Time
	err := p.pool.QueryRow(ctx, query, checkpointID).Scan(&at)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &at, nil
}

func scanCheckInEvent(rows pgx.Rows) (*domain.CheckInEvent, error) {
	var (
		ev       domain.CheckInEvent
		lat, lng *float64
	)
	err := rows.Scan(
		&ev.ID,
		&ev.CheckpointID,
		&ev.EmployeeID,
		&lat,
		&lng,
		&ev.DistanceMeters,
		&ev.LocationVerified,
		&ev.ScannedQR,
		&ev.Answers,
		&ev.Notes,
		&ev.Photos,
		&ev.CheckedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		ev.ReportedLocation = &domain.Coordinate{Lat: *lat, Lng: *lng}
	}
	return &ev, nil
}
