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

// AttendanceRepo relies on a partial unique index
// (employee_id WHERE clock_out IS NULL) so two concurrent clock-ins for the
// same employee cannot both insert an open shift.
type AttendanceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAttendanceRepo(pool *pgxpool.Pool, logger *slog.Logger) *AttendanceRepo {
	return &AttendanceRepo{pool: pool, logger: logger}
}

func (p *AttendanceRepo) OpenShift(ctx context.Context, rec *domain.AttendanceRecord) error {
	const op = "postgres.Attendance.OpenShift"

	const query = `
		INSERT INTO attendance_records (id, employee_id, job_id, clock_in, clock_in_lat, clock_in_lng, distance_m, location_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.ClockIn.IsZero() {
		rec.ClockIn = time.Now().UTC()
	}

	var lat, lng *float64
	if rec.ClockInLocation != nil {
		lat = &rec.ClockInLocation.Lat
		lng = &rec.ClockInLocation.Lng
	}

	_, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.JobID,
		rec.ClockIn,
		lat,
		lng,
		rec.DistanceMeters,
		rec.LocationVerified,
	)
	if err != nil {
		// The unique-violation case is an expected race, not a storage fault.
		wrapped := e.WrapError(ctx, op, err)
		if !errors.Is(wrapped, e.ErrUniqueViolation) {
			p.logger.Error("db exec failed",
				slog.String("op", op),
				slog.Any("error", err),
				slog.String("employee_id", rec.EmployeeID.String()),
			)
		}
		return wrapped
	}

	return nil
}

// CloseShift atomically closes the single open record for the employee.
// pgx.ErrNoRows maps to ErrNotFound, which the service reports as
// NoActiveShift.
func (p *AttendanceRepo) CloseShift(ctx context.Context, employeeID uuid.UUID, clockOut time.Time, location *domain.Coordinate, hoursWorked float64) (*domain.AttendanceRecord, error) {
	const op = "postgres.Attendance.CloseShift"

	const query = `
		UPDATE attendance_records
		SET clock_out = $2,
			clock_out_lat = $3,
			clock_out_lng = $4,
			hours_worked = $5
		WHERE employee_id = $1 AND clock_out IS NULL
		RETURNING id, employee_id, job_id, clock_in, clock_out, clock_in_lat, clock_in_lng, clock_out_lat, clock_out_lng, distance_m, location_verified, hours_worked
	`

	var lat, lng *float64
	if location != nil {
		lat = &location.Lat
		lng = &location.Lng
	}

	rec, err := scanAttendanceRecord(p.pool.QueryRow(ctx, query, employeeID, clockOut, lat, lng, hoursWorked))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("employee_id", employeeID.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return rec, nil
}

func (p *AttendanceRepo) GetOpen(ctx context.Context, employeeID uuid.UUID) (*domain.AttendanceRecord, error) {
	const op = "postgres.Attendance.GetOpen"

	const query = `
		SELECT id, employee_id, job_id, clock_in, clock_out, clock_in_lat, clock_in_lng, clock_out_lat, clock_out_lng, distance_m, location_verified, hours_worked
		FROM attendance_records
		WHERE employee_id = $1 AND clock_out IS NULL
	`

	rec, err := scanAttendanceRecord(p.pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return rec, nil
}

func scanAttendanceRecord(row pgx.Row) (*domain.AttendanceRecord, error) {
	var (
		rec            domain.AttendanceRecord
		inLat, inLng   *float64
		outLat, outLng *float64
	)
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.JobID,
		&rec.ClockIn,
		&rec.ClockOut,
		&inLat,
		&inLng,
		&outLat,
		&outLng,
		&rec.DistanceMeters,
		&rec.LocationVerified,
		&rec.HoursWorked,
	)
	if err != nil {
		return nil, err
	}
	if inLat != nil && inLng != nil {
		rec.ClockInLocation = &domain.Coordinate{Lat: *inLat, Lng: *inLng}
	}
	if outLat != nil && outLng != nil {
		rec.ClockOutLocation = &domain.Coordinate{Lat: *outLat, Lng: *outLng}
	}
	return &rec, nil
}
