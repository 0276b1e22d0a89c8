package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"guardpost/internal/domain"
	"guardpost/internal/geo"
	"guardpost/pkg/e"

	"github.com/google/uuid"
)

// Applied when a job site has coordinates but no explicit radius.
const defaultSiteRadiusM = 100

type attendanceService struct {
	attendance AttendanceRepository
	jobSites   JobSiteRepository
	logger     *slog.Logger
}

func NewAttendanceService(attendance AttendanceRepository, jobSites JobSiteRepository, logger *slog.Logger) AttendanceService {
	return &attendanceService{
		attendance: attendance,
		jobSites:   jobSites,
		logger:     logger,
	}
}

func (s *attendanceService) ClockIn(ctx context.Context, req domain.ClockInRequest) (*domain.AttendanceRecord, error) {
	rec := &domain.AttendanceRecord{
		ID:              uuid.New(),
		EmployeeID:      req.EmployeeID,
		JobID:           req.JobID,
		ClockIn:         time.Now().UTC(),
		ClockInLocation: req.Location,
	}

	if req.JobID != nil {
		site, err := s.jobSites.Get(ctx, *req.JobID)
		if err != nil {
			return nil, err
		}
		verification, err := s.applyGate(site, req.Location, req.EmployeeID, "clock-in")
		if err != nil {
			return nil, err
		}
		if verification != nil {
			rec.DistanceMeters = math.Round(verification.DistanceMeters)
			rec.LocationVerified = verification.Verified
		}
	}

	if err := s.attendance.OpenShift(ctx, rec); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return nil, e.ErrShiftAlreadyActive
		}
		return nil, err
	}
	return rec, nil
}

func (s *attendanceService) ClockOut(ctx context.Context, req domain.ClockOutRequest) (*domain.ClockOutResponse, error) {
	open, err := s.attendance.GetOpen(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.ErrNoActiveShift
		}
		return nil, err
	}

	if open.JobID != nil {
		site, err := s.jobSites.Get(ctx, *open.JobID)
		if err != nil {
			return nil, err
		}
		if _, err := s.applyGate(site, req.Location, req.EmployeeID, "clock-out"); err != nil {
			return nil, err
		}
	}

	clockOut := time.Now().UTC()
	hours := math.Round(clockOut.Sub(open.ClockIn).Hours()*100) / 100

	rec, err := s.attendance.CloseShift(ctx, req.EmployeeID, clockOut, req.Location, hours)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.ErrNoActiveShift
		}
		return nil, err
	}

	return &domain.ClockOutResponse{
		RecordID:    rec.ID,
		HoursWorked: hours,
	}, nil
}

// applyGate enforces the site's location policy. A site with no target
// coordinate never blocks, whatever its require_location flag says. With a
// target configured, a missing location when the site requires one blocks the
// transition; being outside the radius only warns, the record keeps Verified
// false.
func (s *attendanceService) applyGate(site *domain.JobSite, location *domain.Coordinate, employeeID uuid.UUID, action string) (*geo.Verification, error) {
	if site.Location == nil {
		return nil, nil
	}
	if site.RequireLocation && location == nil {
		return nil, e.ErrLocationUnavailable
	}
	if location == nil {
		return nil, nil
	}

	radius := site.RadiusMeters
	if radius <= 0 {
		radius = defaultSiteRadiusM
	}

	v := geo.Verify(*location, *site.Location, float64(radius))
	if !v.Verified {
		s.logger.Warn("location outside site radius",
			slog.String("action", action),
			slog.String("employee_id", employeeID.String()),
			slog.String("site_id", site.ID.String()),
			slog.Float64("distance_m", math.Round(v.DistanceMeters)),
			slog.Int("radius_m", radius),
		)
	}
	return &v, nil
}
