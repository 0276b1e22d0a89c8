package service_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"guardpost/internal/domain"
	"guardpost/internal/service"
	"guardpost/pkg/e"

	mock_service "guardpost/internal/service/mocks"
)

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }

func gatedSite() *domain.JobSite {
	return &domain.JobSite{
		ID:              uuid.New(),
		Name:            "distribution centre",
		ClientName:      "Acme Logistics",
		Location:        &domain.Coordinate{Lat: 52.4862, Lng: -1.8904},
		RadiusMeters:    100,
		RequireLocation: true,
		CreatedAt:       time.Now().UTC(),
	}
}

// --- ClockIn ---

func TestAttendanceService_ClockIn_NoJob(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	var got *domain.AttendanceRecord
	attendance.EXPECT().
		OpenShift(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			got = rec
			return nil
		}).
		Times(1)

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	employeeID := uuid.New()
	rec, err := svc.ClockIn(context.Background(), domain.ClockInRequest{EmployeeID: employeeID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.ID == uuid.Nil || rec.EmployeeID != employeeID {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if got.ClockOut != nil {
		t.Fatalf("new shift must be open, got clock_out=%v", got.ClockOut)
	}
}

func TestAttendanceService_ClockIn_SecondActiveShift(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	attendance.EXPECT().
		OpenShift(gomock.Any(), gomock.Any()).
		Return(e.Wrap("postgres.Attendance.OpenShift", e.ErrUniqueViolation)).
		Times(1)

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	_, err := svc.ClockIn(context.Background(), domain.ClockInRequest{EmployeeID: uuid.New()})
	if !errors.Is(err, e.ErrShiftAlreadyActive) {
		t.Fatalf("expected ErrShiftAlreadyActive, got %v", err)
	}
}

func TestAttendanceService_ClockIn_SiteRequiresLocation_Missing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	site := gatedSite()
	jobSites.EXPECT().Get(gomock.Any(), site.ID).Return(site, nil).Times(1)
	// OpenShift must not be reached.

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	_, err := svc.ClockIn(context.Background(), domain.ClockInRequest{
		EmployeeID: uuid.New(),
		JobID:      uuidPtr(site.ID),
	})
	if !errors.Is(err, e.ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
}

func TestAttendanceService_ClockIn_OutsideRadius_WarnsNotBlocks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	site := gatedSite()
	jobSites.EXPECT().Get(gomock.Any(), site.ID).Return(site, nil).Times(1)

	var got *domain.AttendanceRecord
	attendance.EXPECT().
		OpenShift(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			got = rec
			return nil
		}).
		Times(1)

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	// Roughly 600 meters north of the site.
	rec, err := svc.ClockIn(context.Background(), domain.ClockInRequest{
		EmployeeID: uuid.New(),
		JobID:      uuidPtr(site.ID),
		Location:   &domain.Coordinate{Lat: site.Location.Lat + 0.0054, Lng: site.Location.Lng},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.LocationVerified {
		t.Fatalf("expected unverified clock-in")
	}
	if got.DistanceMeters < 500 || got.DistanceMeters > 700 {
		t.Fatalf("distance out of expected range: %v", got.DistanceMeters)
	}
}

func TestAttendanceService_ClockIn_WithinRadius_Verified(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	site := gatedSite()
	jobSites.EXPECT().Get(gomock.Any(), site.ID).Return(site, nil).Times(1)
	attendance.EXPECT().OpenShift(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	rec, err := svc.ClockIn(context.Background(), domain.ClockInRequest{
		EmployeeID: uuid.New(),
		JobID:      uuidPtr(site.ID),
		Location:   &domain.Coordinate{Lat: site.Location.Lat, Lng: site.Location.Lng},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !rec.LocationVerified {
		t.Fatalf("expected verified clock-in, distance=%v", rec.DistanceMeters)
	}
}

// --- ClockOut ---

func TestAttendanceService_ClockOut_NoActiveShift(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	attendance.EXPECT().
		GetOpen(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("postgres.Attendance.GetOpen", e.ErrNotFound)).
		Times(1)

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	_, err := svc.ClockOut(context.Background(), domain.ClockOutRequest{EmployeeID: uuid.New()})
	if !errors.Is(err, e.ErrNoActiveShift) {
		t.Fatalf("expected ErrNoActiveShift, got %v", err)
	}
}

func TestAttendanceService_ClockOut_HoursWorked(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	employeeID := uuid.New()
	open := &domain.AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		ClockIn:    time.Now().UTC().Add(-8 * time.Hour),
	}
	attendance.EXPECT().GetOpen(gomock.Any(), employeeID).Return(open, nil).Times(1)

	var gotHours float64
	attendance.EXPECT().
		CloseShift(gomock.Any(), employeeID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, clockOut time.Time, _ *domain.Coordinate, hours float64) (*domain.AttendanceRecord, error) {
			gotHours = hours
			closed := *open
			closed.ClockOut = &clockOut
			closed.HoursWorked = &hours
			return &closed, nil
		}).
		Times(1)

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	resp, err := svc.ClockOut(context.Background(), domain.ClockOutRequest{EmployeeID: employeeID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if math.Abs(resp.HoursWorked-8.0) > 0.01 {
		t.Fatalf("expected ~8 hours worked, got %v", resp.HoursWorked)
	}
	if gotHours != resp.HoursWorked {
		t.Fatalf("response hours %v do not match persisted hours %v", resp.HoursWorked, gotHours)
	}
	// Two decimal places at most.
	if math.Round(resp.HoursWorked*100)/100 != resp.HoursWorked {
		t.Fatalf("hours not rounded to two decimals: %v", resp.HoursWorked)
	}
}

func TestAttendanceService_ClockOut_SiteRequiresLocation_Missing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	site := gatedSite()
	employeeID := uuid.New()
	open := &domain.AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		JobID:      uuidPtr(site.ID),
		ClockIn:    time.Now().UTC().Add(-4 * time.Hour),
	}
	attendance.EXPECT().GetOpen(gomock.Any(), employeeID).Return(open, nil).Times(1)
	jobSites.EXPECT().Get(gomock.Any(), site.ID).Return(site, nil).Times(1)
	// CloseShift must not be reached: the shift stays open.

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	_, err := svc.ClockOut(context.Background(), domain.ClockOutRequest{EmployeeID: employeeID})
	if !errors.Is(err, e.ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
}

func TestAttendanceService_ClockIn_SiteWithoutCoordinates_AllowsUnverified(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attendance := mock_service.NewMockAttendanceRepository(ctrl)
	jobSites := mock_service.NewMockJobSiteRepository(ctrl)

	// A mobile job: require_location set but no target coordinate configured.
	// The gate has nothing to verify against, so the transition always passes.
	site := gatedSite()
	site.Location = nil

	jobSites.EXPECT().Get(gomock.Any(), site.ID).Return(site, nil).Times(1)

	var got *domain.AttendanceRecord
	attendance.EXPECT().
		OpenShift(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *domain.AttendanceRecord) error {
			got = rec
			return nil
		}).
		Times(1)

	svc := service.NewAttendanceService(attendance, jobSites, discardLogger())

	rec, err := svc.ClockIn(context.Background(), domain.ClockInRequest{
		EmployeeID: uuid.New(),
		JobID:      uuidPtr(site.ID),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.LocationVerified {
		t.Fatalf("no target coordinate, record must stay unverified: %+v", rec)
	}
	if got.DistanceMeters != 0 {
		t.Fatalf("expected distance 0, got %v", got.DistanceMeters)
	}
}
