package patrol_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"guardpost/internal/api/handlers/http/patrol"
	mock_patrol "guardpost/internal/api/handlers/http/patrol/mocks"
	"guardpost/internal/domain"
	"guardpost/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newTestHandler(t *testing.T) (*patrol.Handler, *mock_patrol.MockAttendanceGate, *mock_patrol.MockCheckpointCheckins) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	attendance := mock_patrol.NewMockAttendanceGate(ctrl)
	checkins := mock_patrol.NewMockCheckpointCheckins(ctrl)
	return patrol.NewHandler(newTestLogger(), attendance, checkins), attendance, checkins
}

func TestPatrolClockIn_OK_201(t *testing.T) {
	t.Parallel()

	h, attendance, _ := newTestHandler(t)

	empID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"location":{"lat":52.4862,"lng":-1.8904}}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-in", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	want := &domain.AttendanceRecord{ID: uuid.New(), EmployeeID: empID, LocationVerified: true}

	attendance.EXPECT().
		ClockIn(gomock.Any(), domain.ClockInRequest{
			EmployeeID: empID,
			Location:   &domain.Coordinate{Lat: 52.4862, Lng: -1.8904},
		}).
		Return(want, nil).
		Times(1)

	h.PatrolClockIn(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.AttendanceRecord](t, rr)
	if got.ID != want.ID || !got.LocationVerified {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestPatrolClockIn_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-in", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.PatrolClockIn(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPatrolClockIn_MissingEmployeeID_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-in", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	h.PatrolClockIn(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPatrolClockIn_BadLatitude_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)

	empID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"location":{"lat":123.0,"lng":0}}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.PatrolClockIn(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPatrolClockIn_ShiftAlreadyActive_409(t *testing.T) {
	t.Parallel()

	h, attendance, _ := newTestHandler(t)

	empID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	attendance.EXPECT().
		ClockIn(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("open shift exists", e.ErrShiftAlreadyActive)).
		Times(1)

	h.PatrolClockIn(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestPatrolClockIn_LocationRequired_422(t *testing.T) {
	t.Parallel()

	h, attendance, _ := newTestHandler(t)

	empID := uuid.New()
	jobID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"job_id":%q}`, empID, jobID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	attendance.EXPECT().
		ClockIn(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("clock-in requires location", e.ErrLocationUnavailable)).
		Times(1)

	h.PatrolClockIn(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	}
}

func TestPatrolClockOut_OK_200(t *testing.T) {
	t.Parallel()

	h, attendance, _ := newTestHandler(t)

	empID := uuid.New()
	recID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-out", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	attendance.EXPECT().
		ClockOut(gomock.Any(), domain.ClockOutRequest{EmployeeID: empID}).
		Return(&domain.ClockOutResponse{RecordID: recID, HoursWorked: 7.98}, nil).
		Times(1)

	h.PatrolClockOut(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ClockOutResponse](t, rr)
	if got.RecordID != recID || got.HoursWorked != 7.98 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestPatrolClockOut_NoActiveShift_409(t *testing.T) {
	t.Parallel()

	h, attendance, _ := newTestHandler(t)

	empID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/clock-out", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	attendance.EXPECT().
		ClockOut(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("no open shift", e.ErrNoActiveShift)).
		Times(1)

	h.PatrolClockOut(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d, body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestPatrolCheckIn_OK_201(t *testing.T) {
	t.Parallel()

	h, _, checkins := newTestHandler(t)

	empID := uuid.New()
	cpID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"checkpoint_id":%q,"location":{"lat":51.5007,"lng":-0.1246},"scanned_qr":true}`, empID, cpID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/check-in", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	want := &domain.CheckInEvent{
		ID:               uuid.New(),
		CheckpointID:     cpID,
		EmployeeID:       empID,
		LocationVerified: true,
		ScannedQR:        true,
	}

	checkins.EXPECT().
		CheckIn(gomock.Any(), domain.CheckInRequest{
			EmployeeID:   empID,
			CheckpointID: cpID,
			Location:     &domain.Coordinate{Lat: 51.5007, Lng: -0.1246},
			ScannedQR:    true,
		}).
		Return(want, nil).
		Times(1)

	h.PatrolCheckIn(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.CheckInEvent](t, rr)
	if got.ID != want.ID || !got.LocationVerified {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestPatrolCheckIn_MissingCheckpointID_400(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t)

	empID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/check-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.PatrolCheckIn(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestPatrolCheckIn_InactiveCheckpoint_410(t *testing.T) {
	t.Parallel()

	h, _, checkins := newTestHandler(t)

	empID := uuid.New()
	cpID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"checkpoint_id":%q}`, empID, cpID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/check-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	checkins.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("checkpoint deactivated", e.ErrCheckpointInactive)).
		Times(1)

	h.PatrolCheckIn(rr, req)

	if rr.Code != http.StatusGone {
		t.Fatalf("expected %d got %d, body=%s", http.StatusGone, rr.Code, rr.Body.String())
	}
}

func TestPatrolCheckIn_LocationRequired_422(t *testing.T) {
	t.Parallel()

	h, _, checkins := newTestHandler(t)

	empID := uuid.New()
	cpID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"checkpoint_id":%q}`, empID, cpID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/check-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	checkins.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("check-in requires location", e.ErrLocationUnavailable)).
		Times(1)

	h.PatrolCheckIn(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	}
}

func TestPatrolCheckIn_UnknownCheckpoint_404(t *testing.T) {
	t.Parallel()

	h, _, checkins := newTestHandler(t)

	empID := uuid.New()
	cpID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"checkpoint_id":%q}`, empID, cpID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/check-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	checkins.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("postgres.Checkpoint.Get", e.ErrNotFound)).
		Times(1)

	h.PatrolCheckIn(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestPatrolCheckIn_ServiceError_500(t *testing.T) {
	t.Parallel()

	h, _, checkins := newTestHandler(t)

	empID := uuid.New()
	cpID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"checkpoint_id":%q}`, empID, cpID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patrol/check-in", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	checkins.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(1)

	h.PatrolCheckIn(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}
