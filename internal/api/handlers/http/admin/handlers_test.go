package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"guardpost/internal/api/handlers/http/admin"
	mock_admin "guardpost/internal/api/handlers/http/admin/mocks"
	"guardpost/internal/domain"
	"guardpost/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type testMocks struct {
	checkpoints *mock_admin.MockCheckpoints
	compliance  *mock_admin.MockComplianceViewer
	jobSites    *mock_admin.MockJobSites
	workforce   *mock_admin.MockWorkforce
	payroll     *mock_admin.MockPayroll
	contracts   *mock_admin.MockContracts
	dashboard   *mock_admin.MockDashboard
}

func newTestHandler(t *testing.T) (*admin.Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := testMocks{
		checkpoints: mock_admin.NewMockCheckpoints(ctrl),
		compliance:  mock_admin.NewMockComplianceViewer(ctrl),
		jobSites:    mock_admin.NewMockJobSites(ctrl),
		workforce:   mock_admin.NewMockWorkforce(ctrl),
		payroll:     mock_admin.NewMockPayroll(ctrl),
		contracts:   mock_admin.NewMockContracts(ctrl),
		dashboard:   mock_admin.NewMockDashboard(ctrl),
	}
	h := admin.NewHandler(newTestLogger(), m.checkpoints, m.compliance, m.jobSites, m.workforce, m.payroll, m.contracts, m.dashboard)
	return h, m
}

func TestAdminCheckpointCreate_OK_201(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	reqBody := `{"name":"Gate A","site_name":"Northside Depot","lat":51.5007,"lng":-0.1246,"radius_m":50,"check_frequency_min":60}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/checkpoints/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()

	m.checkpoints.EXPECT().
		Create(gomock.Any(), domain.CreateCheckpointRequest{
			Name:         "Gate A",
			SiteName:     "Northside Depot",
			Lat:          51.5007,
			Lng:          -0.1246,
			RadiusMeters: 50,
			CheckFreqMin: 60,
		}).
		Return(wantID, nil).
		Times(1)

	h.AdminCheckpointCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != wantID.String() {
		t.Fatalf("expected id=%s got=%s", wantID.String(), got["id"])
	}
}

func TestAdminCheckpointCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/checkpoints/", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.AdminCheckpointCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminCheckpointCreate_BadRadius_400(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	reqBody := `{"name":"Gate A","site_name":"Northside Depot","lat":51.5,"lng":-0.12,"radius_m":0,"check_frequency_min":60}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/checkpoints/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AdminCheckpointCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminCheckpointList_Defaults_OK(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/checkpoints/", nil)
	rr := httptest.NewRecorder()

	m.checkpoints.EXPECT().
		List(gomock.Any(), 1, 20).
		Return([]*domain.Checkpoint{}, int64(0), nil).
		Times(1)

	h.AdminCheckpointList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]any](t, rr)
	if int(resp["page"].(float64)) != 1 || int(resp["limit"].(float64)) != 20 {
		t.Fatalf("unexpected pagination: %+v", resp)
	}
}

func TestAdminCheckpointList_LimitClampedTo100(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/checkpoints/?page=3&limit=500", nil)
	rr := httptest.NewRecorder()

	m.checkpoints.EXPECT().
		List(gomock.Any(), 3, 100).
		Return([]*domain.Checkpoint{}, int64(0), nil).
		Times(1)

	h.AdminCheckpointList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestAdminCheckpointGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/checkpoints/bad/", nil)
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.AdminCheckpointGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminCheckpointGet_NotFound_404(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/checkpoints/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.checkpoints.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.Wrap("postgres.Checkpoint.Get", e.ErrNotFound)).
		Times(1)

	h.AdminCheckpointGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAdminCheckpointUpdate_OK_204(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	id := uuid.New()
	body := `{"radius_m":75}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/checkpoints/"+id.String()+"/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	radius := 75
	m.checkpoints.EXPECT().
		Update(gomock.Any(), id, domain.UpdateCheckpointRequest{RadiusMeters: &radius}).
		Return(nil).
		Times(1)

	h.AdminCheckpointUpdate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got=%q", rr.Body.String())
	}
}

func TestAdminCheckpointDeactivate_OK_204(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/checkpoints/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.checkpoints.EXPECT().
		Deactivate(gomock.Any(), id).
		Return(nil).
		Times(1)

	h.AdminCheckpointDeactivate(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestAdminCheckpointCadence_OK(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	id := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/checkpoints/"+id.String()+"/cadence?now="+now.Format(time.RFC3339), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	want := &domain.CadenceState{
		CheckpointID:   id,
		CheckpointName: "Gate A",
		IsOverdue:      true,
		MinutesOverdue: 15,
	}

	m.compliance.EXPECT().
		GetCadence(gomock.Any(), id, now).
		Return(want, nil).
		Times(1)

	h.AdminCheckpointCadence(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.CadenceState](t, rr)
	if !got.IsOverdue || got.MinutesOverdue != 15 {
		t.Fatalf("unexpected cadence: %+v", got)
	}
}

func TestAdminCheckpointCadence_InvalidNow_400(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/checkpoints/"+id.String()+"/cadence?now=yesterday", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminCheckpointCadence(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminCompliance_ExplicitWindow_OK(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	url := fmt.Sprintf("/api/v1/admin/compliance?site=Northside+Depot&from=%s&to=%s",
		from.Format(time.RFC3339), to.Format(time.RFC3339))
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rr := httptest.NewRecorder()

	wantScope := domain.ComplianceScope{SiteName: "Northside Depot", From: from, To: to}
	want := &domain.ComplianceSnapshot{
		Scope:            wantScope,
		TotalCheckins:    10,
		VerifiedCheckins: 8,
		VerificationRate: 80.0,
	}

	m.compliance.EXPECT().
		GetCompliance(gomock.Any(), wantScope, gomock.Any()).
		Return(want, nil).
		Times(1)

	h.AdminCompliance(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ComplianceSnapshot](t, rr)
	if got.VerificationRate != 80.0 || got.TotalCheckins != 10 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestAdminCompliance_ToBeforeFrom_400(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/compliance?from=2024-06-02T00:00:00Z&to=2024-06-01T00:00:00Z", nil)
	rr := httptest.NewRecorder()

	h.AdminCompliance(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminCompliance_InvalidFrom_400(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/compliance?from=last-tuesday", nil)
	rr := httptest.NewRecorder()

	h.AdminCompliance(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminDashboard_OK(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	rr := httptest.NewRecorder()

	want := &domain.DashboardStats{TotalEmployees: 12}
	m.dashboard.EXPECT().
		GetDashboard(gomock.Any()).
		Return(want, nil).
		Times(1)

	h.AdminDashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.DashboardStats](t, rr)
	if got.TotalEmployees != 12 {
		t.Fatalf("expected total_employees=12 got=%d", got.TotalEmployees)
	}
}

func TestAdminDashboard_ServiceError_500(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	rr := httptest.NewRecorder()

	m.dashboard.EXPECT().
		GetDashboard(gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(1)

	h.AdminDashboard(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
}

func TestAdminEmployeeCreate_OK_201(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	reqBody := `{"name":"Dana Cole","email":"dana@example.com","department":"Security","position":"Patrol Officer","annual_salary":32000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/employees/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	m.workforce.EXPECT().
		Create(gomock.Any(), domain.CreateEmployeeRequest{
			Name:         "Dana Cole",
			Email:        "dana@example.com",
			Department:   "Security",
			Position:     "Patrol Officer",
			AnnualSalary: 32000,
		}).
		Return(wantID, nil).
		Times(1)

	h.AdminEmployeeCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestAdminEmployeeCreate_BadEmail_400(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t)

	reqBody := `{"name":"Dana Cole","email":"not-an-email","department":"Security","position":"Patrol Officer","annual_salary":32000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/employees/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	h.AdminEmployeeCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAdminPayslipCreate_OK_201(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	empID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"period_month":6,"period_year":2024,"tax_deduction":450,"ni_deduction":250}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/payslips/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	want := &domain.Payslip{
		ID:          uuid.New(),
		EmployeeID:  empID,
		PeriodMonth: 6,
		PeriodYear:  2024,
		GrossSalary: 3500,
		NetSalary:   2800,
	}

	m.payroll.EXPECT().
		Create(gomock.Any(), domain.CreatePayslipRequest{
			EmployeeID:   empID,
			PeriodMonth:  6,
			PeriodYear:   2024,
			TaxDeduction: 450,
			NIDeduction:  250,
		}).
		Return(want, nil).
		Times(1)

	h.AdminPayslipCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Payslip](t, rr)
	if got.NetSalary != 2800 {
		t.Fatalf("expected net_salary=2800 got=%v", got.NetSalary)
	}
}

func TestAdminPayslipCreate_DuplicatePeriod_409(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	empID := uuid.New()
	reqBody := fmt.Sprintf(`{"employee_id":%q,"period_month":6,"period_year":2024}`, empID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/payslips/", bytes.NewBufferString(reqBody))
	rr := httptest.NewRecorder()

	m.payroll.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, e.Wrap("postgres.Payslip.Insert", e.ErrUniqueViolation)).
		Times(1)

	h.AdminPayslipCreate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestAdminJobSiteCreate_OK_201(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	reqBody := `{"name":"Northside Depot","client_name":"Harbour Logistics","lat":52.4862,"lng":-1.8904,"radius_m":100,"require_location":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/job-sites/", bytes.NewBufferString(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	wantID := uuid.New()
	m.jobSites.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(wantID, nil).
		Times(1)

	h.AdminJobSiteCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestAdminContractGet_NotFound_404(t *testing.T) {
	t.Parallel()

	h, m := newTestHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contracts/"+id.String()+"/", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	m.contracts.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.Wrap("postgres.Contract.Get", e.ErrNotFound)).
		Times(1)

	h.AdminContractGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}
