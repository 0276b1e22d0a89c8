package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"guardpost/internal/domain"
	"guardpost/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

type Checkpoints interface {
	Create(ctx context.Context, req domain.CreateCheckpointRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.Checkpoint, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Checkpoint, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateCheckpointRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type ComplianceViewer interface {
	GetCadence(ctx context.Context, checkpointID uuid.UUID, now time.Time) (*domain.CadenceState, error)
	GetCompliance(ctx context.Context, scope domain.ComplianceScope, now time.Time) (*domain.ComplianceSnapshot, error)
}

type JobSites interface {
	Create(ctx context.Context, req domain.CreateJobSiteRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.JobSite, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.JobSite, error)
}

type Workforce interface {
	Create(ctx context.Context, req domain.CreateEmployeeRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmployeeRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Payroll interface {
	Create(ctx context.Context, req domain.CreatePayslipRequest) (*domain.Payslip, error)
	List(ctx context.Context) ([]*domain.Payslip, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Payslip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Contracts interface {
	Create(ctx context.Context, req domain.CreateContractRequest) (uuid.UUID, error)
	List(ctx context.Context) ([]*domain.ContractSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ContractSummary, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateContractRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Dashboard interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type Handler struct {
	logger      *slog.Logger
	Checkpoints Checkpoints
	Compliance  ComplianceViewer
	JobSites    JobSites
	Workforce   Workforce
	Payroll     Payroll
	Contracts   Contracts
	Dashboard   Dashboard
}

func NewHandler(
	logger *slog.Logger,
	checkpoints Checkpoints,
	compliance ComplianceViewer,
	jobSites JobSites,
	workforce Workforce,
	payroll Payroll,
	contracts Contracts,
	dashboard Dashboard,
) *Handler {
	return &Handler{
		logger:      logger,
		Checkpoints: checkpoints,
		Compliance:  compliance,
		JobSites:    jobSites,
		Workforce:   workforce,
		Payroll:     payroll,
		Contracts:   contracts,
		Dashboard:   dashboard,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// --- checkpoints ---

func (h *Handler) AdminCheckpointCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating checkpoint",
		slog.String("name", req.Name),
		slog.String("site", req.SiteName),
		slog.Int("radius_m", req.RadiusMeters),
		slog.Int("check_frequency_min", req.CheckFreqMin),
	)

	id, err := h.Checkpoints.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("checkpoint created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminCheckpointList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	checkpoints, total, err := h.Checkpoints.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.ListCheckpointsResponse{
		Checkpoints: checkpoints,
		Page:        page,
		Limit:       limit,
		Total:       total,
	})
}

func (h *Handler) AdminCheckpointGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	cp, err := h.Checkpoints.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, cp)
}

func (h *Handler) AdminCheckpointUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateCheckpointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Checkpoints.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminCheckpointDeactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Checkpoints.Deactivate(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- cadence & compliance ---

func (h *Handler) AdminCheckpointCadence(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	now := time.Now().UTC()
	if nowStr := r.URL.Query().Get("now"); nowStr != "" {
		parsed, err := time.Parse(time.RFC3339, nowStr)
		if err != nil {
			l.Warn("invalid now", slog.String("now", nowStr))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "now must be RFC3339"})
			return
		}
		now = parsed.UTC()
	}

	state, err := h.Compliance.GetCadence(r.Context(), id, now)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, state)
}

func (h *Handler) AdminCompliance(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	now := time.Now().UTC()
	scope := domain.ComplianceScope{
		SiteName: r.URL.Query().Get("site"),
		From:     now.Add(-24 * time.Hour),
		To:       now,
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			l.Warn("invalid from", slog.String("from", fromStr))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from must be RFC3339"})
			return
		}
		scope.From = from.UTC()
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			l.Warn("invalid to", slog.String("to", toStr))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to must be RFC3339"})
			return
		}
		scope.To = to.UTC()
	}
	if !scope.To.After(scope.From) {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to must be after from"})
		return
	}

	snap, err := h.Compliance.GetCompliance(r.Context(), scope, now)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("compliance snapshot",
		slog.String("site", scope.SiteName),
		slog.Int("checkins", snap.TotalCheckins),
		slog.Float64("verification_rate", snap.VerificationRate),
	)
	h.writeJSON(w, http.StatusOK, snap)
}

// --- dashboard ---

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.GetDashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
