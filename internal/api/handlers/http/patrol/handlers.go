package patrol

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"guardpost/internal/domain"
	"guardpost/pkg/validator"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

type AttendanceGate interface {
	ClockIn(ctx context.Context, req domain.ClockInRequest) (*domain.AttendanceRecord, error)
	ClockOut(ctx context.Context, req domain.ClockOutRequest) (*domain.ClockOutResponse, error)
}

type CheckpointCheckins interface {
	CheckIn(ctx context.Context, req domain.CheckInRequest) (*domain.CheckInEvent, error)
}

type Handler struct {
	logger     *slog.Logger
	Attendance AttendanceGate
	Checkins   CheckpointCheckins
}

func NewHandler(logger *slog.Logger, attendance AttendanceGate, checkins CheckpointCheckins) *Handler {
	return &Handler{
		logger:     logger,
		Attendance: attendance,
		Checkins:   checkins,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) PatrolClockIn(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ClockInRequest
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

	l.Info("clock-in",
		slog.String("employee_id", req.EmployeeID.String()),
		slog.Bool("has_location", req.Location != nil),
	)

	rec, err := h.Attendance.ClockIn(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) PatrolClockOut(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ClockOutRequest
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

	l.Info("clock-out", slog.String("employee_id", req.EmployeeID.String()))

	resp, err := h.Attendance.ClockOut(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PatrolCheckIn(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CheckInRequest
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

	l.Info("checkpoint check-in",
		slog.String("employee_id", req.EmployeeID.String()),
		slog.String("checkpoint_id", req.CheckpointID.String()),
		slog.Bool("has_location", req.Location != nil),
		slog.Bool("scanned_qr", req.ScannedQR),
	)

	ev, err := h.Checkins.CheckIn(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, ev)
}
