package patrol

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"guardpost/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrShiftAlreadyActive):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "shift already active"})
	case errors.Is(err, e.ErrNoActiveShift):
		h.writeJSON(w, http.StatusConflict, map[string]string{"error": "no active shift"})
	case errors.Is(err, e.ErrLocationUnavailable):
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "location unavailable"})
	case errors.Is(err, e.ErrCheckpointInactive):
		h.writeJSON(w, http.StatusGone, map[string]string{"error": "checkpoint inactive"})
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
