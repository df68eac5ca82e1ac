package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports 503 while the database is unreachable.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.svc.Ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.svc.Ready(ctx); err != nil {
			h.logger.Warn("readiness check failed", slog.Any("error", err))
			writeErrorMessage(w, http.StatusServiceUnavailable, "not ready")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
