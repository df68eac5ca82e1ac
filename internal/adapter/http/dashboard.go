package httpadapter

import "net/http"

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard.GetDashboard(r.Context(), actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}
