package httpadapter

import (
	"net/http"
	"strings"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
)

func (h *Handler) handleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Profiles.GetMyProfile(r.Context(), actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpsertMyProfile(w http.ResponseWriter, r *http.Request) {
	var req port.UpsertProfileReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.Role = domain.Role(strings.ToUpper(strings.TrimSpace(string(req.Role))))
	p, err := h.svc.Profiles.UpsertMyProfile(r.Context(), actor(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.Profiles.GetProfile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
