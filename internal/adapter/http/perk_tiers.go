package httpadapter

import (
	"net/http"

	"sponsorhub/internal/core/port"
)

func (h *Handler) handleListPerkTiers(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	tiers, err := h.svc.Campaigns.ListPerkTiers(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tiers)
}

func (h *Handler) handleAddPerkTier(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in port.PerkTierInput
	if err = decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.svc.Campaigns.AddPerkTier(r.Context(), actor(r), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) handleUpdatePerkTier(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req port.UpdatePerkTierReq
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	t, err := h.svc.Campaigns.UpdatePerkTier(r.Context(), actor(r), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) handleDeletePerkTier(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Campaigns.DeletePerkTier(r.Context(), actor(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
