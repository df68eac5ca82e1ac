package httpadapter

import (
	"net/http"

	"github.com/google/uuid"
)

func (h *Handler) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Favorites.ListFavorites(r.Context(), actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type addFavoriteBody struct {
	CampaignID uuid.UUID `json:"campaign_id"`
}

// handleAddFavorite answers 201 when the favorite was created and 200 when
// it already existed.
func (h *Handler) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var body addFavoriteBody
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.svc.Favorites.AddFavorite(r.Context(), actor(r), body.CampaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{"campaign_id": body.CampaignID, "favorited": true})
}

func (h *Handler) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "campaignId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Favorites.RemoveFavorite(r.Context(), actor(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
