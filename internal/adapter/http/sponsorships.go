package httpadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
)

// handleCreateSponsorship records a sponsor's offer. The request starts
// PENDING with its escrow HELD.
func (h *Handler) handleCreateSponsorship(w http.ResponseWriter, r *http.Request) {
	var req port.CreateSponsorshipReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.svc.Sponsorships.CreateRequest(r.Context(), actor(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// handleListSponsorships lists requests. ?as=sponsor|talent picks the side,
// ?status and ?campaign_id narrow the list.
func (h *Handler) handleListSponsorships(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.ListSponsorshipsReq{
		As:     strings.ToLower(strings.TrimSpace(q.Get("as"))),
		Status: domain.SponsorshipStatus(strings.ToUpper(strings.TrimSpace(q.Get("status")))),
	}
	if v := q.Get("campaign_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: campaign_id must be a UUID", domain.ErrInvalidInput))
			return
		}
		req.CampaignID = &id
	}
	list, err := h.svc.Sponsorships.ListRequests(r.Context(), actor(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetSponsorship(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	s, err := h.svc.Sponsorships.GetRequest(r.Context(), actor(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

type updateSponsorshipBody struct {
	Status domain.SponsorshipStatus `json:"status"`
}

// handleUpdateSponsorship accepts, rejects or cancels a pending request.
func (h *Handler) handleUpdateSponsorship(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body updateSponsorshipBody
	if err = decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	status := domain.SponsorshipStatus(strings.ToUpper(string(body.Status)))
	s, err := h.svc.Sponsorships.UpdateRequestStatus(r.Context(), actor(r), id, status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) handleListMyContributions(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Sponsorships.ListMyContributions(r.Context(), actor(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
