package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"sponsorhub/internal/core/domain"
	"sponsorhub/internal/core/port"
)

// handleListCampaigns lists campaigns. Query parameters: status (default
// ACTIVE, ALL for any), sport, owner_id, q, limit and offset.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	f, err := parseCampaignFilter(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Campaigns.ListCampaigns(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func parseCampaignFilter(r *http.Request) (domain.CampaignFilter, error) {
	q := r.URL.Query()
	f := domain.CampaignFilter{
		Status: campaignStatus(q.Get("status")),
		Sport:  q.Get("sport"),
		Query:  q.Get("q"),
	}
	if v := q.Get("owner_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fmt.Errorf("%w: owner_id must be a UUID", domain.ErrInvalidInput)
		}
		f.OwnerID = &id
	}
	var err error
	if f.Limit, err = intQuery(q.Get("limit"), "limit"); err != nil {
		return f, err
	}
	// a zero Limit means the default page size, so an explicit 0 is rejected here
	if q.Has("limit") && f.Limit < 1 {
		return f, fmt.Errorf("%w: limit must be at least 1", domain.ErrInvalidInput)
	}
	if f.Offset, err = intQuery(q.Get("offset"), "offset"); err != nil {
		return f, err
	}
	return f, nil
}

func campaignStatus(s string) domain.CampaignStatus {
	return domain.CampaignStatus(strings.ToUpper(strings.TrimSpace(s)))
}

func intQuery(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, name)
	}
	return n, nil
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	req.Status = campaignStatus(string(req.Status))
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), actor(r), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req port.UpdateCampaignReq
	if err = decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Status != nil {
		status := campaignStatus(string(*req.Status))
		req.Status = &status
	}
	c, err := h.svc.Campaigns.UpdateCampaign(r.Context(), actor(r), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Campaigns.DeleteCampaign(r.Context(), actor(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListCampaignContributions(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Campaigns.ListCampaignContributions(r.Context(), actor(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
