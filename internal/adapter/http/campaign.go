package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"comefundme/internal/core/domain"
)

type startCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type donateRequest struct {
	// Value is the donation in wei as a base-10 string.
	Value string `json:"value"`
}

// handleCampaignID computes the id for the creator, title and description
// query parameters without touching the ledger.
func (h *Handler) handleCampaignID(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	creator, err := domain.ParseAddress(q.Get("creator"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id := h.svc.GetCampaignID(creator, q.Get("title"), q.Get("description"))
	h.writeJSON(w, http.StatusOK, map[string]string{"id": id.Hex()})
}

// handleStartCampaign starts a campaign owned by the caller. It responds
// 201 with the new campaign, or 409 if the caller already started one
// with the same title and description.
func (h *Handler) handleStartCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req startCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.StartCampaign(r.Context(), caller, req.Title, req.Description)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+c.ID.Hex())
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseCampaignID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// handleDonate credits the request's value to a live campaign.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := domain.ParseCampaignID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req donateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	amount, err := domain.ParseAmount(req.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.DonateToCampaign(r.Context(), caller, id, amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleEndCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := domain.ParseCampaignID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.EndCampaign(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}
