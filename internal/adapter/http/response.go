package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"comefundme/internal/core/domain"
)

// campaignResponse is the JSON form of a campaign. Amounts are decimal
// strings in wei so they survive JavaScript clients.
type campaignResponse struct {
	ID          string `json:"id"`
	Initiator   string `json:"initiator"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FundsRaised string `json:"fundsRaised"`
	IsAlive     bool   `json:"isAlive"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:          c.ID.Hex(),
		Initiator:   c.Initiator.Hex(),
		Title:       c.Title,
		Description: c.Description,
		FundsRaised: c.FundsRaised.String(),
		IsAlive:     c.IsAlive,
	}
}

type pauseResponse struct {
	Paused bool `json:"paused"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps ledger errors onto HTTP statuses. Anything unexpected
// is logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidCampaignID):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotInitiator):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrCampaignNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCampaignExists),
		errors.Is(err, domain.ErrCampaignNotAlive),
		errors.Is(err, domain.ErrPaused):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("ledger error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

// caller extracts the calling account. A missing header yields 401, a
// malformed one 400; in both cases the response is already written.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	raw := r.Header.Get(CallerHeader)
	if raw == "" {
		http.Error(w, "missing "+CallerHeader+" header", http.StatusUnauthorized)
		return domain.Address{}, false
	}
	addr, err := domain.ParseAddress(raw)
	if err != nil {
		h.writeError(w, r, err)
		return domain.Address{}, false
	}
	return addr, true
}
