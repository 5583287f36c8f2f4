package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"comefundme/internal/core/port"
)

// CallerHeader carries the address of the account making a request.
const CallerHeader = "X-Caller-Address"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a LedgerUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.LedgerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.LedgerUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaign-id", h.handleCampaignID)
		r.Post("/campaigns", h.handleStartCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Post("/campaigns/{id}/donations", h.handleDonate)
		r.Post("/campaigns/{id}/end", h.handleEndCampaign)
		r.Get("/pause", h.handlePaused)
		r.Post("/pause/toggle", h.handleTogglePause)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
