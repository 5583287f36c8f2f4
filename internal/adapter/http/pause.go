package httpadapter

import "net/http"

func (h *Handler) handlePaused(w http.ResponseWriter, r *http.Request) {
	paused, err := h.svc.Paused(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pauseResponse{Paused: paused})
}

// handleTogglePause flips the pause flag. Any identified caller may do so.
func (h *Handler) handleTogglePause(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	paused, err := h.svc.TogglePause(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pauseResponse{Paused: paused})
}
