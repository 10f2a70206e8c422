package httpadapter

import (
	"context"
	"net/http"
	"time"
)

// handleHealth reports service and store health. 200 when the store is
// reachable, 503 otherwise.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"store":  "unreachable",
			})
			return
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
