package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"biohub/internal/core/port"
)

// handleOGImage is the handle-keyed preview entry point: the caller already
// knows the brand handle (and optionally the destination) instead of a
// composite short code. Same crawler/human branching as the redirect path.
// The OG document is cacheable; previews change only when the brand does.
func (h *Handler) handleOGImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	handle := q.Get("handle")
	if handle == "" {
		http.Error(w, "handle required", http.StatusBadRequest)
		return
	}

	res, err := h.resolver.PreviewByHandle(r.Context(), handle, q.Get("redirect"), port.RequestContext{
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	})
	if err != nil {
		if errors.Is(err, port.ErrBrandNotFound) {
			http.Error(w, "brand not found", http.StatusNotFound)
			return
		}
		h.logger.Error("preview failed", slog.String("handle", handle), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if res.Crawler {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	h.writeResolution(w, r, res)
}
