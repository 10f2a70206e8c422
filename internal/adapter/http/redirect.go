package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

// handleRedirect resolves a composite short code. Humans get a 302 to the
// destination URL with UTM attribution; known crawlers get the Open Graph
// document. Malformed codes are 400, unknown or inactive entities 404,
// store trouble 500.
func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	shortCode := chi.URLParam(r, "shortCode")
	if shortCode == "" {
		http.Error(w, "short code required", http.StatusBadRequest)
		return
	}

	res, err := h.resolver.Resolve(r.Context(), shortCode, port.RequestContext{
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	})
	if err != nil {
		h.writeResolveError(w, r, shortCode, err)
		return
	}
	h.writeResolution(w, r, res)
}

func (h *Handler) writeResolution(w http.ResponseWriter, r *http.Request, res *port.Resolution) {
	if res.Crawler {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(res.HTML)); err != nil {
			h.logger.Debug("write og document", slog.Any("error", err))
		}
		return
	}
	http.Redirect(w, r, res.DestinationURL, http.StatusFound)
}

func (h *Handler) writeResolveError(w http.ResponseWriter, r *http.Request, shortCode string, err error) {
	switch {
	case errors.Is(err, domain.ErrMalformedShortCode):
		http.Error(w, "invalid short code format", http.StatusBadRequest)
	case errors.Is(err, port.ErrBrandNotFound):
		http.Error(w, "brand not found", http.StatusNotFound)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	default:
		// infrastructure trouble, not user error
		h.logger.Error("resolve failed",
			slog.String("short_code", shortCode),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
