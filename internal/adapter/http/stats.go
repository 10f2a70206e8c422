package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"biohub/internal/core/port"
)

// handleStatsOverview returns click totals over a period, grouped by brand.
// It accepts optional `from`, `to` (RFC3339) and `brand_id` query
// parameters; the period defaults to the last 24 hours.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if bid := q.Get("brand_id"); bid != "" {
		id, err := uuid.Parse(bid)
		if err != nil {
			http.Error(w, "invalid brand_id", http.StatusBadRequest)
			return
		}
		req.BrandID = &id
	}

	stats, err := h.admin.Stats(r.Context(), req)
	if err != nil {
		h.writeAdminError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
