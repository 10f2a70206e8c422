package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"biohub/internal/core/port"
)

// handleCreateBrand creates a brand row. Payload validation failures are
// 400; a short-code or handle collision is 409.
func (h *Handler) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var in port.CreateBrandInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	brand, err := h.admin.CreateBrand(r.Context(), in)
	if err != nil {
		h.writeAdminError(w, "create brand", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, brand)
}

func (h *Handler) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.admin.ListBrands(r.Context())
	if err != nil {
		h.writeAdminError(w, "list brands", err)
		return
	}
	h.writeJSON(w, http.StatusOK, brands)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	campaign, err := h.admin.CreateCampaign(r.Context(), in)
	if err != nil {
		h.writeAdminError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.admin.ListCampaigns(r.Context())
	if err != nil {
		h.writeAdminError(w, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleClearAnalytics deletes all recorded clicks. Destructive bulk reset
// used by operators between reporting periods.
func (h *Handler) handleClearAnalytics(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.admin.ClearAnalytics(r.Context())
	if err != nil {
		h.writeAdminError(w, "clear analytics", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (h *Handler) writeAdminError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrDuplicateShortCode):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error(op+" failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
