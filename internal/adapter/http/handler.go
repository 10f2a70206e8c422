package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"biohub/internal/core/port"
)

// Limiter throttles admin requests. Implemented by rediscache.RateLimiter;
// nil disables limiting.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Handler is the inbound HTTP adapter. It holds the resolver and admin
// usecases, a structured logger, and an optional rate limiter, and registers
// all routes on a chi.Router.
type Handler struct {
	resolver port.LinkResolver
	admin    port.AdminUseCase
	logger   *slog.Logger
	limiter  Limiter
	ping     func(ctx context.Context) error
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. ping is used by
// the health endpoint to check store reachability; limiter may be nil.
func NewHandler(resolver port.LinkResolver, admin port.AdminUseCase, logger *slog.Logger, limiter Limiter, ping func(ctx context.Context) error) *Handler {
	h := &Handler{resolver: resolver, admin: admin, logger: logger, limiter: limiter, ping: ping}
	r := chi.NewRouter()

	// public edge: no auth, no rate limit
	r.Get("/redirect/{shortCode}", h.handleRedirect)
	r.Get("/go/{shortCode}", h.handleRedirect)
	r.Get("/og-image", h.handleOGImage)
	r.Get("/health", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Post("/brands", h.handleCreateBrand)
		r.Get("/brands", h.handleListBrands)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/stats/overview", h.handleStatsOverview)
		r.Post("/analytics/clear", h.handleClearAnalytics)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
