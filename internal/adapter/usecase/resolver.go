package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

// Resolver implements port.LinkResolver. It orchestrates short-code
// splitting, the two store lookups, destination URL construction, crawler
// classification and click attribution. It keeps no per-request state and
// no lookup cache of its own; caching, when enabled, is a store decorator.
type Resolver struct {
	store    port.EntityStore
	recorder port.ClickRecorder
	logger   *slog.Logger

	// baseURL is the public origin bio pages live under,
	// e.g. https://biopages.mygymtools.com (no trailing slash).
	baseURL string
	// lookupTimeout bounds each individual store lookup.
	lookupTimeout time.Duration
}

// NewResolver creates a resolver. recorder may be nil to disable click
// attribution (e.g. in variants that track clicks on the bio page itself).
func NewResolver(store port.EntityStore, recorder port.ClickRecorder, logger *slog.Logger, baseURL string, lookupTimeout time.Duration) *Resolver {
	return &Resolver{
		store:         store,
		recorder:      recorder,
		logger:        logger,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		lookupTimeout: lookupTimeout,
	}
}

// Resolve implements the resolution state machine: split, brand lookup,
// campaign lookup, destination, classify. The brand lookup runs first so a
// dead brand short-circuits before the second round-trip.
func (s *Resolver) Resolve(ctx context.Context, shortCode string, req port.RequestContext) (*port.Resolution, error) {
	brandCode, campaignCode, err := domain.SplitShortCode(shortCode)
	if err != nil {
		return nil, err
	}

	brand, err := s.findBrand(ctx, brandCode)
	if err != nil {
		return nil, err
	}

	campaign, err := s.findCampaign(ctx, campaignCode)
	if err != nil {
		return nil, err
	}

	dest := s.destinationURL(brand.Handle, campaign)

	if IsCrawler(req.UserAgent) {
		return &port.Resolution{
			DestinationURL: dest,
			Crawler:        true,
			HTML:           RenderOGDocument(brand, dest),
		}, nil
	}

	if s.recorder != nil {
		s.recorder.Record(domain.ClickEvent{
			BrandID:   brand.ID,
			ShortCode: shortCode,
			Source:    campaign.Source,
			Medium:    campaign.Medium,
			Campaign:  campaign.Campaign,
			UserAgent: req.UserAgent,
			Referrer:  req.Referrer,
			ClickedAt: time.Now().UTC(),
		})
	}

	return &port.Resolution{DestinationURL: dest}, nil
}

// PreviewByHandle serves the og-image entry point: lookup by handle, with an
// optional caller-supplied destination. No UTM parameters and no click event.
func (s *Resolver) PreviewByHandle(ctx context.Context, handle, redirectURL string, req port.RequestContext) (*port.Resolution, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	brand, err := s.store.FindBrandByHandle(lookupCtx, handle)
	if err != nil {
		return nil, fmt.Errorf("brand lookup: %w", err)
	}
	if brand == nil {
		return nil, port.ErrBrandNotFound
	}

	dest := s.bioPageURL(brand.Handle)
	if u, err := url.Parse(redirectURL); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		dest = redirectURL
	}

	if IsCrawler(req.UserAgent) {
		return &port.Resolution{
			DestinationURL: dest,
			Crawler:        true,
			HTML:           RenderOGDocument(brand, dest),
		}, nil
	}
	return &port.Resolution{DestinationURL: dest}, nil
}

func (s *Resolver) findBrand(ctx context.Context, code string) (*domain.Brand, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	brand, err := s.store.FindBrandByShortCode(lookupCtx, code)
	if err != nil {
		return nil, fmt.Errorf("brand lookup: %w", err)
	}
	if brand == nil {
		return nil, port.ErrBrandNotFound
	}
	return brand, nil
}

func (s *Resolver) findCampaign(ctx context.Context, code string) (*domain.Campaign, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	campaign, err := s.store.FindCampaignByShortCode(lookupCtx, code)
	if err != nil {
		return nil, fmt.Errorf("campaign lookup: %w", err)
	}
	if campaign == nil {
		return nil, port.ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *Resolver) bioPageURL(handle string) string {
	return s.baseURL + "/biopage/" + url.PathEscape(handle)
}

// destinationURL builds the canonical bio page URL with UTM attribution.
// Parameter order is fixed (source, medium, campaign), so the query string
// is assembled by hand rather than through url.Values, which sorts keys.
func (s *Resolver) destinationURL(handle string, c *domain.Campaign) string {
	return s.bioPageURL(handle) +
		"?utm_source=" + url.QueryEscape(c.Source) +
		"&utm_medium=" + url.QueryEscape(c.Medium) +
		"&utm_campaign=" + url.QueryEscape(c.Campaign)
}
