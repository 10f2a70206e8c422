package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"biohub/internal/core/domain"
)

// ErrDuplicateShortCode is returned by creation methods when a short code or
// handle collides with an existing row. Uniqueness is enforced by the store.
var ErrDuplicateShortCode = errors.New("short code or handle already in use")

// EntityStore is the outbound port the resolver reads brands and campaigns
// through. Lookups return (nil, nil) when no active row matches; inactive
// rows are filtered out by the implementation and must never be returned.
type EntityStore interface {
	FindBrandByShortCode(ctx context.Context, code string) (*domain.Brand, error)
	FindBrandByHandle(ctx context.Context, handle string) (*domain.Brand, error)
	FindCampaignByShortCode(ctx context.Context, code string) (*domain.Campaign, error)
	InsertClickEvent(ctx context.Context, ev domain.ClickEvent) error
}

// AdminStore is the outbound port for the management API. It is intentionally
// separate from EntityStore so the resolver's read path can be decorated
// (e.g. cached) without dragging the write surface along.
type AdminStore interface {
	CreateBrand(ctx context.Context, b *domain.Brand) error
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ClickStats(ctx context.Context, req StatsReq) (*StatsResp, error)
	ClearClicks(ctx context.Context) (int64, error)
}

type StatsReq struct {
	From    time.Time
	To      time.Time
	BrandID *uuid.UUID
}

// StatsResp aggregates recorded clicks for a period, total and per brand.
type StatsResp struct {
	Clicks  int64         `json:"clicks"`
	ByBrand []BrandClicks `json:"by_brand"`
}

type BrandClicks struct {
	BrandID uuid.UUID `json:"brand_id"`
	Handle  string    `json:"handle"`
	Clicks  int64     `json:"clicks"`
}
