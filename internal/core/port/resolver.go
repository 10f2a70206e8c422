package port

import (
	"context"
	"errors"

	"biohub/internal/core/domain"
)

var (
	// ErrBrandNotFound means the brand code matched no active brand.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrCampaignNotFound means the campaign code matched no active campaign.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrInvalidInput wraps admin payload validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// LinkResolver is the primary port into the short-link core. Implementations
// are stateless per request; every call performs fresh store lookups.
type LinkResolver interface {
	// Resolve turns a composite short code into either a redirect or a
	// crawler-facing Open Graph document, depending on the request context.
	// Errors: domain.ErrMalformedShortCode (no separator), ErrBrandNotFound,
	// ErrCampaignNotFound, or a store failure.
	Resolve(ctx context.Context, shortCode string, req RequestContext) (*Resolution, error)

	// PreviewByHandle is the og-image entry point: the caller already knows
	// the brand handle and optionally the destination URL. Crawler/human
	// branching matches Resolve, but no click is recorded and no UTM
	// parameters are added.
	PreviewByHandle(ctx context.Context, handle, redirectURL string, req RequestContext) (*Resolution, error)
}

// RequestContext carries the request metadata the resolver classifies and
// attributes on. Missing headers are empty strings.
type RequestContext struct {
	UserAgent string
	Referrer  string
}

// Resolution is the outcome of a resolve. When Crawler is true, HTML holds
// the complete OG document to serve with status 200; otherwise the caller
// issues a 302 to DestinationURL.
type Resolution struct {
	DestinationURL string
	Crawler        bool
	HTML           string
}

// ClickRecorder accepts click events for best-effort persistence. Record
// must never block the caller and never returns an error; failures are the
// recorder's own problem to log.
type ClickRecorder interface {
	Record(ev domain.ClickEvent)
}

// AdminUseCase exposes the management operations behind /api/v1.
type AdminUseCase interface {
	CreateBrand(ctx context.Context, in CreateBrandInput) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
	ClearAnalytics(ctx context.Context) (int64, error)
}

// CreateBrandInput is the admin payload for a new brand. Validation tags are
// interpreted by go-playground/validator in the usecase layer.
type CreateBrandInput struct {
	Handle         string `json:"handle" validate:"required,min=2,max=64"`
	ShortCode      string `json:"short_code" validate:"required,alphanum,min=3,max=12"`
	Name           string `json:"name" validate:"required,max=120"`
	Tagline        string `json:"tagline" validate:"max=300"`
	LogoURL        string `json:"logo_url" validate:"omitempty,url"`
	Color          string `json:"color" validate:"omitempty,hexcolor"`
	ColorSecondary string `json:"color_secondary" validate:"omitempty,hexcolor"`
	City           string `json:"city" validate:"max=100"`
	State          string `json:"state" validate:"max=100"`
}

type CreateCampaignInput struct {
	ShortCode string `json:"short_code" validate:"required,alphanum,min=1,max=12"`
	Name      string `json:"name" validate:"required,max=120"`
	Source    string `json:"source" validate:"required,max=100"`
	Medium    string `json:"medium" validate:"required,max=100"`
	Campaign  string `json:"campaign" validate:"required,max=100"`
	Icon      string `json:"icon" validate:"max=100"`
}
