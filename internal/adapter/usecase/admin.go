package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

// AdminService implements port.AdminUseCase: brand/campaign creation with
// payload validation, listings, click stats and the bulk analytics reset.
// Short-code collisions are rejected by the store's unique constraints and
// surface as port.ErrDuplicateShortCode.
type AdminService struct {
	store    port.AdminStore
	validate *validator.Validate
}

func NewAdminService(store port.AdminStore) *AdminService {
	return &AdminService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *AdminService) CreateBrand(ctx context.Context, in port.CreateBrandInput) (*domain.Brand, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidInput, err)
	}
	b := &domain.Brand{
		ID:             uuid.New(),
		Handle:         in.Handle,
		ShortCode:      in.ShortCode,
		Name:           in.Name,
		Tagline:        in.Tagline,
		LogoURL:        in.LogoURL,
		Color:          in.Color,
		ColorSecondary: in.ColorSecondary,
		City:           in.City,
		State:          in.State,
		IsActive:       true,
	}
	if err := s.store.CreateBrand(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *AdminService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.store.ListBrands(ctx)
}

func (s *AdminService) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidInput, err)
	}
	c := &domain.Campaign{
		ID:        uuid.New(),
		ShortCode: in.ShortCode,
		Name:      in.Name,
		Source:    in.Source,
		Medium:    in.Medium,
		Campaign:  in.Campaign,
		Icon:      in.Icon,
		IsActive:  true,
	}
	if err := s.store.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *AdminService) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.store.ListCampaigns(ctx)
}

func (s *AdminService) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return s.store.ClickStats(ctx, req)
}

func (s *AdminService) ClearAnalytics(ctx context.Context) (int64, error) {
	return s.store.ClearClicks(ctx)
}
