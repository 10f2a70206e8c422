package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

// fakeAdminStore implements port.AdminStore with per-field uniqueness.
type fakeAdminStore struct {
	brands    []domain.Brand
	campaigns []domain.Campaign
}

func (f *fakeAdminStore) CreateBrand(_ context.Context, b *domain.Brand) error {
	for _, other := range f.brands {
		if other.ShortCode == b.ShortCode || other.Handle == b.Handle {
			return port.ErrDuplicateShortCode
		}
	}
	f.brands = append(f.brands, *b)
	return nil
}

func (f *fakeAdminStore) ListBrands(_ context.Context) ([]domain.Brand, error) {
	return f.brands, nil
}

func (f *fakeAdminStore) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	for _, other := range f.campaigns {
		if other.ShortCode == c.ShortCode {
			return port.ErrDuplicateShortCode
		}
	}
	f.campaigns = append(f.campaigns, *c)
	return nil
}

func (f *fakeAdminStore) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	return f.campaigns, nil
}

func (f *fakeAdminStore) ClickStats(_ context.Context, _ port.StatsReq) (*port.StatsResp, error) {
	return &port.StatsResp{}, nil
}

func (f *fakeAdminStore) ClearClicks(_ context.Context) (int64, error) { return 0, nil }

func TestCreateBrand(t *testing.T) {
	svc := NewAdminService(&fakeAdminStore{})

	brand, err := svc.CreateBrand(context.Background(), port.CreateBrandInput{
		Handle:    "acme-gym",
		ShortCode: "acme",
		Name:      "Acme Gym",
		City:      "Austin",
		State:     "TX",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, brand.ID)
	require.True(t, brand.IsActive)
	require.Equal(t, "acme", brand.ShortCode)
}

func TestCreateBrandValidation(t *testing.T) {
	svc := NewAdminService(&fakeAdminStore{})

	cases := []port.CreateBrandInput{
		{ShortCode: "acme", Name: "Acme"},                                          // missing handle
		{Handle: "acme-gym", Name: "Acme"},                                         // missing short code
		{Handle: "acme-gym", ShortCode: "ac", Name: "Acme"},                        // short code too short
		{Handle: "acme-gym", ShortCode: "acme-gym", Name: "Acme"},                  // short code not alphanumeric
		{Handle: "acme-gym", ShortCode: "acme"},                                    // missing name
		{Handle: "acme-gym", ShortCode: "acme", Name: "Acme", Color: "blue"},       // not a hex color
		{Handle: "acme-gym", ShortCode: "acme", Name: "Acme", LogoURL: "not-a-url"}, // invalid URL
	}
	for i, in := range cases {
		_, err := svc.CreateBrand(context.Background(), in)
		require.ErrorIs(t, err, port.ErrInvalidInput, "case %d", i)
	}
}

func TestCreateBrandDuplicate(t *testing.T) {
	svc := NewAdminService(&fakeAdminStore{})
	in := port.CreateBrandInput{Handle: "acme-gym", ShortCode: "acme", Name: "Acme Gym"}

	_, err := svc.CreateBrand(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.CreateBrand(context.Background(), in)
	require.ErrorIs(t, err, port.ErrDuplicateShortCode)
}

func TestCreateCampaign(t *testing.T) {
	svc := NewAdminService(&fakeAdminStore{})

	campaign, err := svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		ShortCode: "ig",
		Name:      "Instagram Bio",
		Source:    "instagram",
		Medium:    "social",
		Campaign:  "bio_link",
	})
	require.NoError(t, err)
	require.True(t, campaign.IsActive)

	// UTM triple is mandatory
	_, err = svc.CreateCampaign(context.Background(), port.CreateCampaignInput{
		ShortCode: "fb",
		Name:      "Facebook",
		Source:    "facebook",
	})
	require.ErrorIs(t, err, port.ErrInvalidInput)
}
