package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"biohub/internal/core/domain"
	"biohub/internal/core/port"
)

const uniqueViolation = "23505"

// Store implements port.EntityStore and port.AdminStore using pgxpool.
// Lookup queries filter on is_active so the resolver never sees a
// deactivated brand or campaign.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const brandColumns = `id, handle, short_code, name, tagline, logo_url, color, color_secondary, city, state, is_active, created_at, updated_at`

func scanBrand(row pgx.Row) (*domain.Brand, error) {
	var b domain.Brand
	err := row.Scan(&b.ID, &b.Handle, &b.ShortCode, &b.Name, &b.Tagline, &b.LogoURL,
		&b.Color, &b.ColorSecondary, &b.City, &b.State, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindBrandByShortCode returns the active brand with the given short code,
// or (nil, nil) when none exists.
func (s *Store) FindBrandByShortCode(ctx context.Context, code string) (*domain.Brand, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE short_code = $1 AND is_active`, code)
	return scanBrand(row)
}

// FindBrandByHandle returns the active brand with the given handle, or
// (nil, nil) when none exists.
func (s *Store) FindBrandByHandle(ctx context.Context, handle string) (*domain.Brand, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE handle = $1 AND is_active`, handle)
	return scanBrand(row)
}

// FindCampaignByShortCode returns the active campaign with the given short
// code, or (nil, nil) when none exists.
func (s *Store) FindCampaignByShortCode(ctx context.Context, code string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := s.pool.QueryRow(ctx,
		`SELECT id, short_code, name, source, medium, campaign, icon, is_active, created_at
		 FROM campaigns WHERE short_code = $1 AND is_active`, code).
		Scan(&c.ID, &c.ShortCode, &c.Name, &c.Source, &c.Medium, &c.Campaign, &c.Icon, &c.IsActive, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// InsertClickEvent appends one click row.
func (s *Store) InsertClickEvent(ctx context.Context, ev domain.ClickEvent) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO link_clicks (id, brand_id, short_code, utm_source, utm_medium, utm_campaign, user_agent, referrer, clicked_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		ev.ID, ev.BrandID, ev.ShortCode, ev.Source, ev.Medium, ev.Campaign, ev.UserAgent, ev.Referrer, ev.ClickedAt)
	return err
}

// CreateBrand inserts a brand. A short-code or handle collision returns
// port.ErrDuplicateShortCode.
func (s *Store) CreateBrand(ctx context.Context, b *domain.Brand) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	_, err := s.pool.Exec(ctx,
		`INSERT INTO brands (id, handle, short_code, name, tagline, logo_url, color, color_secondary, city, state, is_active, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		b.ID, b.Handle, b.ShortCode, b.Name, b.Tagline, b.LogoURL, b.Color, b.ColorSecondary,
		b.City, b.State, b.IsActive, b.CreatedAt, b.UpdatedAt)
	return mapDuplicate(err)
}

func (s *Store) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+brandColumns+` FROM brands ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Brand, error) {
		var b domain.Brand
		err := row.Scan(&b.ID, &b.Handle, &b.ShortCode, &b.Name, &b.Tagline, &b.LogoURL,
			&b.Color, &b.ColorSecondary, &b.City, &b.State, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
		return b, err
	})
}

// CreateCampaign inserts a campaign. A short-code collision returns
// port.ErrDuplicateShortCode.
func (s *Store) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	c.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO campaigns (id, short_code, name, source, medium, campaign, icon, is_active, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.ShortCode, c.Name, c.Source, c.Medium, c.Campaign, c.Icon, c.IsActive, c.CreatedAt)
	return mapDuplicate(err)
}

func (s *Store) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, short_code, name, source, medium, campaign, icon, is_active, created_at
		 FROM campaigns ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.ShortCode, &c.Name, &c.Source, &c.Medium, &c.Campaign, &c.Icon, &c.IsActive, &c.CreatedAt)
		return c, err
	})
}

// ClickStats aggregates clicks in a period, total and grouped by brand.
func (s *Store) ClickStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	whereBrand := ""
	if req.BrandID != nil {
		whereBrand = "AND c.brand_id = $3"
		args = append(args, *req.BrandID)
	}
	query := fmt.Sprintf(
		`SELECT c.brand_id, b.handle, count(*)
		 FROM link_clicks c
		 JOIN brands b ON b.id = c.brand_id
		 WHERE c.clicked_at >= $1 AND c.clicked_at <= $2 %s
		 GROUP BY c.brand_id, b.handle
		 ORDER BY count(*) DESC`, whereBrand)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	byBrand, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.BrandClicks, error) {
		var bc port.BrandClicks
		err := row.Scan(&bc.BrandID, &bc.Handle, &bc.Clicks)
		return bc, err
	})
	if err != nil {
		return nil, err
	}
	resp := &port.StatsResp{ByBrand: byBrand}
	for _, bc := range byBrand {
		resp.Clicks += bc.Clicks
	}
	return resp, nil
}

// ClearClicks deletes all click rows and reports how many were removed.
// Administrative bulk reset; there is no per-row delete in normal operation.
func (s *Store) ClearClicks(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM link_clicks`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.ErrDuplicateShortCode
	}
	return err
}
