package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo brands and campaigns so short links resolve out of the
// box, e.g. /redirect/capital-ig. Existing rows are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	brands := []struct {
		handle, shortCode, name, tagline, city, state, color string
	}{
		{"capital-mma", "capital", "Capital MMA", "Martial arts for every age and level", "Alexandria", "VA", "#1f53a3"},
		{"iron-works-gym", "iron", "Iron Works Gym", "Strength training done right", "Austin", "TX", "#b91c1c"},
		{"summit-fitness", "summit", "Summit Fitness", "", "Denver", "CO", "#047857"},
	}
	for _, b := range brands {
		_, err := pool.Exec(ctx,
			`INSERT INTO brands (id, handle, short_code, name, tagline, city, state, color)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			 ON CONFLICT (handle) DO NOTHING`,
			uuid.New(), b.handle, b.shortCode, b.name, b.tagline, b.city, b.state, b.color)
		if err != nil {
			return err
		}
	}

	campaigns := []struct {
		shortCode, name, source, medium, campaign string
	}{
		{"ig", "Instagram Bio", "instagram", "social", "bio_link"},
		{"fb", "Facebook Page", "facebook", "social", "bio_link"},
		{"yt", "YouTube Description", "youtube", "video", "bio_link"},
		{"em", "Email Signature", "email", "email", "signature"},
	}
	for _, c := range campaigns {
		_, err := pool.Exec(ctx,
			`INSERT INTO campaigns (id, short_code, name, source, medium, campaign)
			 VALUES ($1,$2,$3,$4,$5,$6)
			 ON CONFLICT (short_code) DO NOTHING`,
			uuid.New(), c.shortCode, c.name, c.source, c.medium, c.campaign)
		if err != nil {
			return err
		}
	}
	return nil
}
