package domain

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a gym profile published on the bio-link platform. Handle is the
// public URL path segment of its bio page; ShortCode is the compact,
// admin-chosen identifier used as the first part of composite short codes.
// Both are unique across brands.
type Brand struct {
	ID             uuid.UUID `json:"id"`
	Handle         string    `json:"handle"`
	ShortCode      string    `json:"short_code"`
	Name           string    `json:"name"`
	Tagline        string    `json:"tagline,omitempty"`
	LogoURL        string    `json:"logo_url,omitempty"`
	Color          string    `json:"color,omitempty"`
	ColorSecondary string    `json:"color_secondary,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Location joins city and state for display, skipping empty parts.
func (b Brand) Location() string {
	switch {
	case b.City != "" && b.State != "":
		return b.City + ", " + b.State
	case b.City != "":
		return b.City
	default:
		return b.State
	}
}
