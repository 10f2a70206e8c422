package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClickEvent is an append-only record of a resolved short-link visit. It is
// written on the human redirect path only; crawler fetches are not clicks.
type ClickEvent struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	ShortCode string    `json:"short_code"`
	Source    string    `json:"utm_source"`
	Medium    string    `json:"utm_medium"`
	Campaign  string    `json:"utm_campaign"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	ClickedAt time.Time `json:"clicked_at"`
}
