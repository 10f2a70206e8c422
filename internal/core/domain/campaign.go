package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign is an attribution preset. Its ShortCode forms the second part of
// composite short codes; Source, Medium and Campaign are the three UTM
// dimensions stamped onto every destination URL resolved through it.
type Campaign struct {
	ID        uuid.UUID `json:"id"`
	ShortCode string    `json:"short_code"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Medium    string    `json:"medium"`
	Campaign  string    `json:"campaign"`
	Icon      string    `json:"icon,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
