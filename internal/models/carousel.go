package models

import (
	"time"

	"github.com/google/uuid"
)

// CarouselImage is a banner shown on the public landing page. Ordering is
// ascending by DisplayOrder; inactive images are hidden from the public
// listing but remain editable by staff.
type CarouselImage struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
