package response_models

import (
	"github.com/google/uuid"

	"weddy/internal/models/db_models"
)

type Selection struct {
	ID           uuid.UUID               `json:"id"`
	Category     db_models.Category      `json:"category"`
	Kind         db_models.SelectionKind `json:"kind"`
	Name         string                  `json:"name"`
	Address      string                  `json:"address,omitempty"`
	Phone        string                  `json:"phone,omitempty"`
	ExternalLink string                  `json:"external_link,omitempty"`
	PriceRange   *string                 `json:"price_range,omitempty"`
	Memo         *string                 `json:"memo,omitempty"`
	IsConfirmed  bool                    `json:"is_confirmed"`
	CreatedAt    string                  `json:"created_at"`
}

type Place struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Category     db_models.Category `json:"category"`
	Address      string             `json:"address,omitempty"`
	RoadAddress  string             `json:"road_address,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	ExternalLink string             `json:"external_link,omitempty"`
	Description  string             `json:"description,omitempty"`
	Latitude     *float64           `json:"latitude,omitempty"`
	Longitude    *float64           `json:"longitude,omitempty"`
	IsFeatured   bool               `json:"is_featured"`
	FeaturedSlot *int               `json:"featured_slot,omitempty"`
}

// FeaturedSlot is one of the fixed featured positions; Place is nil when empty.
type FeaturedSlot struct {
	Slot  int    `json:"slot"`
	Place *Place `json:"place,omitempty"`
}

type PlanEvent struct {
	ID          uuid.UUID           `json:"id"`
	Date        string              `json:"date"`
	Kind        db_models.EventKind `json:"kind"`
	Title       string              `json:"title"`
	Body        string              `json:"body,omitempty"`
	SelectionID *uuid.UUID          `json:"selection_id,omitempty"`
	CreatedAt   string              `json:"created_at"`
}
