package request_models

import "github.com/google/uuid"

type AddSelectionRequest struct {
	Candidate  CandidateInput `json:"candidate" binding:"required"`
	PriceRange *string        `json:"price_range,omitempty"`
	Memo       *string        `json:"memo,omitempty"`
}

// UpdateSelectionRequest leaves a field untouched when it is omitted.
type UpdateSelectionRequest struct {
	PriceRange *string `json:"price_range,omitempty"`
	Memo       *string `json:"memo,omitempty"`
}

type SetFeaturedRequest struct {
	PlaceID *uuid.UUID `json:"place_id"`
}
