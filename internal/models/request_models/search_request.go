package request_models

import "weddy/internal/models/db_models"

// SearchRequest is the normalized output of the query wizard. A facet that was
// skipped is absent from Facets and acts as a wildcard.
type SearchRequest struct {
	Category db_models.Category `json:"category" binding:"required"`
	Region   string             `json:"region"`
	Facets   map[string]string  `json:"facets,omitempty"`
}

// CandidateInput is a search hit sent back by the client for a detail view or
// to be promoted into a selection.
type CandidateInput struct {
	Name           string             `json:"name" binding:"required"`
	Category       db_models.Category `json:"category" binding:"required"`
	Address        string             `json:"address"`
	RoadAddress    string             `json:"road_address"`
	Phone          string             `json:"phone"`
	ExternalLink   string             `json:"external_link"`
	RawDescription string             `json:"raw_description"`
	MapX           string             `json:"map_x,omitempty"`
	MapY           string             `json:"map_y,omitempty"`
}

type EnrichmentQuery struct {
	Name     string             `form:"name" binding:"required"`
	Category db_models.Category `form:"category" binding:"required"`
}
