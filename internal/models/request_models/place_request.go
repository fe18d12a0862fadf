package request_models

import "weddy/internal/models/db_models"

type CreatePlaceRequest struct {
	Name         string             `json:"name" binding:"required"`
	Category     db_models.Category `json:"category" binding:"required"`
	Address      string             `json:"address"`
	RoadAddress  string             `json:"road_address"`
	Phone        string             `json:"phone"`
	ExternalLink string             `json:"external_link"`
	Description  string             `json:"description"`
	Latitude     *float64           `json:"latitude,omitempty"`
	Longitude    *float64           `json:"longitude,omitempty"`
}

type UpdatePlaceRequest = CreatePlaceRequest

type ListPlacesQuery struct {
	Category db_models.Category `form:"category"`
	Page     int                `form:"page"`
	PageSize int                `form:"page_size"`
}
