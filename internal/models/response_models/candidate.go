package response_models

import "weddy/internal/models/db_models"

// Candidate is an external search hit. ID is derived from name and address so
// two venues sharing a display name stay distinguishable within one response.
type Candidate struct {
	ID              string             `json:"id"`
	Index           int                `json:"index"`
	Name            string             `json:"name"`
	Category        db_models.Category `json:"category"`
	Address         string             `json:"address,omitempty"`
	RoadAddress     string             `json:"road_address,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	ExternalLink    string             `json:"external_link,omitempty"`
	RawDescription  string             `json:"raw_description,omitempty"`
	MapX            string             `json:"map_x,omitempty"`
	MapY            string             `json:"map_y,omitempty"`
	AlreadySelected bool               `json:"already_selected"`
}

// PreferredAddress returns the road address when present.
func (c Candidate) PreferredAddress() string {
	if c.RoadAddress != "" {
		return c.RoadAddress
	}
	return c.Address
}
