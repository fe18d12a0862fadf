package response_models

type GeoTier string

const (
	GeoTierNative     GeoTier = "native"
	GeoTierGeocoded   GeoTier = "geocoded"
	GeoTierUnresolved GeoTier = "unresolved"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeoResult always carries an external map link; Coordinate is nil only for
// the unresolved tier.
type GeoResult struct {
	Tier           GeoTier     `json:"tier"`
	Coordinate     *Coordinate `json:"coordinate,omitempty"`
	ExternalMapURL string      `json:"external_map_url"`
}
