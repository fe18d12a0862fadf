package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// GeocodeCache stores secondary geocoder answers per address, including misses.
type GeocodeCache struct {
	ID        uint      `gorm:"primaryKey"`
	Address   string    `gorm:"size:500;not null;uniqueIndex"`
	Lat       float64   `gorm:"not null"`
	Lng       float64   `gorm:"not null"`
	Matched   bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (GeocodeCache) TableName() string {
	return "geocode_cache"
}

// EnrichmentCache stores a serialized enrichment result per (name, category).
type EnrichmentCache struct {
	ID        uint           `gorm:"primaryKey"`
	Name      string         `gorm:"size:300;not null;uniqueIndex:idx_enrichment_name_category"`
	Category  Category       `gorm:"size:32;not null;uniqueIndex:idx_enrichment_name_category"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	ExpiresAt time.Time      `gorm:"not null;index"`
}

func (EnrichmentCache) TableName() string {
	return "enrichment_cache"
}
