package db_models

import "gorm.io/gorm"

// FeaturedSlotCount is the number of administrator-curated featured slots.
const FeaturedSlotCount = 4

// Place is a curated venue record. FeaturedSlot carries a unique index so no
// slot index can reference more than one place.
type Place struct {
	BaseModel
	Name         string   `gorm:"not null"`
	Category     Category `gorm:"size:32;not null;index"`
	Address      string
	RoadAddress  string
	Phone        string `gorm:"size:64"`
	ExternalLink string
	Description  string
	Latitude     *float64
	Longitude    *float64
	IsFeatured   bool `gorm:"not null;default:false;index"`
	FeaturedSlot *int `gorm:"uniqueIndex"`

	DeletedAt gorm.DeletedAt `gorm:"index"`
}
