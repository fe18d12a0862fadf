package db_models

import (
	"github.com/google/uuid"
)

// Selection is a vendor or place a group has chosen. VendorKey is set to
// "<group_id>:<category>" for vendor kinds and left NULL for places, so the
// unique index allows one vendor per category per group and any number of places.
type Selection struct {
	BaseModel
	GroupID      uuid.UUID     `gorm:"type:uuid;not null;index"`
	CreatedBy    uuid.UUID     `gorm:"type:uuid"`
	Category     Category      `gorm:"size:32;not null;index"`
	Kind         SelectionKind `gorm:"size:16;not null"`
	VendorKey    *string       `gorm:"size:80;uniqueIndex"`
	Name         string        `gorm:"not null"`
	Address      string
	Phone        string `gorm:"size:64"`
	ExternalLink string
	PriceRange   *string `gorm:"size:64"`
	Memo         *string
	IsConfirmed  bool `gorm:"not null;default:false"`
}

func VendorKeyOf(groupID uuid.UUID, category Category) string {
	return groupID.String() + ":" + string(category)
}
