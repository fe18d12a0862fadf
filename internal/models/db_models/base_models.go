package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel timestamps are unix nanoseconds so rows created within the same
// second still order by creation.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt int64     `gorm:"autoCreateTime:nano;index"`
	UpdatedAt int64     `gorm:"autoUpdateTime:nano"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
