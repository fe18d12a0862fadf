package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weddy/internal/models/db_models"
)

type PlaceRepository interface {
	Create(ctx context.Context, place *db_models.Place) error
	Update(ctx context.Context, place *db_models.Place) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error)
	List(ctx context.Context, category db_models.Category, page, pageSize int) ([]db_models.Place, error)

	// SetFeaturedSlot frees slot and, when placeID is set, moves that place
	// into it, all in one transaction. A missing place yields gorm.ErrRecordNotFound.
	SetFeaturedSlot(ctx context.Context, slot int, placeID *uuid.UUID) error
	ListFeatured(ctx context.Context) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) Update(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(place).
			Select("name", "category", "address", "road_address", "phone",
				"external_link", "description", "latitude", "longitude").
			Updates(place)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete releases the place's featured slot before soft deleting it.
func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Place{}).
			Where("id = ?", id).
			Updates(map[string]any{"featured_slot": nil, "is_featured": false}).Error; err != nil {
			return err
		}
		res := tx.Delete(&db_models.Place{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func (r *placeRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context, category db_models.Category, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) SetFeaturedSlot(ctx context.Context, slot int, placeID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if placeID != nil {
			var place db_models.Place
			if err := tx.Select("id").First(&place, "id = ?", *placeID).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&db_models.Place{}).
			Where("featured_slot = ?", slot).
			Updates(map[string]any{"featured_slot": nil, "is_featured": false}).Error; err != nil {
			return err
		}

		if placeID == nil {
			return nil
		}
		// Assigning the new slot also vacates whichever slot the place held.
		return tx.Model(&db_models.Place{}).
			Where("id = ?", *placeID).
			Updates(map[string]any{"featured_slot": slot, "is_featured": true}).Error
	})
}

func (r *placeRepository) ListFeatured(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("featured_slot IS NOT NULL").
		Order("featured_slot ASC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
