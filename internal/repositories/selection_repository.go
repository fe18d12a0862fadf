package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weddy/internal/models/db_models"
)

type SelectionRepository interface {
	Create(ctx context.Context, sel *db_models.Selection) error
	// ReplaceVendor removes the group's current vendor of the same category and
	// inserts sel in one transaction.
	ReplaceVendor(ctx context.Context, sel *db_models.Selection) error
	GetByID(ctx context.Context, groupID, id uuid.UUID) (*db_models.Selection, error)
	Delete(ctx context.Context, groupID, id uuid.UUID) (bool, error)
	ToggleConfirmed(ctx context.Context, groupID, id uuid.UUID) (*db_models.Selection, error)
	UpdateNotes(ctx context.Context, groupID, id uuid.UUID, priceRange, memo *string) (*db_models.Selection, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]db_models.Selection, error)
}

type selectionRepository struct {
	db *gorm.DB
}

func NewSelectionRepository(db *gorm.DB) SelectionRepository {
	return &selectionRepository{db: db}
}

func (r *selectionRepository) Create(ctx context.Context, sel *db_models.Selection) error {
	return r.db.WithContext(ctx).Create(sel).Error
}

func (r *selectionRepository) ReplaceVendor(ctx context.Context, sel *db_models.Selection) error {
	if sel.VendorKey == nil {
		return errors.New("selection repository: vendor key is required")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_key = ?", *sel.VendorKey).Delete(&db_models.Selection{}).Error; err != nil {
			return err
		}
		return tx.Create(sel).Error
	})
}

// ────────────────────────────────────────────────────────────────
// Read helpers return a nil model and nil error when no row matches.
// ────────────────────────────────────────────────────────────────

func (r *selectionRepository) GetByID(ctx context.Context, groupID, id uuid.UUID) (*db_models.Selection, error) {
	var sel db_models.Selection
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		First(&sel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sel, nil
}

func (r *selectionRepository) Delete(ctx context.Context, groupID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND group_id = ?", id, groupID).
		Delete(&db_models.Selection{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *selectionRepository) ToggleConfirmed(ctx context.Context, groupID, id uuid.UUID) (*db_models.Selection, error) {
	var out *db_models.Selection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Selection{}).
			Where("id = ? AND group_id = ?", id, groupID).
			Update("is_confirmed", gorm.Expr("NOT is_confirmed"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		var sel db_models.Selection
		if err := tx.First(&sel, "id = ?", id).Error; err != nil {
			return err
		}
		out = &sel
		return nil
	})
	return out, err
}

func (r *selectionRepository) UpdateNotes(ctx context.Context, groupID, id uuid.UUID, priceRange, memo *string) (*db_models.Selection, error) {
	updates := map[string]any{}
	if priceRange != nil {
		updates["price_range"] = *priceRange
	}
	if memo != nil {
		updates["memo"] = *memo
	}

	var out *db_models.Selection
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sel db_models.Selection
		err := tx.Where("group_id = ?", groupID).First(&sel, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&sel).Updates(updates).Error; err != nil {
				return err
			}
		}
		if priceRange != nil {
			sel.PriceRange = priceRange
		}
		if memo != nil {
			sel.Memo = memo
		}
		out = &sel
		return nil
	})
	return out, err
}

func (r *selectionRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]db_models.Selection, error) {
	var sels []db_models.Selection
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&sels).Error
	if err != nil {
		return nil, err
	}
	return sels, nil
}
