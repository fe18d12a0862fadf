package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"weddy/internal/models/db_models"
)

type GeocodeCacheRepository interface {
	Get(ctx context.Context, address string) (*db_models.GeocodeCache, error)
	Put(ctx context.Context, entry *db_models.GeocodeCache) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type geocodeCacheRepository struct {
	db *gorm.DB
}

func NewGeocodeCacheRepository(db *gorm.DB) GeocodeCacheRepository {
	return &geocodeCacheRepository{db: db}
}

// Get returns the unexpired entry for address, or nil.
func (r *geocodeCacheRepository) Get(ctx context.Context, address string) (*db_models.GeocodeCache, error) {
	var entry db_models.GeocodeCache
	err := r.db.WithContext(ctx).
		Where("address = ? AND expires_at > ?", address, time.Now().UTC()).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *geocodeCacheRepository) Put(ctx context.Context, entry *db_models.GeocodeCache) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "matched", "expires_at"}),
	}).Create(entry).Error
}

func (r *geocodeCacheRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&db_models.GeocodeCache{})
	return res.RowsAffected, res.Error
}

type EnrichmentCacheRepository interface {
	Get(ctx context.Context, name string, category db_models.Category) (*db_models.EnrichmentCache, error)
	Put(ctx context.Context, entry *db_models.EnrichmentCache) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type enrichmentCacheRepository struct {
	db *gorm.DB
}

func NewEnrichmentCacheRepository(db *gorm.DB) EnrichmentCacheRepository {
	return &enrichmentCacheRepository{db: db}
}

func (r *enrichmentCacheRepository) Get(ctx context.Context, name string, category db_models.Category) (*db_models.EnrichmentCache, error) {
	var entry db_models.EnrichmentCache
	err := r.db.WithContext(ctx).
		Where("name = ? AND category = ? AND expires_at > ?", name, category, time.Now().UTC()).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *enrichmentCacheRepository) Put(ctx context.Context, entry *db_models.EnrichmentCache) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at"}),
	}).Create(entry).Error
}

func (r *enrichmentCacheRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&db_models.EnrichmentCache{})
	return res.RowsAffected, res.Error
}
