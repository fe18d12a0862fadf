package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"weddy/internal/models/db_models"
)

// EventRepository is append-only: events are never updated or deleted.
type EventRepository interface {
	Append(ctx context.Context, ev *db_models.PlanEvent) error
	ListByDate(ctx context.Context, groupID uuid.UUID, date string) ([]db_models.PlanEvent, error)
	ListBetween(ctx context.Context, groupID uuid.UUID, from, to string) ([]db_models.PlanEvent, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Append(ctx context.Context, ev *db_models.PlanEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

func (r *eventRepository) ListByDate(ctx context.Context, groupID uuid.UUID, date string) ([]db_models.PlanEvent, error) {
	var events []db_models.PlanEvent
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND date = ?", groupID, date).
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListBetween returns events dated from..to inclusive. Dates are YYYY-MM-DD
// so lexical order is calendar order.
func (r *eventRepository) ListBetween(ctx context.Context, groupID uuid.UUID, from, to string) ([]db_models.PlanEvent, error) {
	var events []db_models.PlanEvent
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND date >= ? AND date <= ?", groupID, from, to).
		Order("date ASC").
		Order("created_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
