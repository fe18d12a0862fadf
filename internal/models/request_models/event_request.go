package request_models

import (
	"github.com/google/uuid"

	"weddy/internal/models/db_models"
)

type AppendEventRequest struct {
	Date        string              `json:"date" binding:"required"`
	Kind        db_models.EventKind `json:"kind" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Body        string              `json:"body"`
	SelectionID *uuid.UUID          `json:"selection_id,omitempty"`
}

// ListEventsQuery selects a single Date or the inclusive From..To range.
type ListEventsQuery struct {
	Date string `form:"date"`
	From string `form:"from"`
	To   string `form:"to"`
}
