package db_models

import "github.com/google/uuid"

type EventKind string

const (
	EventSchedule  EventKind = "schedule"
	EventMemo      EventKind = "memo"
	EventChecklist EventKind = "checklist"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventSchedule, EventMemo, EventChecklist:
		return true
	}
	return false
}

// PlanEvent is an append-only entry of the group's planning calendar.
// Date is the KST calendar day in YYYY-MM-DD form.
type PlanEvent struct {
	BaseModel
	GroupID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_plan_event_group_date"`
	Date        string     `gorm:"size:10;not null;index:idx_plan_event_group_date"`
	Kind        EventKind  `gorm:"size:16;not null"`
	Title       string     `gorm:"not null"`
	Body        string
	SelectionID *uuid.UUID `gorm:"type:uuid"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid"`
}
