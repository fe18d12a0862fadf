package response_models

import "weddy/internal/models/db_models"

type WizardOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type WizardQuestion struct {
	Key      string         `json:"key"`
	Label    string         `json:"label"`
	Options  []WizardOption `json:"options,omitempty"`
	Required bool           `json:"required"`
}

type WizardAnswer struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	// Skipped facets act as wildcards.
	Skipped bool `json:"skipped"`
}

// WizardResponse reports progress over question steps only; the summary step
// reports CurrentStep == TotalSteps with Progress 1.
type WizardResponse struct {
	SessionID   string             `json:"session_id"`
	Category    db_models.Category `json:"category"`
	CurrentStep int                `json:"current_step"`
	TotalSteps  int                `json:"total_steps"`
	Progress    float64            `json:"progress"`
	Question    *WizardQuestion    `json:"question,omitempty"`
	Answers     []WizardAnswer     `json:"answers"`
	IsComplete  bool               `json:"is_complete"`
}

type CategoryResponse struct {
	Category db_models.Category      `json:"category"`
	Label    string                  `json:"label"`
	Kind     db_models.SelectionKind `json:"kind"`
	Facets   []WizardQuestion        `json:"facets"`
}
