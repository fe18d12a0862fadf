package request_models

import "weddy/internal/models/db_models"

type WizardStartRequest struct {
	Category db_models.Category `json:"category" binding:"required"`
}

type WizardAnswerRequest struct {
	Value string `json:"value" binding:"required"`
}

type WizardGoToRequest struct {
	Step int `json:"step"`
}
