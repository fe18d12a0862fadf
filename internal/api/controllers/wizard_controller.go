package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weddy/internal/models/request_models"
	"weddy/internal/services"
	"weddy/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
	searchService services.SearchServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface, searchService services.SearchServiceInterface) *WizardController {
	return &WizardController{wizardService: wizardService, searchService: searchService}
}

// Start godoc
// @Summary Start a query wizard session for a category
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body request_models.WizardStartRequest true "Category"
// @Success 201 {object} response_models.WizardResponse
// @Security BearerAuth
// @Router /wizard [post]
func (w *WizardController) Start(c *gin.Context) {
	var req request_models.WizardStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := w.wizardService.Start(actorFrom(c), req.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, state, "Wizard started")
}

func (w *WizardController) Get(c *gin.Context) {
	state, err := w.wizardService.Get(actorFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Wizard fetched successfully")
}

func (w *WizardController) Answer(c *gin.Context) {
	var req request_models.WizardAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Answer value is required")
		return
	}

	state, err := w.wizardService.Answer(actorFrom(c), c.Param("id"), req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Answer recorded")
}

func (w *WizardController) Skip(c *gin.Context) {
	state, err := w.wizardService.Skip(actorFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Step skipped")
}

func (w *WizardController) Back(c *gin.Context) {
	state, err := w.wizardService.Back(actorFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Moved back")
}

func (w *WizardController) GoTo(c *gin.Context) {
	var req request_models.WizardGoToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	state, err := w.wizardService.GoTo(actorFrom(c), c.Param("id"), req.Step)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Moved to step")
}

// Build godoc
// @Summary Emit the search request of a finished wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard session id"
// @Success 200 {object} request_models.SearchRequest
// @Security BearerAuth
// @Router /wizard/{id}/request [get]
func (w *WizardController) Build(c *gin.Context) {
	req, err := w.wizardService.Build(actorFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, req, "Search request built")
}

// Search godoc
// @Summary Run the search of a finished wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard session id"
// @Success 200 {object} response_models.SearchView
// @Failure 400,429,502 {object} response_models.SearchView
// @Security BearerAuth
// @Router /wizard/{id}/search [post]
func (w *WizardController) Search(c *gin.Context) {
	req, err := w.wizardService.Build(actorFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	respondSearch(c, w.searchService, req)
}
