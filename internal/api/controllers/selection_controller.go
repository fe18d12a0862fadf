package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weddy/internal/models/request_models"
	"weddy/internal/services"
	"weddy/pkg/utils"
)

type SelectionController struct {
	selectionService services.SelectionServiceInterface
}

func NewSelectionController(selectionService services.SelectionServiceInterface) *SelectionController {
	return &SelectionController{selectionService: selectionService}
}

// ListSelections godoc
// @Summary List the group's chosen vendors and places
// @Tags Selections
// @Produce json
// @Success 200 {array} response_models.Selection
// @Security BearerAuth
// @Router /selections [get]
func (s *SelectionController) ListSelections(c *gin.Context) {
	sels, err := s.selectionService.ListSelections(c.Request.Context(), actorFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sels, "Selections fetched successfully")
}

// AddSelection godoc
// @Summary Promote a search candidate into the group's selections
// @Description Vendors replace the group's previous pick of the same category.
// @Tags Selections
// @Accept json
// @Produce json
// @Param request body request_models.AddSelectionRequest true "Selection"
// @Success 201 {object} response_models.Selection
// @Security BearerAuth
// @Router /selections [post]
func (s *SelectionController) AddSelection(c *gin.Context) {
	var req request_models.AddSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sel, err := s.selectionService.AddSelection(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, sel, "Selection saved")
}

func (s *SelectionController) UpdateSelection(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid selection id")
		return
	}
	var req request_models.UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sel, err := s.selectionService.UpdateSelection(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "Selection updated")
}

func (s *SelectionController) ToggleConfirmed(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid selection id")
		return
	}

	sel, err := s.selectionService.ToggleConfirmed(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sel, "Selection updated")
}

func (s *SelectionController) RemoveSelection(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid selection id")
		return
	}

	if err := s.selectionService.RemoveSelection(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Selection removed")
}
