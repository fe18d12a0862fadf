package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weddy/internal/models/request_models"
	"weddy/internal/services"
	"weddy/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{placeService: placeService}
}

// ListPlaces godoc
// @Summary List curated places
// @Tags Places
// @Produce json
// @Param category query string false "Category"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.Place
// @Router /places [get]
func (p *PlaceController) ListPlaces(c *gin.Context) {
	var q request_models.ListPlacesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page parameters")
		return
	}

	places, err := p.placeService.ListPlaces(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlaceController) GetPlace(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place id")
		return
	}

	place, err := p.placeService.GetPlace(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// ListFeatured godoc
// @Summary List the featured slots in order
// @Tags Places
// @Produce json
// @Success 200 {array} response_models.FeaturedSlot
// @Router /featured [get]
func (p *PlaceController) ListFeatured(c *gin.Context) {
	slots, err := p.placeService.ListFeatured(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, slots, "Featured places fetched successfully")
}

func (p *PlaceController) CreatePlace(c *gin.Context) {
	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	place, err := p.placeService.CreatePlace(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, place, "Place created")
}

func (p *PlaceController) UpdatePlace(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place id")
		return
	}
	var req request_models.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	place, err := p.placeService.UpdatePlace(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, place, "Place updated")
}

func (p *PlaceController) DeletePlace(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place id")
		return
	}

	if err := p.placeService.DeletePlace(c.Request.Context(), actorFrom(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Place deleted")
}

// SetFeaturedSlot godoc
// @Summary Put a place into a featured slot, or clear it with a null place_id
// @Tags Admin
// @Accept json
// @Produce json
// @Param slot path int true "Slot 0..3"
// @Param request body request_models.SetFeaturedRequest true "Place"
// @Success 200 {array} response_models.FeaturedSlot
// @Security BearerAuth
// @Router /admin/featured/{slot} [put]
func (p *PlaceController) SetFeaturedSlot(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid slot")
		return
	}
	var req request_models.SetFeaturedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	slots, err := p.placeService.SetFeaturedSlot(c.Request.Context(), actorFrom(c), slot, req.PlaceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, slots, "Featured slot updated")
}
