package controllers

import (
	"github.com/gin-gonic/gin"

	"weddy/internal/wizard"
	"weddy/pkg/utils"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// ListCategories godoc
// @Summary List categories and their wizard facets
// @Tags Catalog
// @Produce json
// @Success 200 {array} response_models.CategoryResponse
// @Router /categories [get]
func (cc *CatalogController) ListCategories(c *gin.Context) {
	utils.RespondSuccess(c, wizard.Describe(), "Categories fetched successfully")
}

func (cc *CatalogController) ListRegions(c *gin.Context) {
	utils.RespondSuccess(c, wizard.Regions, "Regions fetched successfully")
}
