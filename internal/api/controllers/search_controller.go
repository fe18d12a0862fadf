package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weddy/internal/models/request_models"
	"weddy/internal/services"
	"weddy/pkg/utils"
)

type SearchController struct {
	searchService     services.SearchServiceInterface
	detailService     services.DetailServiceInterface
	enrichmentService services.EnrichmentServiceInterface
}

func NewSearchController(
	searchService services.SearchServiceInterface,
	detailService services.DetailServiceInterface,
	enrichmentService services.EnrichmentServiceInterface,
) *SearchController {
	return &SearchController{
		searchService:     searchService,
		detailService:     detailService,
		enrichmentService: enrichmentService,
	}
}

// Search godoc
// @Summary Search vendors or places for a wizard request
// @Description Failed searches still return a view with an external search link.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request_models.SearchRequest true "Search request"
// @Success 200 {object} response_models.SearchView
// @Failure 400,429,502 {object} response_models.SearchView
// @Security BearerAuth
// @Router /search [post]
func (s *SearchController) Search(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	respondSearch(c, s.searchService, req)
}

// respondSearch runs req as the viewer's latest search. Search failures still
// carry the view so the client can offer the external search link.
func respondSearch(c *gin.Context, searchService services.SearchServiceInterface, req request_models.SearchRequest) {
	query, _ := searchService.BuildQuery(req)
	candidates, err := searchService.SearchLatest(c.Request.Context(), viewerKey(c), actorFrom(c).GroupID, req)
	se, searchFailed := utils.AsSearchError(err)
	if err != nil && !searchFailed {
		utils.HandleServiceError(c, err)
		return
	}

	view := services.SearchViewOf(req, query, candidates, err)
	if searchFailed {
		utils.RespondErrorData(c, utils.SearchErrorStatus(se.Kind), string(se.Kind), view.Message, view)
		return
	}
	utils.RespondSuccess(c, view, "Search completed")
}

// Detail godoc
// @Summary Resolve the map and enrichment of one candidate
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request_models.CandidateInput true "Candidate"
// @Success 200 {object} response_models.DetailView
// @Security BearerAuth
// @Router /detail [post]
func (s *SearchController) Detail(c *gin.Context) {
	var in request_models.CandidateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid candidate")
		return
	}

	view, err := s.detailService.Detail(c.Request.Context(), viewerKey(c), in)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Detail fetched successfully")
}

func (s *SearchController) Enrichment(c *gin.Context) {
	var q request_models.EnrichmentQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name and category are required")
		return
	}

	result, err := s.enrichmentService.Enrich(c.Request.Context(), q.Name, q.Category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Enrichment fetched successfully")
}
