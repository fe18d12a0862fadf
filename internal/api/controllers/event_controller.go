package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"weddy/internal/models/request_models"
	"weddy/internal/models/response_models"
	"weddy/internal/services"
	"weddy/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

func (e *EventController) AppendEvent(c *gin.Context) {
	var req request_models.AppendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ev, err := e.eventService.AppendEvent(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, ev, "Event added")
}

// ListEvents godoc
// @Summary List plan events of one day or of an inclusive date range
// @Tags Events
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} response_models.PlanEvent
// @Security BearerAuth
// @Router /events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	var q request_models.ListEventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query")
		return
	}

	ctx := c.Request.Context()
	actor := actorFrom(c)
	var (
		events []response_models.PlanEvent
		err    error
	)
	switch {
	case q.Date != "":
		events, err = e.eventService.ListEvents(ctx, actor, q.Date)
	case q.From != "" && q.To != "":
		events, err = e.eventService.ListEventsBetween(ctx, actor, q.From, q.To)
	default:
		utils.RespondError(c, http.StatusBadRequest, "Either date or from and to are required")
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, events, "Events fetched successfully")
}
