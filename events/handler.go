package events

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/events/types"
	"github.com/loopline/loopline-services-gateway/responses"
	"github.com/loopline/loopline-services-gateway/services"
)

type EventsHandler struct {
	eventsService services.EventsService
}

func NewEventsHandler(eventsService services.EventsService) *EventsHandler {
	return &EventsHandler{
		eventsService: eventsService,
	}
}

// Discover godoc
// @Summary Events within a radius of the given coordinates
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Search radius, default 25"
// @Produce json
// @Success 200
// @Router /events/discover [get]
func (h *EventsHandler) Discover(c *gin.Context) {
	var q types.DiscoverQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apperrors.BadRequestResponse(c, "invalid coordinates")
		return
	}

	resp, err := h.eventsService.Discover(c, q)
	if err != nil {
		apperrors.InternalServerErrorResponse(c, "could not discover events")
		return
	}

	responses.JSONData(c, http.StatusOK, resp)
}

// Join godoc
// @Summary Join an event
// @Param id path string true "Event ID"
// @Produce json
// @Success 200
// @Router /events/{id}/join [post]
func (h *EventsHandler) Join(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		apperrors.ForbiddenResponse(c, "could not validate user authenticity")
		return
	}

	err := h.eventsService.Join(c, c.Param("id"), email)
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		apperrors.NotFoundResponse(c, "event not found")
	case errors.Is(err, apperrors.ErrAlreadyJoined):
		apperrors.ConflictResponse(c, "already joined")
	case err != nil:
		apperrors.InternalServerErrorResponse(c, "could not join event")
	default:
		responses.JSONSuccess(c, "joined")
	}
}
