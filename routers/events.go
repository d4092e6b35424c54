package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/auth"
	"github.com/loopline/loopline-services-gateway/events"
)

func RegisterEventsRoutes(h *events.EventsHandler, jwtSecret string, route *gin.Engine) {
	eventsGroup := route.Group("/api/events")

	eventsGroup.GET("/discover", h.Discover)
	eventsGroup.POST("/:id/join", auth.JWTMiddleware(jwtSecret), h.Join)
}
