package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/admin"
)

func RegisterAdminRoutes(h *admin.AdminHandler, route *gin.Engine) {
	adminGroup := route.Group("/api/admin")

	adminGroup.POST("/users", h.LogUsers)
}
