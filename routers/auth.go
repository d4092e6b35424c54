package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/auth/handlers"
)

func RegisterAuthRoutes(auth0 *handlers.Auth0Handler, h *handlers.AuthHandler, route *gin.Engine) {
	auth := route.Group("/api/auth")

	auth.GET("/login", auth0.Login)
	auth.GET("/callback", auth0.Callback)
	auth.POST("/exchange-auth0", h.Exchange)
	auth.GET("/status", h.Status)
}
