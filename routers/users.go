package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/auth"
	"github.com/loopline/loopline-services-gateway/users"
)

func RegisterUserRoutes(h *users.UsersHandler, jwtSecret string, route *gin.Engine) {
	api := route.Group("/api", auth.JWTMiddleware(jwtSecret))

	api.GET("/user", h.Me)
	api.POST("/profile/update", h.UpdateProfile)
	api.GET("/friends", h.Friends)
	api.POST("/friends", h.AddFriend)
}
