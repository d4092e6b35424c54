package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/auth"
	"github.com/loopline/loopline-services-gateway/posts"
)

func RegisterPostsRoutes(h *posts.PostsHandler, jwtSecret string, route *gin.Engine) {
	postsGroup := route.Group("/api/posts", auth.JWTMiddleware(jwtSecret))

	postsGroup.GET("", h.List)
	postsGroup.POST("", h.Create)
}
