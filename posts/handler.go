package posts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/posts/types"
	"github.com/loopline/loopline-services-gateway/responses"
	"github.com/loopline/loopline-services-gateway/services"
)

type PostsHandler struct {
	postsService services.PostsService
}

func NewPostsHandler(postsService services.PostsService) *PostsHandler {
	return &PostsHandler{
		postsService: postsService,
	}
}

// List godoc
// @Summary List the caller's posts, newest first
// @Produce json
// @Success 200
// @Router /posts [get]
func (h *PostsHandler) List(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		apperrors.ForbiddenResponse(c, "could not validate user authenticity")
		return
	}

	resp, err := h.postsService.List(c, email)
	if err != nil {
		apperrors.InternalServerErrorResponse(c, "could not get posts")
		return
	}

	responses.JSONData(c, http.StatusOK, resp)
}

// Create godoc
// @Summary Create a post or review
// @Accept json
// @Produce json
// @Success 201
// @Router /posts [post]
func (h *PostsHandler) Create(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		apperrors.ForbiddenResponse(c, "could not validate user authenticity")
		return
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequestResponse(c, "invalid input")
		return
	}

	post, err := h.postsService.Create(c, email, req)
	if err != nil {
		apperrors.InternalServerErrorResponse(c, "could not create post")
		return
	}

	responses.JSONData(c, http.StatusCreated, post)
}
