package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/apperrors"
	authtypes "github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/responses"
	"github.com/loopline/loopline-services-gateway/services"
)

type UsersHandler struct {
	userService services.UserService
}

func NewUsersHandler(userService services.UserService) *UsersHandler {
	return &UsersHandler{
		userService: userService,
	}
}

type addFriendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Me godoc
// @Summary Current user
// @Produce json
// @Success 200
// @Router /user [get]
func (h *UsersHandler) Me(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		apperrors.ForbiddenResponse(c, "could not validate user authenticity")
		return
	}

	user, err := h.userService.Get(c, email)
	if err != nil {
		apperrors.NotFoundResponse(c, "user not found")
		return
	}

	responses.JSONData(c, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Partial profile update
// @Accept json
// @Produce json
// @Success 200
// @Router /profile/update [post]
func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		apperrors.ForbiddenResponse(c, "could not validate user authenticity")
		return
	}

	var update authtypes.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		apperrors.BadRequestResponse(c, "invalid input")
		return
	}

	user, err := h.userService.UpdateProfile(c, email, update)
	switch {
	case errors.Is(err, services.ErrInvalidUsername):
		apperrors.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrUserNotFound):
		apperrors.NotFoundResponse(c, "user not found")
	case err != nil:
		apperrors.InternalServerErrorResponse(c, "could not update profile")
	default:
		responses.JSONData(c, http.StatusOK, user)
	}
}

// Friends godoc
// @Summary List the caller's friends
// @Produce json
// @Success 200
// @Router /friends [get]
func (h *UsersHandler) Friends(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		apperrors.ForbiddenResponse(c, "could not validate user authenticity")
		return
	}

	friends, err := h.userService.Friends(c, email)
	if err != nil {
		apperrors.InternalServerErrorResponse(c, "could not list friends")
		return
	}

	responses.JSONData(c, http.StatusOK, gin.H{"friends": friends})
}

// AddFriend godoc
// @Summary Add a friend by email
// @Accept json
// @Produce json
// @Success 201
// @Router /friends [post]
func (h *UsersHandler) AddFriend(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		apperrors.ForbiddenResponse(c, "could not validate user authenticity")
		return
	}

	var req addFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequestResponse(c, "invalid input")
		return
	}

	err := h.userService.AddFriend(c, email, req.Email)
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		apperrors.NotFoundResponse(c, "no such user")
	case err != nil:
		apperrors.InternalServerErrorResponse(c, "could not add friend")
	default:
		responses.JSONData(c, http.StatusCreated, gin.H{"message": "added"})
	}
}
