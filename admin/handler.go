package admin

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/logging"
	"github.com/loopline/loopline-services-gateway/responses"
	"github.com/loopline/loopline-services-gateway/store"
)

type AdminHandler struct {
	authEvents store.AuthEventStore
}

func NewAdminHandler(authEvents store.AuthEventStore) *AdminHandler {
	return &AdminHandler{
		authEvents: authEvents,
	}
}

// LogUsers godoc
// @Summary Record an authenticated identity for the admin audit trail
// @Param action query string true "Must be log-auth0-user"
// @Accept json
// @Success 202
// @Router /admin/users [post]
func (h *AdminHandler) LogUsers(c *gin.Context) {
	if c.Query("action") != "log-auth0-user" {
		apperrors.BadRequestResponse(c, "unknown action")
		return
	}

	var profile types.Auth0Profile
	if err := c.ShouldBindJSON(&profile); err != nil || profile.Sub == "" {
		apperrors.BadRequestResponse(c, "invalid input")
		return
	}

	provider, _, _ := strings.Cut(profile.Sub, "|")

	event := store.AuthEvent{
		ID:        uuid.NewString(),
		Sub:       profile.Sub,
		Email:     profile.Email,
		Provider:  provider,
		LoggedAt:  time.Now().UTC(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	if err := h.authEvents.Append(c, event); err != nil {
		logging.FromContext(c.Request.Context()).Error("could not append auth event", "error", err)
		apperrors.InternalServerErrorResponse(c, "could not record auth event")
		return
	}

	responses.JSONData(c, http.StatusAccepted, gin.H{"status": "logged"})
}
