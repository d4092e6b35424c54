package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/responses"
	"github.com/loopline/loopline-services-gateway/services"
)

type AuthHandler struct {
	authSvc services.AuthService
}

func NewAuthHandler(authSvc services.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// Exchange godoc
// @Summary Exchange an Auth0 subject for an internal session token
// @Accept json
// @Produce json
// @Success 200
// @Router /auth/exchange-auth0 [post]
func (h *AuthHandler) Exchange(c *gin.Context) {
	var req types.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequestResponse(c, "invalid input")
		return
	}

	resp, err := h.authSvc.ExchangeAuth0(c, req)
	if err != nil {
		apperrors.InternalServerErrorResponse(c, "could not exchange identity")
		return
	}

	responses.JSONData(c, http.StatusOK, resp)
}

// Status godoc
// @Summary Report whether the authToken cookie holds a valid session
// @Produce json
// @Success 200
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	token, err := c.Cookie("authToken")
	if err != nil || token == "" {
		responses.JSONData(c, http.StatusOK, gin.H{"authenticated": false})
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		responses.JSONData(c, http.StatusOK, gin.H{"authenticated": false})
		return
	}

	responses.JSONData(c, http.StatusOK, gin.H{
		"authenticated": true,
		"email":         claims.Subject,
	})
}
