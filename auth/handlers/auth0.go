package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/auth"
	"github.com/loopline/loopline-services-gateway/auth/oauth"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/jwtauth"
	"github.com/loopline/loopline-services-gateway/logging"
	"github.com/loopline/loopline-services-gateway/responses"
	"github.com/loopline/loopline-services-gateway/services"
)

const (
	statePrefix = "oauth:state:"

	// Fallback session lifetime when the provider omits expires_in.
	defaultSessionTTL = 24 * time.Hour

	bootstrapDelayMs  = 1500
	errorRedirectSecs = 5
)

type Auth0Handler struct {
	env         string
	frontendURL string
	provider    oauth.Provider
	authSvc     services.AuthService
	exchanger   services.TokenExchanger
	adminLogger services.AdminLogger
}

func NewAuth0Handler(env, frontendURL string, provider oauth.Provider, authSvc services.AuthService, exchanger services.TokenExchanger, adminLogger services.AdminLogger) *Auth0Handler {
	return &Auth0Handler{
		env:         env,
		frontendURL: frontendURL,
		provider:    provider,
		authSvc:     authSvc,
		exchanger:   exchanger,
		adminLogger: adminLogger,
	}
}

// Login godoc
// @Summary Start an Auth0 sign-in
// @Param returnTo query string false "Path to return to after sign-in"
// @Param connection query string false "Identity-provider hint"
// @Success 302
// @Router /auth/login [get]
func (h *Auth0Handler) Login(c *gin.Context) {
	st := types.AuthState{
		ReturnTo:   c.DefaultQuery("returnTo", "/"),
		Connection: c.Query("connection"),
	}
	state := st.Encode()

	// Audit trail only. A lost Redis write must not block sign-in: the
	// callback accepts any state it can decode.
	if err := h.authSvc.SaveState(c, statePrefix+state); err != nil {
		logging.FromContext(c.Request.Context()).Warn("could not record sign-in state", "error", err)
	}

	responses.Redirect(c, h.provider.AuthorizeURL(state, st.Connection))
}

// Callback godoc
// @Summary Auth0 OAuth callback
// @Description Exchanges the authorization code, fetches the profile, runs
// @Description the best-effort side channels and emits the session cookies.
// @Param code query string true "Authorization code"
// @Param state query string false "Base64 JSON state"
// @Success 302
// @Router /auth/callback [get]
func (h *Auth0Handler) Callback(c *gin.Context) {
	log := logging.FromContext(c.Request.Context())

	code := c.Query("code")
	if code == "" {
		responses.Redirect(c, h.signinURL(auth.CodeMissing))
		return
	}

	st := types.DecodeState(c.Query("state"))

	if seen, err := h.authSvc.ValidateState(c, statePrefix+c.Query("state")); err != nil || !seen {
		log.Warn("sign-in state not on record", "error", err)
	}

	token, err := h.provider.ExchangeCode(c, code)
	if err != nil {
		log.Warn("token exchange failed", "error", err)
		responses.Redirect(c, h.signinURL(auth.CodeTokenExchangeFailed))
		return
	}

	profile, err := h.provider.FetchProfile(c, token.AccessToken)
	if err != nil {
		log.Warn("userinfo fetch failed", "error", err)
		responses.Redirect(c, h.signinURL(auth.CodeUserInfoFailed))
		return
	}

	// Best-effort from here until the redirect decision: failures are
	// logged and swallowed, never surfaced.
	if err := h.adminLogger.LogAuthUser(c, profile); err != nil {
		log.Warn("admin auth log failed", "error", err)
	}

	profile.Identities = types.DeriveIdentities(profile.Sub)

	linking := st.Connection != "" && st.ReturnTo == "/connected-accounts"
	if linking {
		profile.ConnectedPlatform = types.PlatformName(st.Connection)
		profile.ConnectedUsername = types.EmailLocalPart(profile.Email)
	}

	internalToken := ""
	exchangeReq := types.ExchangeRequest{
		Sub:      profile.Sub,
		Email:    profile.Email,
		Name:     profile.Name,
		Username: types.EmailLocalPart(profile.Email),
	}
	if resp, err := h.exchanger.Exchange(c, exchangeReq); err != nil {
		log.Warn("internal token exchange failed, continuing with provider-only session", "error", err)
	} else {
		internalToken = resp.Token
		profile.Username = resp.User.Username
		profile.Phone = resp.User.Phone
		if resp.User.Name != "" {
			profile.Name = resp.User.Name
		}
	}

	dest := h.redirectDestination(st, profile, linking)

	if err := h.setSessionCookies(c, profile, token, internalToken); err != nil {
		log.Error("could not emit session cookies", "error", err)
		h.renderErrorPage(c, auth.ClassifyCallback(err))
		return
	}

	if internalToken != "" {
		h.renderBootstrapPage(c, internalToken, profile, dest)
		return
	}

	responses.Redirect(c, dest)
}

func (h *Auth0Handler) redirectDestination(st types.AuthState, profile types.Auth0Profile, linking bool) string {
	switch {
	case linking:
		return h.frontendURL + "/connected-accounts"
	case st.ReturnTo != "" && st.ReturnTo != "/":
		return h.frontendURL + st.ReturnTo
	case profile.HasCompleteProfile():
		return h.frontendURL + "/"
	default:
		return h.frontendURL + "/onboarding"
	}
}

func (h *Auth0Handler) setSessionCookies(c *gin.Context, profile types.Auth0Profile, token oauth.Token, internalToken string) error {
	ttl := time.Duration(token.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	session := types.Session{
		User:        profile,
		AccessToken: token.AccessToken,
		ExpiresAt:   time.Now().Add(ttl).Unix(),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return auth.NewCallbackError(auth.CodeTokenParseError, err)
	}
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return auth.NewCallbackError(auth.CodeTokenParseError, err)
	}

	secure := h.env == "PROD"

	c.SetCookie("appSession", string(sessionJSON), int(ttl.Seconds()), jwtauth.CookiePath, "", secure, true)
	c.SetCookie("auth0UserData", string(profileJSON), int(ttl.Seconds()), jwtauth.CookiePath, "", secure, false)

	// The internal session outlives the provider token: 7 days regardless
	// of expires_in.
	if internalToken != "" {
		c.SetCookie("authToken", internalToken, int(jwtauth.AccessTokenDuration.Seconds()), jwtauth.CookiePath, "", secure, true)
	}

	return nil
}

func (h *Auth0Handler) renderBootstrapPage(c *gin.Context, internalToken string, profile types.Auth0Profile, dest string) {
	userJSON, err := json.Marshal(profile)
	if err != nil {
		h.renderErrorPage(c, auth.CodeTokenParseError)
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	err = bootstrapPageTemplate.Execute(c.Writer, bootstrapPageData{
		Token:      internalToken,
		UserJSON:   string(userJSON),
		RedirectTo: dest,
		DelayMs:    bootstrapDelayMs,
	})
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("bootstrap page render failed", "error", err)
	}
}

func (h *Auth0Handler) renderErrorPage(c *gin.Context, code auth.CallbackCode) {
	c.Status(http.StatusInternalServerError)
	c.Header("Content-Type", "text/html; charset=utf-8")
	err := errorPageTemplate.Execute(c.Writer, errorPageData{
		Code:         string(code),
		SigninURL:    h.frontendURL + "/signin",
		DelaySeconds: errorRedirectSecs,
	})
	if err != nil {
		logging.FromContext(c.Request.Context()).Error("error page render failed", "error", err)
	}
}

func (h *Auth0Handler) signinURL(code auth.CallbackCode) string {
	return h.frontendURL + "/signin?error=" + string(code)
}
