package oauth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/loopline/loopline-services-gateway/auth"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/config"
)

type auth0Provider struct {
	cfg    *config.Auth0Config
	client *auth.Client
}

func NewAuth0Provider(cfg *config.Auth0Config) *auth0Provider {
	return &auth0Provider{
		cfg:    cfg,
		client: auth.NewClient(10 * time.Second),
	}
}

func (p *auth0Provider) AuthorizeURL(state string, connection string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", p.cfg.ClientID)
	q.Set("redirect_uri", p.cfg.RedirectURI)
	q.Set("scope", "openid profile email")
	q.Set("state", state)
	if connection != "" {
		q.Set("connection", connection)
	}
	return p.cfg.IssuerBaseURL + "/authorize?" + q.Encode()
}

func (p *auth0Provider) ExchangeCode(ctx context.Context, code string) (Token, error) {
	data := url.Values{}
	data.Set("grant_type", "authorization_code")
	data.Set("client_id", p.cfg.ClientID)
	data.Set("client_secret", p.cfg.ClientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", p.cfg.RedirectURI)

	var resp struct {
		AccessToken string `json:"access_token"`
		IDToken     string `json:"id_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
		Error       string `json:"error"`
		ErrorDesc   string `json:"error_description"`
	}

	if err := p.client.PostFormJSON(ctx, p.cfg.IssuerBaseURL+"/oauth/token", data, &resp); err != nil {
		return Token{}, err
	}
	if resp.Error != "" {
		return Token{}, fmt.Errorf("auth0 error: %s - %s", resp.Error, resp.ErrorDesc)
	}
	if resp.AccessToken == "" {
		return Token{}, fmt.Errorf("empty access token")
	}

	return Token{
		AccessToken: resp.AccessToken,
		IDToken:     resp.IDToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   resp.ExpiresIn,
	}, nil
}

func (p *auth0Provider) FetchProfile(ctx context.Context, accessToken string) (types.Auth0Profile, error) {
	var profile types.Auth0Profile
	if err := p.client.GetJSONWithToken(ctx, p.cfg.IssuerBaseURL+"/userinfo", accessToken, &profile); err != nil {
		return types.Auth0Profile{}, err
	}

	if profile.Sub == "" {
		return types.Auth0Profile{}, fmt.Errorf("auth0 response missing subject")
	}

	return profile, nil
}
