package oauth

import (
	"context"

	"github.com/loopline/loopline-services-gateway/auth/types"
)

// Token is what the provider hands back for an authorization code. ExpiresIn
// bounds the session cookie lifetime.
type Token struct {
	AccessToken string
	IDToken     string
	TokenType   string
	ExpiresIn   int64
}

type Provider interface {
	AuthorizeURL(state string, connection string) string
	ExchangeCode(ctx context.Context, code string) (Token, error)
	FetchProfile(ctx context.Context, accessToken string) (types.Auth0Profile, error)
}
