package services

import (
	"context"
	"net/url"
	"time"

	"github.com/loopline/loopline-services-gateway/auth"
	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/sony/gobreaker/v2"
)

// TokenExchanger and AdminLogger are the callback's two best-effort side
// channels. Both are reached over HTTP; neither failure may ever reach the
// user.
type TokenExchanger interface {
	Exchange(ctx context.Context, req types.ExchangeRequest) (*types.ExchangeResponse, error)
}

type AdminLogger interface {
	LogAuthUser(ctx context.Context, profile types.Auth0Profile) error
}

type HTTPTokenExchanger struct {
	client      *auth.Client
	exchangeURL string
	breaker     *gobreaker.CircuitBreaker[*types.ExchangeResponse]
}

func NewHTTPTokenExchanger(exchangeURL string, breaker *gobreaker.CircuitBreaker[*types.ExchangeResponse]) *HTTPTokenExchanger {
	return &HTTPTokenExchanger{
		client:      auth.NewClient(5 * time.Second),
		exchangeURL: exchangeURL,
		breaker:     breaker,
	}
}

func (e *HTTPTokenExchanger) Exchange(ctx context.Context, req types.ExchangeRequest) (*types.ExchangeResponse, error) {
	return e.breaker.Execute(func() (*types.ExchangeResponse, error) {
		callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var resp types.ExchangeResponse
		if err := e.client.PostJSON(callCtx, e.exchangeURL, req, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	})
}

type HTTPAdminLogger struct {
	client      *auth.Client
	adminLogURL string
}

func NewHTTPAdminLogger(adminLogURL string) *HTTPAdminLogger {
	return &HTTPAdminLogger{
		client:      auth.NewClient(5 * time.Second),
		adminLogURL: adminLogURL,
	}
}

func (l *HTTPAdminLogger) LogAuthUser(ctx context.Context, profile types.Auth0Profile) error {
	callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	endpoint := l.adminLogURL + "?" + url.Values{"action": {"log-auth0-user"}}.Encode()
	return l.client.PostJSON(callCtx, endpoint, profile, nil)
}
