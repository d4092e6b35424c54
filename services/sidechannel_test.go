package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/services"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeBreaker() *gobreaker.CircuitBreaker[*types.ExchangeResponse] {
	return gobreaker.NewCircuitBreaker[*types.ExchangeResponse](gobreaker.Settings{
		Name:     "test:exchange",
		Interval: 30 * time.Second,
		Timeout:  10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

func TestHTTPTokenExchanger(t *testing.T) {
	var got types.ExchangeRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(types.ExchangeResponse{
			Token: "internal-jwt",
			User:  types.User{Email: got.Email, Username: "ada"},
		})
	}))
	defer ts.Close()

	exchanger := services.NewHTTPTokenExchanger(ts.URL, newExchangeBreaker())

	resp, err := exchanger.Exchange(context.Background(), types.ExchangeRequest{
		Sub:   "google-oauth2|12345",
		Email: "ada@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "internal-jwt", resp.Token)
	assert.Equal(t, "google-oauth2|12345", got.Sub)
}

func TestHTTPTokenExchanger_BreakerOpensAfterFailures(t *testing.T) {
	var serverCalls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverCalls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	exchanger := services.NewHTTPTokenExchanger(ts.URL, newExchangeBreaker())

	for i := 0; i < 5; i++ {
		_, err := exchanger.Exchange(context.Background(), types.ExchangeRequest{Sub: "s", Email: "a@b.com"})
		assert.Error(t, err)
	}

	// After three consecutive failures the breaker fails fast without
	// touching the endpoint.
	assert.Equal(t, 3, serverCalls)
}

func TestHTTPAdminLogger(t *testing.T) {
	var got types.Auth0Profile
	var action string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		action = r.URL.Query().Get("action")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	logger := services.NewHTTPAdminLogger(ts.URL)

	err := logger.LogAuthUser(context.Background(), types.Auth0Profile{Sub: "linkedin|abc", Email: "a@b.com"})
	require.NoError(t, err)

	assert.Equal(t, "log-auth0-user", action)
	assert.Equal(t, "linkedin|abc", got.Sub)
}
