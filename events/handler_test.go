package events_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/loopline/loopline-services-gateway/apperrors"
	authtypes "github.com/loopline/loopline-services-gateway/auth/types"
	"github.com/loopline/loopline-services-gateway/events"
	"github.com/loopline/loopline-services-gateway/events/types"
	"github.com/loopline/loopline-services-gateway/routers"
	"github.com/loopline/loopline-services-gateway/services"
	"github.com/loopline/loopline-services-gateway/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "test-secret"

type stubEventsService struct {
	resp    *types.DiscoverResponse
	joined  []string
	joinErr error
}

func (s *stubEventsService) Discover(ctx context.Context, q types.DiscoverQuery) (*types.DiscoverResponse, error) {
	return s.resp, nil
}

func (s *stubEventsService) Join(ctx context.Context, eventID, email string) error {
	if s.joinErr != nil {
		return s.joinErr
	}
	s.joined = append(s.joined, eventID)
	return nil
}

func newEventsRouter(svc services.EventsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routers.RegisterEventsRoutes(events.NewEventsHandler(svc), jwtSecret, r)
	return r
}

func authCookie(t *testing.T) *http.Cookie {
	t.Helper()
	svc := services.NewAuthServiceImpl(nil, nil, jwtSecret)
	token, err := svc.GenerateToken(&authtypes.User{Email: "ada@example.com"})
	require.NoError(t, err)
	return &http.Cookie{Name: "authToken", Value: token}
}

func TestDiscover(t *testing.T) {
	svc := &stubEventsService{resp: &types.DiscoverResponse{Events: []*types.DiscoveredEvent{
		{Event: types.Event{ID: "e1", Title: "Coffee meetup"}, DistanceKm: 0.4},
	}}}
	r := newEventsRouter(svc)

	w := test.PerformRequest(r, t, "GET", "/api/events/discover?lat=37.78&lng=-122.40", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Coffee meetup")
}

func TestDiscover_RejectsBadCoordinates(t *testing.T) {
	r := newEventsRouter(&stubEventsService{})

	for _, q := range []string{"", "lat=91&lng=0", "lat=37.78&lng=181", "lat=37.78"} {
		w := test.PerformRequest(r, t, "GET", "/api/events/discover?"+q, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", q)
	}
}

func TestJoin_RequiresAuth(t *testing.T) {
	r := newEventsRouter(&stubEventsService{})

	w := test.PerformRequest(r, t, "POST", "/api/events/e1/join", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJoinEvent(t *testing.T) {
	svc := &stubEventsService{}
	r := newEventsRouter(svc)

	w := test.PerformRequest(r, t, "POST", "/api/events/e1/join", nil, nil, authCookie(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"e1"}, svc.joined)
}

func TestJoin_UnknownEvent(t *testing.T) {
	r := newEventsRouter(&stubEventsService{joinErr: apperrors.ErrEventNotFound})

	w := test.PerformRequest(r, t, "POST", "/api/events/missing/join", nil, nil, authCookie(t))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJoin_AlreadyJoined(t *testing.T) {
	r := newEventsRouter(&stubEventsService{joinErr: apperrors.ErrAlreadyJoined})

	w := test.PerformRequest(r, t, "POST", "/api/events/e1/join", nil, nil, authCookie(t))

	assert.Equal(t, http.StatusConflict, w.Code)
}
