package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/loopline/loopline-services-gateway/events/types"
	"github.com/loopline/loopline-services-gateway/services"
	"github.com/loopline/loopline-services-gateway/services/caching"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventStore struct {
	events    []*types.Event
	listCalls int
	joined    []types.Attendee
}

func (s *stubEventStore) List(ctx context.Context) ([]*types.Event, error) {
	s.listCalls++
	return s.events, nil
}

func (s *stubEventStore) GetByID(ctx context.Context, id string) (*types.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, assert.AnError
}

func (s *stubEventStore) Join(ctx context.Context, attendee types.Attendee) error {
	s.joined = append(s.joined, attendee)
	return nil
}

// Around Union Square, distances are a few hundred meters; Oakland is ~17km
// away and Sacramento ~120km.
var testEvents = []*types.Event{
	{ID: "near", Title: "Coffee meetup", Lat: 37.7880, Lng: -122.4075, StartsAt: time.Now()},
	{ID: "oakland", Title: "Lake run", Lat: 37.8044, Lng: -122.2712, StartsAt: time.Now()},
	{ID: "sacramento", Title: "Capitol tour", Lat: 38.5816, Lng: -121.4944, StartsAt: time.Now()},
}

func TestDiscover_RadiusFilter(t *testing.T) {
	store := &stubEventStore{events: testEvents}
	svc := services.NewEventsService(store, caching.NewNullCachingService())

	resp, err := svc.Discover(context.Background(), types.DiscoverQuery{
		Lat: 37.7879, Lng: -122.4074, RadiusKm: 5,
	})
	require.NoError(t, err)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, "near", resp.Events[0].ID)
	assert.Less(t, resp.Events[0].DistanceKm, 1.0)
}

func TestDiscover_DefaultRadius(t *testing.T) {
	store := &stubEventStore{events: testEvents}
	svc := services.NewEventsService(store, caching.NewNullCachingService())

	resp, err := svc.Discover(context.Background(), types.DiscoverQuery{
		Lat: 37.7879, Lng: -122.4074,
	})
	require.NoError(t, err)

	// 25km default: SF and Oakland, not Sacramento.
	require.Len(t, resp.Events, 2)
}

func TestDiscover_CachesResponse(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := caching.NewRedisCachingService(rdb)

	store := &stubEventStore{events: testEvents}
	svc := services.NewEventsService(store, cache)

	q := types.DiscoverQuery{Lat: 37.7879, Lng: -122.4074, RadiusKm: 5}

	first, err := svc.Discover(context.Background(), q)
	require.NoError(t, err)

	second, err := svc.Discover(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.listCalls, "second discover must be served from cache")
}

func TestJoin(t *testing.T) {
	store := &stubEventStore{events: testEvents}
	svc := services.NewEventsService(store, caching.NewNullCachingService())

	err := svc.Join(context.Background(), "near", "a@b.com")
	require.NoError(t, err)

	require.Len(t, store.joined, 1)
	assert.Equal(t, "near", store.joined[0].EventID)
	assert.Equal(t, "a@b.com", store.joined[0].Email)
}

func TestJoin_UnknownEvent(t *testing.T) {
	store := &stubEventStore{events: testEvents}
	svc := services.NewEventsService(store, caching.NewNullCachingService())

	err := svc.Join(context.Background(), "nope", "a@b.com")
	assert.Error(t, err)
	assert.Empty(t, store.joined)
}
