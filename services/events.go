package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/loopline/loopline-services-gateway/events/types"
	"github.com/loopline/loopline-services-gateway/logging"
	"github.com/loopline/loopline-services-gateway/services/caching"
	"github.com/loopline/loopline-services-gateway/store"
)

const (
	defaultRadiusKm  = 25.0
	discoverCacheTTL = 30 * time.Second
	earthRadiusKm    = 6371.0
)

type EventsService interface {
	Discover(ctx context.Context, q types.DiscoverQuery) (*types.DiscoverResponse, error)
	Join(ctx context.Context, eventID, email string) error
}

type EventsServiceImpl struct {
	eventStore store.EventStore
	cache      caching.CachingService
}

func NewEventsService(eventStore store.EventStore, cache caching.CachingService) *EventsServiceImpl {
	return &EventsServiceImpl{
		eventStore: eventStore,
		cache:      cache,
	}
}

func (s *EventsServiceImpl) Discover(ctx context.Context, q types.DiscoverQuery) (*types.DiscoverResponse, error) {
	radius := q.RadiusKm
	if radius == 0 {
		radius = defaultRadiusKm
	}

	// Coordinates are rounded to ~100m so nearby viewers share a cache entry.
	cacheKey := fmt.Sprintf("events:discover:%.3f:%.3f:%.0f", q.Lat, q.Lng, radius)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var resp types.DiscoverResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	}

	events, err := s.eventStore.List(ctx)
	if err != nil {
		return nil, err
	}

	discovered := make([]*types.DiscoveredEvent, 0)
	for _, event := range events {
		dist := haversineKm(q.Lat, q.Lng, event.Lat, event.Lng)
		if dist <= radius {
			discovered = append(discovered, &types.DiscoveredEvent{
				Event:      *event,
				DistanceKm: math.Round(dist*10) / 10,
			})
		}
	}

	resp := &types.DiscoverResponse{Events: discovered}

	if raw, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(raw), discoverCacheTTL); err != nil {
			logging.FromContext(ctx).Warn("discover cache write failed", "error", err)
		}
	}

	return resp, nil
}

func (s *EventsServiceImpl) Join(ctx context.Context, eventID, email string) error {
	if _, err := s.eventStore.GetByID(ctx, eventID); err != nil {
		return err
	}

	return s.eventStore.Join(ctx, types.Attendee{
		EventID:  eventID,
		Email:    email,
		JoinedAt: time.Now().UTC(),
	})
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
