package types

import "time"

type Event struct {
	ID          string    `json:"id" dynamodbav:"id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	Venue       string    `json:"venue" dynamodbav:"venue"`
	Lat         float64   `json:"lat" dynamodbav:"lat"`
	Lng         float64   `json:"lng" dynamodbav:"lng"`
	StartsAt    time.Time `json:"starts_at" dynamodbav:"starts_at"`
}

type DiscoverQuery struct {
	Lat      float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Lng      float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	RadiusKm float64 `form:"radius_km" binding:"omitempty,gt=0,lte=500"`
}

type DiscoveredEvent struct {
	Event
	DistanceKm float64 `json:"distance_km"`
}

type DiscoverResponse struct {
	Events []*DiscoveredEvent `json:"events"`
}

type Attendee struct {
	EventID  string    `json:"event_id" dynamodbav:"event_id"`
	Email    string    `json:"email" dynamodbav:"email"`
	JoinedAt time.Time `json:"joined_at" dynamodbav:"joined_at"`
}
