package models

import "time"

// ChatRoom is keyed one-to-one with a ride. Messages live in the external
// chat store; only the room and its participants are tracked here.
type ChatRoom struct {
	RideID        string    `json:"ride_id"`
	OwnerID       string    `json:"owner_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	Date          string    `json:"date"`
	DepartureTime string    `json:"departure_time"`
	Participants  []string  `json:"participants"`
	CreatedAt     time.Time `json:"created_at"`
}

// Coordinate is a decoded route point
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Geohash   string  `json:"geohash,omitempty"`
}

// DecodeRouteRequest carries an encoded polyline
type DecodeRouteRequest struct {
	Polyline string `json:"polyline"`
}

// DecodeRouteResponse is the decoded route
type DecodeRouteResponse struct {
	Points     []Coordinate `json:"points"`
	Count      int          `json:"count"`
	DistanceKm float64      `json:"distance_km"`
}
