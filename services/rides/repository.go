package rides

import (
	"context"
	"time"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// RideRepo stores rides and their rosters
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roadbuddy/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	// GetRide returns models.ErrRideNotFound for unknown ids
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	// UpdateRide loads the ride exclusively, lets fn mutate it and persists the
	// result. Nothing is written when fn returns an error.
	UpdateRide(ctx context.Context, rideID string, fn func(ride *models.Ride) error) (*models.Ride, error)
	// ExistsActive reports whether the owner already posted the same trip
	ExistsActive(ctx context.Context, ride *models.Ride) (bool, error)
	// ListAvailable returns open future rides userID neither owns nor joined
	ListAvailable(ctx context.Context, userID string, now time.Time) ([]*models.Ride, error)
	// ListUpcoming returns active future rides userID owns or joined
	ListUpcoming(ctx context.Context, userID string, now time.Time) ([]*models.Ride, error)
	// ListDeparted returns active rides whose departure is at or before now
	ListDeparted(ctx context.Context, now time.Time) ([]*models.Ride, error)
}
