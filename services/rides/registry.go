package rides

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// RideRegistry owns rides and their rosters. Roster changes on one ride are
// serialised; different rides never wait on each other.
// go:generate mockgen -destination=mocks/mock_registry.go -package=mocks github.com/piresc/roadbuddy/services/rides RideRegistry
type RideRegistry interface {
	CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	ReserveSeat(ctx context.Context, rideID, passengerID string) (*models.ReservationToken, error)
	// ReleaseSeat is a no-op when the passenger holds no seat
	ReleaseSeat(ctx context.Context, rideID, passengerID string) (*models.Ride, error)
	CancelRide(ctx context.Context, rideID, passengerID string) (*models.Ride, error)
	// FreezeRide moves an active ride to Cancelled so its roster stops
	// changing. It fails with models.ErrRosterChanged unless the roster still
	// holds exactly the expected passengers.
	FreezeRide(ctx context.Context, rideID, ownerID string, expected []string) (*models.Ride, error)
	DeleteRide(ctx context.Context, rideID, ownerID string) (*models.Ride, error)
	// ExpireRide deletes a departed active ride
	ExpireRide(ctx context.Context, rideID string) (*models.Ride, error)
	ListAvailable(ctx context.Context, userID string) ([]*models.Ride, error)
	ListUpcoming(ctx context.Context, userID string) ([]*models.Ride, error)
	ListDeparted(ctx context.Context) ([]*models.Ride, error)
}
