package rides

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// NotificationGW hands lifecycle messages to the notification pipeline.
// Publish must never block or fail the caller.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/roadbuddy/services/rides NotificationGW,ChatGW,VehicleGW
type NotificationGW interface {
	Publish(recipientID, rideID, message string)
}

// ChatGW manages the chat room attached to a ride
type ChatGW interface {
	EnsureRoom(ctx context.Context, ride *models.Ride) error
	Join(ctx context.Context, rideID, userID string) error
	Leave(ctx context.Context, rideID, userID string) error
	Retire(ctx context.Context, rideID string) error
	GetRoom(ctx context.Context, rideID, userID string) (*models.ChatRoom, error)
	ListRooms(ctx context.Context, userID string) ([]*models.ChatRoom, error)
}

// VehicleGW looks up the car a ride is posted with when the request names none
type VehicleGW interface {
	// PrimaryVehicle returns models.ErrVehicleNotFound when the owner has no cars
	PrimaryVehicle(ctx context.Context, ownerID string) (*models.OwnedVehicle, error)
}
