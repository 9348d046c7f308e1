package rides

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// RideUC is the ride lifecycle: posting, booking, cancelling and deleting
// rides with the money movements each step needs
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roadbuddy/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, req models.CreateRideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	ListAvailable(ctx context.Context, userID string) ([]*models.Ride, error)
	ListUpcoming(ctx context.Context, userID string) ([]*models.Ride, error)
	BookRide(ctx context.Context, rideID, passengerID, passengerName string) (*models.BookingConfirmation, error)
	CancelBooking(ctx context.Context, rideID, passengerID, passengerName string) (*models.Ride, error)
	DeleteRide(ctx context.Context, rideID, ownerID, ownerName string) (*models.DeletionReceipt, error)
	GetChatRoom(ctx context.Context, rideID, userID string) (*models.ChatRoom, error)
	ListChatRooms(ctx context.Context, userID string) ([]*models.ChatRoom, error)
	// SweepDeparted deletes departed rides and returns how many it removed
	SweepDeparted(ctx context.Context) (int, error)
}
