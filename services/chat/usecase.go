package chat

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// ChatUC manages the chat room that lives alongside each ride
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roadbuddy/services/chat ChatUC
type ChatUC interface {
	EnsureRoom(ctx context.Context, ride *models.Ride) error
	Join(ctx context.Context, rideID, userID string) error
	Leave(ctx context.Context, rideID, userID string) error
	Retire(ctx context.Context, rideID string) error
	Exists(ctx context.Context, rideID string) (bool, error)
	GetRoom(ctx context.Context, rideID, userID string) (*models.ChatRoom, error)
	ListRooms(ctx context.Context, userID string) ([]*models.ChatRoom, error)
}
