package chat

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// ChatRepo stores chat rooms and their participants
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roadbuddy/services/chat ChatRepo
type ChatRepo interface {
	// CreateRoom stores the room unless one exists for the ride; it reports
	// whether a new room was written
	CreateRoom(ctx context.Context, room *models.ChatRoom) (bool, error)
	GetRoom(ctx context.Context, rideID string) (*models.ChatRoom, error)
	RoomExists(ctx context.Context, rideID string) (bool, error)
	DeleteRoom(ctx context.Context, rideID string) error
	AddParticipant(ctx context.Context, rideID, userID string) error
	RemoveParticipant(ctx context.Context, rideID, userID string) error
	IsParticipant(ctx context.Context, rideID, userID string) (bool, error)
	// ListRoomIDs returns the rides whose chat userID takes part in
	ListRoomIDs(ctx context.Context, userID string) ([]string, error)
}
