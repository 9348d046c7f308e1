package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/chat"
)

type chatUC struct {
	repo chat.ChatRepo
	now  func() time.Time
}

// NewChatUC creates the chat room lifecycle over repo
func NewChatUC(repo chat.ChatRepo) (chat.ChatUC, error) {
	if repo == nil {
		return nil, errors.New("chat repository is required")
	}
	return &chatUC{repo: repo, now: time.Now}, nil
}

// EnsureRoom creates the ride's room with the owner as first participant.
// Calling it again for the same ride changes nothing.
func (uc *chatUC) EnsureRoom(ctx context.Context, ride *models.Ride) error {
	if ride == nil {
		return fmt.Errorf("%w: ride is required", models.ErrValidation)
	}

	room := &models.ChatRoom{
		RideID:        ride.ID.String(),
		OwnerID:       ride.OwnerID,
		Origin:        ride.Origin,
		Destination:   ride.Destination,
		Date:          ride.Date,
		DepartureTime: ride.DepartureTime,
		Participants:  []string{ride.OwnerID},
		CreatedAt:     uc.now(),
	}

	created, err := uc.repo.CreateRoom(ctx, room)
	if err != nil {
		return err
	}
	if created {
		logger.Debug("Chat room created", logger.RideID(room.RideID))
	}
	return nil
}

func (uc *chatUC) Join(ctx context.Context, rideID, userID string) error {
	exists, err := uc.repo.RoomExists(ctx, rideID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", models.ErrChatRoomNotFound, rideID)
	}
	return uc.repo.AddParticipant(ctx, rideID, userID)
}

// Leave is a no-op for rooms that are gone
func (uc *chatUC) Leave(ctx context.Context, rideID, userID string) error {
	return uc.repo.RemoveParticipant(ctx, rideID, userID)
}

func (uc *chatUC) Retire(ctx context.Context, rideID string) error {
	if err := uc.repo.DeleteRoom(ctx, rideID); err != nil {
		return err
	}
	logger.Debug("Chat room retired", logger.RideID(rideID))
	return nil
}

func (uc *chatUC) Exists(ctx context.Context, rideID string) (bool, error) {
	return uc.repo.RoomExists(ctx, rideID)
}

// GetRoom returns the room to one of its participants
func (uc *chatUC) GetRoom(ctx context.Context, rideID, userID string) (*models.ChatRoom, error) {
	room, err := uc.repo.GetRoom(ctx, rideID)
	if err != nil {
		return nil, err
	}

	member, err := uc.repo.IsParticipant(ctx, rideID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: you are not part of this ride's chat", models.ErrAuthorization)
	}
	return room, nil
}

// ListRooms returns the rooms userID takes part in, newest first. Entries
// left behind by a room that no longer exists are dropped.
func (uc *chatUC) ListRooms(ctx context.Context, userID string) ([]*models.ChatRoom, error) {
	ids, err := uc.repo.ListRoomIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	rooms := make([]*models.ChatRoom, 0, len(ids))
	for _, rideID := range ids {
		room, err := uc.repo.GetRoom(ctx, rideID)
		if errors.Is(err, models.ErrChatRoomNotFound) {
			if err := uc.repo.RemoveParticipant(ctx, rideID, userID); err != nil {
				logger.Warn("Failed to drop stale chat entry", logger.RideID(rideID), logger.String("user_id", userID), logger.Err(err))
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})
	return rooms, nil
}
