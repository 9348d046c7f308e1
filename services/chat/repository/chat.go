package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/roadbuddy/internal/pkg/constants"
	"github.com/piresc/roadbuddy/internal/pkg/database"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/chat"
)

type chatRepo struct {
	redisClient *database.RedisClient
}

// NewChatRepository creates a chat room store over Redis
func NewChatRepository(redisClient *database.RedisClient) chat.ChatRepo {
	return &chatRepo{
		redisClient: redisClient,
	}
}

func roomKey(rideID string) string {
	return fmt.Sprintf(constants.KeyChatRoom, rideID)
}

func participantsKey(rideID string) string {
	return fmt.Sprintf(constants.KeyChatParticipants, rideID)
}

func userChatsKey(userID string) string {
	return fmt.Sprintf(constants.KeyUserChats, userID)
}

func (r *chatRepo) CreateRoom(ctx context.Context, room *models.ChatRoom) (bool, error) {
	client := r.redisClient.GetClient()
	key := roomKey(room.RideID)

	// the ride id field doubles as the existence marker
	created, err := client.HSetNX(ctx, key, constants.FieldRideID, room.RideID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to create chat room: %w", err)
	}
	if !created {
		return false, nil
	}

	createdAt := room.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	pipe := client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		constants.FieldOwnerID:       room.OwnerID,
		constants.FieldOrigin:        room.Origin,
		constants.FieldDestination:   room.Destination,
		constants.FieldDate:          room.Date,
		constants.FieldDepartureTime: room.DepartureTime,
		constants.FieldCreatedAt:     strconv.FormatInt(createdAt.Unix(), 10),
	})
	if len(room.Participants) > 0 {
		members := make([]interface{}, 0, len(room.Participants))
		for _, p := range room.Participants {
			members = append(members, p)
		}
		pipe.SAdd(ctx, participantsKey(room.RideID), members...)
		for _, p := range room.Participants {
			pipe.SAdd(ctx, userChatsKey(p), room.RideID)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to store chat room: %w", err)
	}
	return true, nil
}

func (r *chatRepo) GetRoom(ctx context.Context, rideID string) (*models.ChatRoom, error) {
	client := r.redisClient.GetClient()

	values, err := client.HGetAll(ctx, roomKey(rideID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat room: %w", err)
	}
	if len(values) == 0 || values[constants.FieldRideID] == "" {
		return nil, fmt.Errorf("%w: %s", models.ErrChatRoomNotFound, rideID)
	}

	members, err := client.SMembers(ctx, participantsKey(rideID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat participants: %w", err)
	}

	room := &models.ChatRoom{
		RideID:        values[constants.FieldRideID],
		OwnerID:       values[constants.FieldOwnerID],
		Origin:        values[constants.FieldOrigin],
		Destination:   values[constants.FieldDestination],
		Date:          values[constants.FieldDate],
		DepartureTime: values[constants.FieldDepartureTime],
		Participants:  orderParticipants(values[constants.FieldOwnerID], members),
	}
	if ts, err := strconv.ParseInt(values[constants.FieldCreatedAt], 10, 64); err == nil {
		room.CreatedAt = time.Unix(ts, 0).UTC()
	}
	return room, nil
}

// orderParticipants puts the owner first and sorts the rest
func orderParticipants(ownerID string, members []string) []string {
	out := make([]string, 0, len(members))
	rest := make([]string, 0, len(members))
	for _, m := range members {
		if m == ownerID {
			out = append(out, m)
			continue
		}
		rest = append(rest, m)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func (r *chatRepo) RoomExists(ctx context.Context, rideID string) (bool, error) {
	n, err := r.redisClient.GetClient().Exists(ctx, roomKey(rideID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check chat room: %w", err)
	}
	return n > 0, nil
}

func (r *chatRepo) DeleteRoom(ctx context.Context, rideID string) error {
	client := r.redisClient.GetClient()

	members, err := client.SMembers(ctx, participantsKey(rideID)).Result()
	if err != nil {
		return fmt.Errorf("failed to get chat participants: %w", err)
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, roomKey(rideID), participantsKey(rideID))
	for _, m := range members {
		pipe.SRem(ctx, userChatsKey(m), rideID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete chat room: %w", err)
	}
	return nil
}

func (r *chatRepo) AddParticipant(ctx context.Context, rideID, userID string) error {
	pipe := r.redisClient.GetClient().TxPipeline()
	pipe.SAdd(ctx, participantsKey(rideID), userID)
	pipe.SAdd(ctx, userChatsKey(userID), rideID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add chat participant: %w", err)
	}
	return nil
}

func (r *chatRepo) RemoveParticipant(ctx context.Context, rideID, userID string) error {
	pipe := r.redisClient.GetClient().TxPipeline()
	pipe.SRem(ctx, participantsKey(rideID), userID)
	pipe.SRem(ctx, userChatsKey(userID), rideID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove chat participant: %w", err)
	}
	return nil
}

func (r *chatRepo) IsParticipant(ctx context.Context, rideID, userID string) (bool, error) {
	ok, err := r.redisClient.GetClient().SIsMember(ctx, participantsKey(rideID), userID).Result()
	if err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to check chat participant: %w", err)
	}
	return ok, nil
}

func (r *chatRepo) ListRoomIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.redisClient.GetClient().SMembers(ctx, userChatsKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to list chat rooms: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}
