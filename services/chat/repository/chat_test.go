package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/roadbuddy/internal/pkg/constants"
	"github.com/piresc/roadbuddy/internal/pkg/database"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func testRoom() *models.ChatRoom {
	return &models.ChatRoom{
		RideID:        "ride-1",
		OwnerID:       "owner-1",
		Origin:        "San Jose",
		Destination:   "Oakland",
		Date:          "2030-05-01",
		DepartureTime: "09:30",
		Participants:  []string{"owner-1"},
		CreatedAt:     time.Date(2030, 4, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateRoom_StoresHashAndParticipants(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewChatRepository(&database.RedisClient{Client: client})
	ctx := context.Background()

	created, err := repo.CreateRoom(ctx, testRoom())

	require.NoError(t, err)
	assert.True(t, created)
	key := fmt.Sprintf(constants.KeyChatRoom, "ride-1")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, "owner-1", mr.HGet(key, constants.FieldOwnerID))
	members, err := mr.Members(fmt.Sprintf(constants.KeyChatParticipants, "ride-1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"owner-1"}, members)
}

func TestCreateRoom_SecondCallKeepsFirstRoom(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewChatRepository(&database.RedisClient{Client: client})
	ctx := context.Background()

	_, err := repo.CreateRoom(ctx, testRoom())
	require.NoError(t, err)
	require.NoError(t, repo.AddParticipant(ctx, "ride-1", "p1"))

	again := testRoom()
	again.Origin = "Elsewhere"
	created, err := repo.CreateRoom(ctx, again)

	require.NoError(t, err)
	assert.False(t, created)
	room, err := repo.GetRoom(ctx, "ride-1")
	require.NoError(t, err)
	assert.Equal(t, "San Jose", room.Origin)
	assert.Equal(t, []string{"owner-1", "p1"}, room.Participants)
}

func TestGetRoom(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewChatRepository(&database.RedisClient{Client: client})
	ctx := context.Background()

	_, err := repo.CreateRoom(ctx, testRoom())
	require.NoError(t, err)
	require.NoError(t, repo.AddParticipant(ctx, "ride-1", "p2"))
	require.NoError(t, repo.AddParticipant(ctx, "ride-1", "a1"))

	room, err := repo.GetRoom(ctx, "ride-1")

	require.NoError(t, err)
	assert.Equal(t, "Oakland", room.Destination)
	assert.Equal(t, "09:30", room.DepartureTime)
	assert.Equal(t, []string{"owner-1", "a1", "p2"}, room.Participants)
	assert.Equal(t, testRoom().CreatedAt, room.CreatedAt)
}

func TestGetRoom_NotFound(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewChatRepository(&database.RedisClient{Client: client})

	_, err := repo.GetRoom(context.Background(), "missing")

	assert.True(t, errors.Is(err, models.ErrChatRoomNotFound))
}

func TestParticipants(t *testing.T) {
	_, client := setupMiniredis(t)
	repo := NewChatRepository(&database.RedisClient{Client: client})
	ctx := context.Background()

	require.NoError(t, repo.AddParticipant(ctx, "ride-1", "p1"))
	ok, err := repo.IsParticipant(ctx, "ride-1", "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.RemoveParticipant(ctx, "ride-1", "p1"))
	ok, err = repo.IsParticipant(ctx, "ride-1", "p1")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing twice is harmless
	require.NoError(t, repo.RemoveParticipant(ctx, "ride-1", "p1"))
}

func TestDeleteRoom(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewChatRepository(&database.RedisClient{Client: client})
	ctx := context.Background()

	_, err := repo.CreateRoom(ctx, testRoom())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRoom(ctx, "ride-1"))

	exists, err := repo.RoomExists(ctx, "ride-1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, mr.Keys())
	require.NoError(t, repo.DeleteRoom(ctx, "ride-1"))
}

func TestCreateRoom_RedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewChatRepository(&database.RedisClient{Client: db})

	key := fmt.Sprintf(constants.KeyChatRoom, "ride-1")
	mock.ExpectHSetNX(key, constants.FieldRideID, "ride-1").SetErr(errors.New("connection refused"))

	_, err := repo.CreateRoom(context.Background(), testRoom())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create chat room")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsParticipant_RedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewChatRepository(&database.RedisClient{Client: db})

	mock.ExpectSIsMember(fmt.Sprintf(constants.KeyChatParticipants, "ride-1"), "p1").SetErr(errors.New("timeout"))

	_, err := repo.IsParticipant(context.Background(), "ride-1", "p1")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRoomIDs_FollowsMembership(t *testing.T) {
	mr, client := setupMiniredis(t)
	repo := NewChatRepository(&database.RedisClient{Client: client})
	ctx := context.Background()

	_, err := repo.CreateRoom(ctx, testRoom())
	require.NoError(t, err)
	second := testRoom()
	second.RideID = "ride-2"
	_, err = repo.CreateRoom(ctx, second)
	require.NoError(t, err)
	require.NoError(t, repo.AddParticipant(ctx, "ride-1", "p1"))
	require.NoError(t, repo.AddParticipant(ctx, "ride-2", "p1"))

	ids, err := repo.ListRoomIDs(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ride-1", "ride-2"}, ids)

	require.NoError(t, repo.RemoveParticipant(ctx, "ride-1", "p1"))
	ids, err = repo.ListRoomIDs(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ride-2"}, ids)

	require.NoError(t, repo.DeleteRoom(ctx, "ride-2"))
	ids, err = repo.ListRoomIDs(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyUserChats, "p1")))

	ids, err = repo.ListRoomIDs(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ride-1"}, ids)
}

func TestListRoomIDs_RedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewChatRepository(&database.RedisClient{Client: db})

	mock.ExpectSMembers(fmt.Sprintf(constants.KeyUserChats, "p1")).SetErr(errors.New("timeout"))

	_, err := repo.ListRoomIDs(context.Background(), "p1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list chat rooms")
	assert.NoError(t, mock.ExpectationsWereMet())
}
