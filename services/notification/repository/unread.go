package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/roadbuddy/internal/pkg/constants"
	"github.com/piresc/roadbuddy/internal/pkg/database"
	"github.com/piresc/roadbuddy/services/notification"
)

// UnreadTTL bounds how long a cached count outlives its last change
const UnreadTTL = 7 * 24 * time.Hour

type unreadCounter struct {
	redisClient *database.RedisClient
}

// NewUnreadCounter creates a Redis-backed unread counter
func NewUnreadCounter(redisClient *database.RedisClient) notification.UnreadCounter {
	return &unreadCounter{redisClient: redisClient}
}

func unreadKey(userID string) string {
	return fmt.Sprintf(constants.KeyUnreadNotifications, userID)
}

func (c *unreadCounter) Incr(ctx context.Context, userID string) error {
	pipe := c.redisClient.GetClient().TxPipeline()
	pipe.Incr(ctx, unreadKey(userID))
	pipe.Expire(ctx, unreadKey(userID), UnreadTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment unread count: %w", err)
	}
	return nil
}

// Decr never takes the count below zero
func (c *unreadCounter) Decr(ctx context.Context, userID string) error {
	client := c.redisClient.GetClient()
	n, err := client.Decr(ctx, unreadKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("failed to decrement unread count: %w", err)
	}
	if n < 0 {
		if err := client.Set(ctx, unreadKey(userID), 0, UnreadTTL).Err(); err != nil {
			return fmt.Errorf("failed to reset unread count: %w", err)
		}
	}
	return nil
}

func (c *unreadCounter) Get(ctx context.Context, userID string) (int64, bool, error) {
	val, err := c.redisClient.GetClient().Get(ctx, unreadKey(userID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get unread count: %w", err)
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid unread count %q: %w", val, err)
	}
	return n, true, nil
}

func (c *unreadCounter) Set(ctx context.Context, userID string, count int64) error {
	if err := c.redisClient.GetClient().Set(ctx, unreadKey(userID), count, UnreadTTL).Err(); err != nil {
		return fmt.Errorf("failed to set unread count: %w", err)
	}
	return nil
}
