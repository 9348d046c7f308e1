package dispatcher

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_PublishesInBackground(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockEventGW(ctrl)

	var (
		mu       sync.Mutex
		received []*models.NotificationEvent
	)
	gw.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *models.NotificationEvent) error {
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
		return nil
	}).Times(3)

	d := NewDispatcher(models.NotificationConfig{QueueSize: 8, Workers: 2}, gw)
	d.Start()

	d.Publish("owner-1", "ride-1", "Pat has booked a ride with you")
	d.Publish("p1", "ride-1", "hello")
	d.Publish("p2", "ride-1", "hello")

	require.NoError(t, d.Stop(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 3)
	ids := make(map[string]bool)
	for _, e := range received {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, "ride-1", e.RideID)
		assert.False(t, e.CreatedAt.IsZero())
		ids[e.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestDispatcher_PublishNeverBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockEventGW(ctrl)

	// not started: nothing drains the queue
	d := NewDispatcher(models.NotificationConfig{QueueSize: 2, Workers: 1}, gw)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Publish("p1", "ride-1", "msg")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	assert.Len(t, d.queue, 2)
}

func TestDispatcher_GatewayFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockEventGW(ctrl)
	gw.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))
	gw.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil)

	d := NewDispatcher(models.NotificationConfig{QueueSize: 4, Workers: 1}, gw)
	d.Start()
	d.Publish("p1", "ride-1", "first")
	d.Publish("p1", "ride-1", "second")

	require.NoError(t, d.Stop(context.Background()))
}

func TestDispatcher_PublishTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockEventGW(ctrl)
	gw.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ *models.NotificationEvent) error {
		<-ctx.Done()
		return ctx.Err()
	})

	d := NewDispatcher(models.NotificationConfig{QueueSize: 1, Workers: 1}, gw, WithPublishTimeout(10*time.Millisecond))
	d.Start()
	d.Publish("p1", "ride-1", "slow")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
}

func TestDispatcher_AfterStopDrops(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockEventGW(ctrl)

	d := NewDispatcher(models.NotificationConfig{}, gw)
	d.Start()
	require.NoError(t, d.Stop(context.Background()))
	require.NoError(t, d.Stop(context.Background()))

	assert.NotPanics(t, func() { d.Publish("p1", "ride-1", "late") })
}

func TestNewDispatcher_Defaults(t *testing.T) {
	d := NewDispatcher(models.NotificationConfig{}, nil)

	assert.Equal(t, defaultQueueSize, cap(d.queue))
	assert.Equal(t, defaultWorkers, d.workers)
	assert.Equal(t, defaultPublishLimit, d.publishLimit)
}
