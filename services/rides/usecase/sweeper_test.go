package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/payment/gateway"
	"github.com/piresc/roadbuddy/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepDeparted_DeletesWithoutMovingMoney(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.chat.EXPECT().EnsureRoom(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.chat.EXPECT().Join(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	departed := f.postRide(t, 2)
	f.book(t, departed.ID.String(), "p1")

	later := rideRequest(2)
	later.DepartureTime = "18:00"
	upcoming, err := f.uc.CreateRide(context.Background(), later)
	require.NoError(t, err)

	f.chat.EXPECT().Retire(gomock.Any(), departed.ID.String()).Return(nil)
	f.advance(2 * time.Hour)
	refundsBefore := f.gw.Calls(gateway.OpRefund)

	swept, err := f.uc.SweepDeparted(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	assert.Equal(t, refundsBefore, f.gw.Calls(gateway.OpRefund))

	current, err := f.uc.GetRide(context.Background(), departed.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RideStateDeleted, current.State)

	current, err = f.uc.GetRide(context.Background(), upcoming.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RideStateOpen, current.State)

	swept, err = f.uc.SweepDeparted(context.Background())
	require.NoError(t, err)
	assert.Zero(t, swept)
}

func TestSweepDeparted_SkipsRidesMidDeletion(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)
	_, err := f.registry.FreezeRide(context.Background(), ride.ID.String(), "owner-1", nil)
	require.NoError(t, err)
	f.advance(2 * time.Hour)

	swept, err := f.uc.SweepDeparted(context.Background())

	require.NoError(t, err)
	assert.Zero(t, swept)
	current, err := f.uc.GetRide(context.Background(), ride.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RideStateCancelled, current.State)
}

func TestSweeper_RunsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRideUC(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	uc.EXPECT().SweepDeparted(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		cancel()
		return 0, nil
	}).MinTimes(1)

	done := make(chan struct{})
	go func() {
		NewSweeper(uc, 5*time.Millisecond).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestNewSweeper_DefaultInterval(t *testing.T) {
	s := NewSweeper(nil, 0)
	assert.Equal(t, 10*time.Minute, s.interval)
}
