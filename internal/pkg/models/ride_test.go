package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRide(max int) *Ride {
	return &Ride{
		OwnerID:       "owner",
		CostPerSeat:   1000,
		MaxPassengers: max,
		State:         RideStateOpen,
	}
}

func TestRideState_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to RideState
		allowed  bool
	}{
		{RideStateOpen, RideStateFull, true},
		{RideStateOpen, RideStateCancelled, true},
		{RideStateFull, RideStateOpen, true},
		{RideStateFull, RideStateDeleted, true},
		{RideStateCancelled, RideStateDeleted, true},
		{RideStateCancelled, RideStateOpen, false},
		{RideStateCancelled, RideStateFull, false},
		{RideStateDeleted, RideStateOpen, false},
		{RideStateDeleted, RideStateCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRide_ReserveFillsRide(t *testing.T) {
	ride := newRide(2)

	seat, err := ride.Reserve("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, seat)
	assert.Equal(t, RideStateOpen, ride.State)

	_, err = ride.Reserve("p1")
	assert.ErrorIs(t, err, ErrAlreadyBooked)

	seat, err = ride.Reserve("p2")
	require.NoError(t, err)
	assert.Equal(t, 2, seat)
	assert.Equal(t, RideStateFull, ride.State)
	assert.Equal(t, 0, ride.SeatsLeft())

	_, err = ride.Reserve("p3")
	assert.ErrorIs(t, err, ErrRideFull)
	assert.Len(t, ride.Passengers, 2)
}

func TestRide_ReleaseReopens(t *testing.T) {
	ride := newRide(1)
	_, err := ride.Reserve("p1")
	require.NoError(t, err)
	require.Equal(t, RideStateFull, ride.State)

	assert.True(t, ride.Release("p1"))
	assert.Equal(t, RideStateOpen, ride.State)
	assert.Empty(t, ride.Passengers)

	assert.False(t, ride.Release("p1"))
}

func TestRide_FrozenRosterIsImmutable(t *testing.T) {
	ride := newRide(3)
	_, err := ride.Reserve("p1")
	require.NoError(t, err)

	require.NoError(t, ride.Freeze())
	require.NoError(t, ride.Freeze())
	assert.Equal(t, RideStateCancelled, ride.State)

	_, err = ride.Reserve("p2")
	assert.ErrorIs(t, err, ErrRideUnavailable)
	assert.False(t, ride.Release("p1"))
	assert.ErrorIs(t, ride.RemovePassenger("p1"), ErrRideUnavailable)
	assert.Equal(t, []string{"p1"}, ride.Passengers)

	require.NoError(t, ride.MarkDeleted())
	assert.ErrorIs(t, ride.Freeze(), ErrRideUnavailable)
}

func TestRide_RemovePassengerUnknown(t *testing.T) {
	ride := newRide(2)
	err := ride.RemovePassenger("ghost")
	assert.ErrorIs(t, err, ErrRideUnavailable)
}

func TestRide_CloneDoesNotShareRoster(t *testing.T) {
	ride := newRide(3)
	_, err := ride.Reserve("p1")
	require.NoError(t, err)

	clone := ride.Clone()
	_, err = clone.Reserve("p2")
	require.NoError(t, err)

	assert.Equal(t, []string{"p1"}, ride.Passengers)
	assert.Equal(t, []string{"p1", "p2"}, clone.Passengers)
}

func TestRide_CostOfAndDeparture(t *testing.T) {
	now := time.Date(2030, 5, 1, 8, 0, 0, 0, time.UTC)
	ride := newRide(3)
	ride.Passengers = []string{"p1", "p2"}
	ride.DepartureAt = now

	assert.Equal(t, int64(2000), ride.CostOf(len(ride.Passengers)))
	assert.Equal(t, int64(1000), ride.CostOf(1))
	assert.True(t, ride.HasDeparted(now))
	assert.False(t, ride.HasDeparted(now.Add(-time.Minute)))
}

func TestPartialRefundError(t *testing.T) {
	err := &PartialRefundError{
		RideID:   "r1",
		Refunded: []string{"p1"},
		Failed:   map[string]error{"p3": errors.New("declined"), "p2": ErrPaymentTimeout},
	}

	assert.True(t, errors.Is(err, ErrPartialRefund))
	assert.False(t, errors.Is(err, ErrPayment))
	assert.Equal(t, []string{"p2", "p3"}, err.FailedPassengers())
	assert.Contains(t, err.Error(), "ride r1, 1 refunded, failed for [p2, p3]")
}
