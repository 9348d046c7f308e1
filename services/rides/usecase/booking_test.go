package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/payment/gateway"
	paymentmocks "github.com/piresc/roadbuddy/services/payment/mocks"
	"github.com/piresc/roadbuddy/services/rides/mocks"
	"github.com/piresc/roadbuddy/services/rides/registry"
	riderepo "github.com/piresc/roadbuddy/services/rides/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRide_Success(t *testing.T) {
	f := newFixture(t)
	f.chat.EXPECT().EnsureRoom(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	ride := f.postRide(t, 2)
	rideID := ride.ID.String()

	f.notifier.EXPECT().Publish("owner-1", rideID, bookedMessage("Pat", ride))
	f.chat.EXPECT().Join(gomock.Any(), rideID, "p1").Return(nil)

	confirmation, err := f.uc.BookRide(context.Background(), rideID, "p1", "Pat")

	require.NoError(t, err)
	assert.Equal(t, 1, confirmation.Seat)
	assert.Equal(t, int64(1000), confirmation.Amount)
	assert.Equal(t, []string{"p1"}, confirmation.Ride.Passengers)
	assert.Equal(t, models.RideStateOpen, confirmation.Ride.State)

	capture, err := f.payments.FindCapture(context.Background(), rideID, "p1")
	require.NoError(t, err)
	assert.Equal(t, confirmation.PaymentRecordID, capture.ID)
	assert.Equal(t, 1, f.gw.Calls(gateway.OpAuthorize))
	assert.Equal(t, 1, f.gw.Calls(gateway.OpCapture))
}

func TestBookRide_LastSeatFillsRide(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)
	f.book(t, ride.ID.String(), "p1")

	confirmation, err := f.uc.BookRide(context.Background(), ride.ID.String(), "p2", "")

	require.NoError(t, err)
	assert.Equal(t, 2, confirmation.Seat)
	assert.Equal(t, models.RideStateFull, confirmation.Ride.State)

	_, err = f.uc.BookRide(context.Background(), ride.ID.String(), "p3", "")
	assert.True(t, errors.Is(err, models.ErrRideFull))
	assert.Equal(t, 2, f.gw.Calls(gateway.OpAuthorize))
}

func TestBookRide_RejectedBeforeMoneyMoves(t *testing.T) {
	tests := []struct {
		name      string
		passenger string
		prepare   func(f *fixture, rideID string)
		want      error
	}{
		{"own ride", "owner-1", func(*fixture, string) {}, models.ErrRideUnavailable},
		{"already booked", "p1", func(f *fixture, rideID string) { f.book(t, rideID, "p1") }, models.ErrAlreadyBooked},
		{"departed", "p1", func(f *fixture, _ string) { f.advance(2 * time.Hour) }, models.ErrRideUnavailable},
		{"frozen", "p1", func(f *fixture, rideID string) {
			_, err := f.registry.FreezeRide(context.Background(), rideID, "owner-1", nil)
			require.NoError(t, err)
		}, models.ErrRideUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t).quiet()
			ride := f.postRide(t, 2)
			tt.prepare(f, ride.ID.String())
			before := f.gw.Calls(gateway.OpAuthorize)

			_, err := f.uc.BookRide(context.Background(), ride.ID.String(), tt.passenger, "")

			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, before, f.gw.Calls(gateway.OpAuthorize))
		})
	}
}

func TestBookRide_UnknownRide(t *testing.T) {
	f := newFixture(t).quiet()

	_, err := f.uc.BookRide(context.Background(), uuid.NewString(), "p1", "")

	assert.True(t, errors.Is(err, models.ErrRideNotFound))
}

func TestBookRide_ConcurrentPassengersFillExactlyCapacity(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 3)
	rideID := ride.ID.String()

	const passengers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded []string
	)
	for i := 0; i < passengers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := fmt.Sprintf("p%02d", i)
			_, err := f.uc.BookRide(context.Background(), rideID, p, "")
			if err != nil {
				assert.True(t, errors.Is(err, models.ErrRideFull), "unexpected error %v", err)
				return
			}
			mu.Lock()
			succeeded = append(succeeded, p)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Len(t, succeeded, 3)
	current, err := f.uc.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.ElementsMatch(t, succeeded, current.Passengers)
	assert.Equal(t, models.RideStateFull, current.State)

	// every hold that lost the seat race was voided and never captured
	assert.Equal(t, 3, f.gw.Calls(gateway.OpCapture))
	records, err := f.payments.ListByRide(context.Background(), rideID)
	require.NoError(t, err)
	captured := 0
	for _, r := range records {
		switch r.Kind {
		case models.PaymentKindCapture:
			assert.Equal(t, models.PaymentStatusSucceeded, r.Status)
			assert.Contains(t, succeeded, r.PayerID)
			captured++
		case models.PaymentKindAuthorization:
			if !contains(succeeded, r.PayerID) {
				assert.Equal(t, models.SettlementVoided, r.Settlement, "hold of %s", r.PayerID)
				assert.Equal(t, "voided", f.gw.IntentState(r.IntentID))
			}
		}
	}
	assert.Equal(t, 3, captured)
	assert.Equal(t, f.gw.Calls(gateway.OpAuthorize)-3, f.gw.Calls(gateway.OpVoid))
}

func TestBookRide_DeclinedAuthorizationTakesNoSeat(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)
	f.gw.FailOn(gateway.OpAuthorize, "p1", gateway.ErrDeclined)

	_, err := f.uc.BookRide(context.Background(), ride.ID.String(), "p1", "")

	assert.True(t, errors.Is(err, models.ErrPayment))
	current, err := f.uc.GetRide(context.Background(), ride.ID.String())
	require.NoError(t, err)
	assert.Empty(t, current.Passengers)
}

func TestBookRide_AuthorizationTimeoutTakesNoSeat(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)
	f.gw.SetLatency(time.Second)

	_, err := f.uc.BookRide(context.Background(), ride.ID.String(), "p1", "")

	assert.True(t, errors.Is(err, models.ErrPaymentTimeout))
	current, err := f.uc.GetRide(context.Background(), ride.ID.String())
	require.NoError(t, err)
	assert.Empty(t, current.Passengers)
	assert.Equal(t, 0, f.gw.Calls(gateway.OpCapture))
}

func TestBookRide_CaptureFailureReleasesSeat(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 1)
	rideID := ride.ID.String()
	f.gw.FailOn(gateway.OpCapture, "p1", gateway.ErrDeclined)

	_, err := f.uc.BookRide(context.Background(), rideID, "p1", "")

	assert.True(t, errors.Is(err, models.ErrPayment))
	current, err := f.uc.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.Empty(t, current.Passengers)
	assert.Equal(t, models.RideStateOpen, current.State)
	assert.Equal(t, 1, f.gw.Calls(gateway.OpVoid))

	// a later attempt uses fresh keys and goes through
	f.gw.ClearFailures()
	confirmation, err := f.uc.BookRide(context.Background(), rideID, "p1", "")
	require.NoError(t, err)
	assert.Equal(t, models.RideStateFull, confirmation.Ride.State)
	assert.Equal(t, 2, f.gw.Calls(gateway.OpAuthorize))
}

func TestBookRide_CaptureTimeoutReleasesSeatAndVoids(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := paymentmocks.NewMockLedgerUC(ctrl)
	notifier := mocks.NewMockNotificationGW(ctrl)

	reg, err := registry.NewRideRegistry(testConfig(), riderepo.NewMemoryRideRepository(),
		registry.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	uc, err := NewRideUC(testConfig(), reg, ledger, notifier, nil, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	ride, err := uc.CreateRide(context.Background(), rideRequest(2))
	require.NoError(t, err)
	rideID := ride.ID.String()

	auth := &models.PaymentRecord{ID: uuid.New(), RideID: rideID, PayerID: "p1", Amount: 1000,
		Kind: models.PaymentKindAuthorization, Status: models.PaymentStatusSucceeded, IntentID: "pi_1"}

	var key string
	ledger.EXPECT().Authorize(gomock.Any(), rideID, "p1", int64(1000), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ int64, k string) (*models.PaymentRecord, error) {
			assert.Regexp(t, "^book:"+rideID+":p1:[0-9a-f-]{36}:auth$", k)
			key = k[:len(k)-len(":auth")]
			return auth, nil
		})
	ledger.EXPECT().Capture(gomock.Any(), auth, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *models.PaymentRecord, k string) (*models.PaymentRecord, error) {
			assert.Equal(t, key, k)
			current, err := reg.GetRide(ctx, rideID)
			require.NoError(t, err)
			assert.Equal(t, []string{"p1"}, current.Passengers)
			return nil, models.ErrPaymentTimeout
		})
	ledger.EXPECT().Void(gomock.Any(), auth, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.PaymentRecord, k string) error {
			assert.Equal(t, key+":void", k)
			return nil
		})

	_, err = uc.BookRide(context.Background(), rideID, "p1", "")

	assert.True(t, errors.Is(err, models.ErrPaymentTimeout))
	current, err := reg.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.Empty(t, current.Passengers)
}

func TestBookRide_ChatFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(t)
	f.notifier.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.chat.EXPECT().EnsureRoom(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).AnyTimes()
	ride := f.postRide(t, 2)

	_, err := f.uc.BookRide(context.Background(), ride.ID.String(), "p1", "")

	require.NoError(t, err)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
