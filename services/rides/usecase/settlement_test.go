package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/payment"
	"github.com/piresc/roadbuddy/services/payment/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelBooking_NoRefund(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 1)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1")

	updated, err := f.uc.CancelBooking(context.Background(), rideID, "p1", "Pat")

	require.NoError(t, err)
	assert.Empty(t, updated.Passengers)
	assert.Equal(t, models.RideStateOpen, updated.State)
	assert.Equal(t, 0, f.gw.Calls(gateway.OpRefund))

	records, err := f.payments.ListByRide(context.Background(), rideID)
	require.NoError(t, err)
	for _, r := range records {
		assert.NotEqual(t, models.PaymentKindRefund, r.Kind)
		if r.Kind == models.PaymentKindCapture {
			assert.Equal(t, models.SettlementNoRefund, r.Settlement)
			assert.Equal(t, models.PaymentStatusSucceeded, r.Status)
		}
	}
}

func TestCancelBooking_NotifiesOwnerAndLeavesChat(t *testing.T) {
	f := newFixture(t)
	f.chat.EXPECT().EnsureRoom(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.chat.EXPECT().Join(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().Publish("owner-1", gomock.Any(), gomock.Any())
	ride := f.postRide(t, 2)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1")

	f.notifier.EXPECT().Publish("owner-1", rideID, cancelledMessage("Pat", ride))
	f.chat.EXPECT().Leave(gomock.Any(), rideID, "p1").Return(nil)

	_, err := f.uc.CancelBooking(context.Background(), rideID, "p1", "Pat")

	require.NoError(t, err)
}

func TestCancelBooking_NotAPassenger(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)

	_, err := f.uc.CancelBooking(context.Background(), ride.ID.String(), "p9", "")

	assert.True(t, errors.Is(err, models.ErrRideUnavailable))
}

func TestDeleteRide_FeeAndRefunds(t *testing.T) {
	f := newFixture(t)
	f.chat.EXPECT().EnsureRoom(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.chat.EXPECT().Join(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().Publish("owner-1", gomock.Any(), gomock.Any()).Times(2)
	ride := f.postRide(t, 2)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1", "p2")

	f.notifier.EXPECT().Publish("p1", rideID, deletedMessage(1000, "Olivia", ride))
	f.notifier.EXPECT().Publish("p2", rideID, deletedMessage(1000, "Olivia", ride))
	f.chat.EXPECT().Retire(gomock.Any(), rideID).Return(nil)

	receipt, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")

	require.NoError(t, err)
	assert.Equal(t, models.RideStateDeleted, receipt.State)
	assert.Equal(t, int64(400), receipt.Fee)
	assert.Equal(t, int64(2400), receipt.RefundTotal)
	require.Len(t, receipt.Refunds, 2)
	assert.Equal(t, "p1", receipt.Refunds[0].PassengerID)
	assert.Equal(t, "p2", receipt.Refunds[1].PassengerID)
	for _, line := range receipt.Refunds {
		assert.Equal(t, int64(1000), line.Amount)
	}

	assert.Equal(t, int64(1000), f.gw.Refunded("p1"))
	assert.Equal(t, int64(1000), f.gw.Refunded("p2"))

	fee, err := f.payments.FindCapture(context.Background(), rideID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(400), fee.Amount)
	assert.Equal(t, "fee:"+rideID, fee.IdempotencyKey)

	for _, p := range []string{"p1", "p2"} {
		capture, err := f.payments.FindCapture(context.Background(), rideID, p)
		require.NoError(t, err)
		assert.Equal(t, models.SettlementRefunded, capture.Settlement)
	}

	current, err := f.uc.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStateDeleted, current.State)
}

func TestDeleteRide_EmptyRosterMovesNoMoney(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 3)

	receipt, err := f.uc.DeleteRide(context.Background(), ride.ID.String(), "owner-1", "Olivia")

	require.NoError(t, err)
	assert.Equal(t, models.RideStateDeleted, receipt.State)
	assert.Zero(t, receipt.Fee)
	assert.Zero(t, receipt.RefundTotal)
	assert.Empty(t, receipt.Refunds)
	for _, op := range []string{gateway.OpAuthorize, gateway.OpCapture, gateway.OpRefund, gateway.OpVoid} {
		assert.Zero(t, f.gw.Calls(op), op)
	}
}

func TestDeleteRide_OnlyOwner(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)
	f.book(t, ride.ID.String(), "p1")

	_, err := f.uc.DeleteRide(context.Background(), ride.ID.String(), "p1", "Pat")

	assert.True(t, errors.Is(err, models.ErrAuthorization))
	current, err := f.uc.GetRide(context.Background(), ride.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RideStateOpen, current.State)
	assert.Zero(t, f.gw.Calls(gateway.OpRefund))
}

func TestDeleteRide_AlreadyDeleted(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)
	_, err := f.uc.DeleteRide(context.Background(), ride.ID.String(), "owner-1", "Olivia")
	require.NoError(t, err)

	_, err = f.uc.DeleteRide(context.Background(), ride.ID.String(), "owner-1", "Olivia")

	assert.True(t, errors.Is(err, models.ErrRideUnavailable))
}

func TestDeleteRide_PartialRefundResumes(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 3)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1", "p2")
	f.gw.FailOn(gateway.OpRefund, "p2", gateway.ErrDeclined)

	_, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrPartialRefund))
	var partial *models.PartialRefundError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, []string{"p1"}, partial.Refunded)
	assert.Equal(t, []string{"p2"}, partial.FailedPassengers())

	// the roster stays frozen while refunds are outstanding
	current, err := f.uc.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStateCancelled, current.State)
	_, err = f.uc.BookRide(context.Background(), rideID, "p3", "")
	assert.True(t, errors.Is(err, models.ErrRideUnavailable))
	_, err = f.uc.CancelBooking(context.Background(), rideID, "p1", "")
	assert.True(t, errors.Is(err, models.ErrRideUnavailable))

	f.gw.ClearFailures()
	receipt, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")

	require.NoError(t, err)
	assert.Equal(t, models.RideStateDeleted, receipt.State)
	assert.Len(t, receipt.Refunds, 2)
	assert.Equal(t, int64(1000), f.gw.Refunded("p1"))
	assert.Equal(t, int64(1000), f.gw.Refunded("p2"))
	// two booking captures plus one owner fee
	assert.Equal(t, 3, f.gw.Calls(gateway.OpCapture))
}

func TestDeleteRide_FeeFailureLeavesRideUnchanged(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 3)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1")
	f.gw.FailOn(gateway.OpAuthorize, "owner-1", gateway.ErrDeclined)

	_, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")

	assert.True(t, errors.Is(err, models.ErrPayment))
	assert.Zero(t, f.gw.Calls(gateway.OpRefund))
	current, err := f.uc.GetRide(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStateOpen, current.State)
	assert.Equal(t, []string{"p1"}, current.Passengers)

	// the ride keeps taking bookings and cancellations
	f.book(t, rideID, "p2")
	_, err = f.uc.CancelBooking(context.Background(), rideID, "p1", "")
	require.NoError(t, err)

	f.gw.ClearFailures()
	receipt, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")

	require.NoError(t, err)
	assert.Equal(t, int64(200), receipt.Fee)
	assert.Equal(t, int64(1200), receipt.RefundTotal)
	assert.Equal(t, int64(1000), f.gw.Refunded("p2"))
	assert.Zero(t, f.gw.Refunded("p1"))
}

func TestDeleteRide_FeeFailureLeavesRideSweepable(t *testing.T) {
	f := newFixture(t).quiet()
	ride := f.postRide(t, 2)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1")
	f.gw.FailOn(gateway.OpCapture, "owner-1", gateway.ErrDeclined)

	_, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")
	require.True(t, errors.Is(err, models.ErrPayment))

	f.advance(2 * time.Hour)
	swept, err := f.uc.SweepDeparted(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, swept)
}

func TestDeleteRide_FeeRoundsHalfUp(t *testing.T) {
	f := newFixture(t).quiet()
	req := rideRequest(1)
	req.CostPerSeat = 0.53
	ride, err := f.uc.CreateRide(context.Background(), req)
	require.NoError(t, err)
	f.book(t, ride.ID.String(), "p1")

	receipt, err := f.uc.DeleteRide(context.Background(), ride.ID.String(), "owner-1", "Olivia")

	require.NoError(t, err)
	// 20% of 53 cents is 10.6
	assert.Equal(t, int64(11), receipt.Fee)
	assert.Equal(t, int64(64), receipt.RefundTotal)
}

// holdingGW parks the first capture for payerID until release is closed
type holdingGW struct {
	*gateway.SandboxGW
	payerID string

	mu      sync.Mutex
	payers  map[string]string
	held    bool
	reached chan struct{}
	release chan struct{}
}

func holdCapture(payerID string) (*holdingGW, func(*gateway.SandboxGW) payment.SettlementGW) {
	h := &holdingGW{
		payerID: payerID,
		payers:  make(map[string]string),
		reached: make(chan struct{}),
		release: make(chan struct{}),
	}
	return h, func(s *gateway.SandboxGW) payment.SettlementGW {
		h.SandboxGW = s
		return h
	}
}

func (h *holdingGW) Authorize(ctx context.Context, payerID string, amount int64, idempotencyKey string) (*models.GatewayResult, error) {
	res, err := h.SandboxGW.Authorize(ctx, payerID, amount, idempotencyKey)
	if err == nil {
		h.mu.Lock()
		h.payers[res.Reference] = payerID
		h.mu.Unlock()
	}
	return res, err
}

func (h *holdingGW) Capture(ctx context.Context, intentID string, idempotencyKey string) (*models.GatewayResult, error) {
	h.mu.Lock()
	hold := !h.held && h.payers[intentID] == h.payerID
	if hold {
		h.held = true
	}
	h.mu.Unlock()

	if hold {
		close(h.reached)
		select {
		case <-h.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return h.SandboxGW.Capture(ctx, intentID, idempotencyKey)
}

func (h *holdingGW) waitHeld(t *testing.T) {
	t.Helper()
	select {
	case <-h.reached:
	case <-time.After(2 * time.Second):
		t.Fatal("capture never reached the processor")
	}
}

// patientConfig gives held captures room before the ledger deadline
func patientConfig() *models.Config {
	cfg := testConfig()
	cfg.Payment.TimeoutMs = 5000
	return cfg
}

func TestDeleteRide_CaptureFailingAfterFreezeIsNotRefunded(t *testing.T) {
	hold, wrap := holdCapture("p1")
	f := newFixtureWith(t, patientConfig(), wrap).quiet()
	ride := f.postRide(t, 3)
	rideID := ride.ID.String()
	f.book(t, rideID, "p2")
	f.gw.FailOn(gateway.OpCapture, "p1", gateway.ErrDeclined)

	booked := make(chan error, 1)
	go func() {
		_, err := f.uc.BookRide(context.Background(), rideID, "p1", "")
		booked <- err
	}()
	hold.waitHeld(t)

	// p1 holds a seat but has not paid
	receipt, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")
	close(hold.release)
	bookErr := <-booked

	require.NoError(t, err)
	assert.True(t, errors.Is(bookErr, models.ErrPayment), "got %v", bookErr)
	assert.Equal(t, models.RideStateDeleted, receipt.State)
	assert.Equal(t, int64(200), receipt.Fee)
	assert.Equal(t, int64(1200), receipt.RefundTotal)
	require.Len(t, receipt.Refunds, 1)
	assert.Equal(t, "p2", receipt.Refunds[0].PassengerID)

	assert.Zero(t, f.gw.Refunded("p1"))
	assert.Equal(t, int64(1000), f.gw.Refunded("p2"))
	_, err = f.payments.FindCapture(context.Background(), rideID, "p1")
	assert.True(t, errors.Is(err, models.ErrRecordNotFound))
	for _, r := range mustRecords(t, f, rideID) {
		if r.PayerID == "p1" {
			assert.NotEqual(t, models.PaymentKindRefund, r.Kind)
		}
	}
}

func TestBookRide_CaptureLandingAfterDeletionIsRefunded(t *testing.T) {
	hold, wrap := holdCapture("p1")
	f := newFixtureWith(t, patientConfig(), wrap).quiet()
	ride := f.postRide(t, 2)
	rideID := ride.ID.String()

	booked := make(chan error, 1)
	go func() {
		_, err := f.uc.BookRide(context.Background(), rideID, "p1", "")
		booked <- err
	}()
	hold.waitHeld(t)

	receipt, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")
	close(hold.release)
	bookErr := <-booked

	require.NoError(t, err)
	assert.Equal(t, models.RideStateDeleted, receipt.State)
	assert.Zero(t, receipt.Fee)
	assert.Empty(t, receipt.Refunds)

	assert.True(t, errors.Is(bookErr, models.ErrRideUnavailable), "got %v", bookErr)
	assert.Equal(t, int64(1000), f.gw.Refunded("p1"))
	capture, err := f.payments.FindCapture(context.Background(), rideID, "p1")
	require.NoError(t, err)
	assert.Equal(t, models.SettlementRefunded, capture.Settlement)
	// only the passenger's capture reached the processor
	assert.Equal(t, 1, f.gw.Calls(gateway.OpCapture))
}

func TestDeleteRide_RepricesFeeWhenRosterGrows(t *testing.T) {
	hold, wrap := holdCapture("owner-1")
	f := newFixtureWith(t, patientConfig(), wrap).quiet()
	ride := f.postRide(t, 3)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1")

	type outcome struct {
		receipt *models.DeletionReceipt
		err     error
	}
	deleted := make(chan outcome, 1)
	go func() {
		receipt, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")
		deleted <- outcome{receipt, err}
	}()
	hold.waitHeld(t)

	f.book(t, rideID, "p2")
	close(hold.release)
	res := <-deleted

	require.NoError(t, res.err)
	assert.Equal(t, int64(400), res.receipt.Fee)
	assert.Equal(t, int64(2400), res.receipt.RefundTotal)
	assert.Len(t, res.receipt.Refunds, 2)
	assert.Equal(t, int64(1000), f.gw.Refunded("p1"))
	assert.Equal(t, int64(1000), f.gw.Refunded("p2"))

	var charged int64
	var keys []string
	for _, r := range mustRecords(t, f, rideID) {
		if r.PayerID == "owner-1" && r.Kind == models.PaymentKindCapture && r.Status == models.PaymentStatusSucceeded {
			charged += r.Amount
			keys = append(keys, r.IdempotencyKey)
		}
	}
	assert.Equal(t, int64(400), charged)
	assert.ElementsMatch(t, []string{"fee:" + rideID, "fee:" + rideID + ":1"}, keys)
}

func TestDeleteRide_ReturnsFeeWhenRosterShrinks(t *testing.T) {
	hold, wrap := holdCapture("owner-1")
	f := newFixtureWith(t, patientConfig(), wrap).quiet()
	ride := f.postRide(t, 3)
	rideID := ride.ID.String()
	f.book(t, rideID, "p1", "p2")

	type outcome struct {
		receipt *models.DeletionReceipt
		err     error
	}
	deleted := make(chan outcome, 1)
	go func() {
		receipt, err := f.uc.DeleteRide(context.Background(), rideID, "owner-1", "Olivia")
		deleted <- outcome{receipt, err}
	}()
	hold.waitHeld(t)

	_, err := f.uc.CancelBooking(context.Background(), rideID, "p2", "")
	require.NoError(t, err)
	close(hold.release)
	res := <-deleted

	require.NoError(t, res.err)
	assert.Equal(t, int64(200), res.receipt.Fee)
	require.Len(t, res.receipt.Refunds, 1)
	assert.Equal(t, "p1", res.receipt.Refunds[0].PassengerID)
	assert.Equal(t, int64(200), f.gw.Refunded("owner-1"))
	assert.Zero(t, f.gw.Refunded("p2"))
}

func mustRecords(t *testing.T, f *fixture, rideID string) []*models.PaymentRecord {
	t.Helper()
	records, err := f.payments.ListByRide(context.Background(), rideID)
	require.NoError(t, err)
	return records
}
