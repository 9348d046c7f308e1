package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/internal/utils"
	"golang.org/x/sync/errgroup"
)

// CancelBooking drops the passenger from the roster. No money moves: the
// passenger's capture is annotated settled without refund.
func (uc *rideUC) CancelBooking(ctx context.Context, rideID, passengerID, passengerName string) (*models.Ride, error) {
	ride, err := uc.registry.CancelRide(ctx, rideID, passengerID)
	if err != nil {
		return nil, err
	}

	fields := []logger.Field{logger.RideID(rideID), logger.PassengerID(passengerID)}

	capture, err := uc.ledger.FindCapture(ctx, rideID, passengerID)
	switch {
	case err == nil:
		if err := uc.ledger.MarkSettlement(ctx, capture.ID, models.SettlementNoRefund); err != nil {
			logger.ErrorCtx(ctx, "Failed to mark booking settled without refund",
				append(fields, logger.String("record_id", capture.ID.String()), logger.Err(err))...)
		}
	case errors.Is(err, models.ErrRecordNotFound):
		logger.WarnCtx(ctx, "Cancelled booking has no capture record", fields...)
	default:
		logger.ErrorCtx(ctx, "Failed to look up booking capture", append(fields, logger.Err(err))...)
	}

	logger.InfoCtx(ctx, "Booking cancelled", fields...)

	uc.notify(ride.OwnerID, rideID, cancelledMessage(displayName(passengerName, passengerID), ride))
	if uc.chat != nil {
		if err := uc.chat.Leave(ctx, rideID, passengerID); err != nil {
			logger.WarnCtx(ctx, "Failed to leave chat room", append(fields, logger.Err(err))...)
		}
	}
	return ride, nil
}

// maxFreezeAttempts bounds how often DeleteRide re-prices the fee when
// bookings keep changing the roster between the fee charge and the freeze
const maxFreezeAttempts = 3

// DeleteRide charges the owner's fee, freezes the roster, refunds every
// paying passenger and only then deletes the ride. The ride is not touched
// until the fee has been charged. Once frozen, progress survives in the ride
// state and the idempotency keys, so calling it again after a failure
// resumes where it stopped: the fee is charged once and settled refunds are
// not repeated.
func (uc *rideUC) DeleteRide(ctx context.Context, rideID, ownerID, ownerName string) (*models.DeletionReceipt, error) {
	ride, err := uc.registry.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: only the owner can delete this ride", models.ErrAuthorization)
	}
	if ride.State == models.RideStateDeleted {
		return nil, fmt.Errorf("%w: ride is already deleted", models.ErrRideUnavailable)
	}

	fields := []logger.Field{logger.RideID(rideID), logger.String("owner_id", ownerID)}

	frozen := ride
	if ride.State != models.RideStateCancelled {
		frozen, err = uc.chargeAndFreeze(ctx, ride, ownerID)
		if err != nil {
			return nil, err
		}
	}

	// a capture may have landed between the fee charge and the freeze
	paid, err := uc.paidPassengers(ctx, frozen)
	if err != nil {
		return nil, err
	}
	fee, err := uc.settleFee(ctx, frozen, ownerID, uc.feeFor(frozen, len(paid)))
	if err != nil {
		return nil, err
	}

	receipt := &models.DeletionReceipt{RideID: rideID, Refunds: []models.RefundLine{}}
	if len(paid) == 0 {
		if err := uc.finishDeletion(ctx, frozen, ownerID, receipt); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Ride deleted without paying passengers", append(fields, logger.Int("roster", len(frozen.Passengers)))...)
		return receipt, nil
	}

	receipt.Fee = fee
	receipt.RefundTotal = frozen.CostOf(len(paid)) + fee

	refunds, err := uc.refundAll(ctx, frozen, paid)
	if err != nil {
		return nil, err
	}
	receipt.Refunds = refunds

	if err := uc.finishDeletion(ctx, frozen, ownerID, receipt); err != nil {
		return nil, err
	}

	for _, line := range refunds {
		uc.notify(line.PassengerID, rideID, deletedMessage(line.Amount, displayName(ownerName, ownerID), frozen))
	}

	logger.InfoCtx(ctx, "Ride deleted",
		append(fields,
			logger.Int("passengers", len(refunds)),
			logger.Cents("fee", receipt.Fee),
			logger.Cents("refund_total", receipt.RefundTotal))...)
	return receipt, nil
}

// chargeAndFreeze prices the fee on the current roster, charges it and then
// freezes the ride if the roster is still the one that was priced. A roster
// that changed in between is re-priced; the difference is charged or
// returned to the owner. A failed charge leaves the ride as it was.
func (uc *rideUC) chargeAndFreeze(ctx context.Context, ride *models.Ride, ownerID string) (*models.Ride, error) {
	rideID := ride.ID.String()
	snapshot := ride

	for attempt := 1; attempt <= maxFreezeAttempts; attempt++ {
		paid, err := uc.paidPassengers(ctx, snapshot)
		if err != nil {
			return nil, err
		}
		if _, err := uc.settleFee(ctx, snapshot, ownerID, uc.feeFor(snapshot, len(paid))); err != nil {
			logger.WarnCtx(ctx, "Owner fee charge failed, ride left unchanged",
				logger.RideID(rideID), logger.String("owner_id", ownerID), logger.Err(err))
			return nil, err
		}

		frozen, err := uc.registry.FreezeRide(ctx, rideID, ownerID, snapshot.Passengers)
		if err == nil {
			return frozen, nil
		}
		if !errors.Is(err, models.ErrRosterChanged) {
			uc.reverseFee(ctx, snapshot, ownerID)
			return nil, err
		}

		logger.InfoCtx(ctx, "Roster changed while deleting ride, re-pricing fee",
			logger.RideID(rideID), logger.Int("attempt", attempt), logger.Err(err))
		if snapshot, err = uc.registry.GetRide(ctx, rideID); err != nil {
			return nil, err
		}
		if !snapshot.IsActive() {
			return nil, fmt.Errorf("%w: ride is %s", models.ErrRideUnavailable, snapshot.State)
		}
	}

	uc.reverseFee(ctx, snapshot, ownerID)
	return nil, fmt.Errorf("%w: roster kept changing, try again", models.ErrRosterChanged)
}

// reverseFee returns whatever fee was charged on a ride that was not frozen
func (uc *rideUC) reverseFee(ctx context.Context, ride *models.Ride, ownerID string) {
	if _, err := uc.settleFee(context.WithoutCancel(ctx), ride, ownerID, 0); err != nil {
		logger.ErrorCtx(ctx, "Failed to return owner fee",
			logger.RideID(ride.ID.String()), logger.String("owner_id", ownerID), logger.Err(err))
	}
}

func (uc *rideUC) feeFor(ride *models.Ride, paidSeats int) int64 {
	return utils.PercentOf(ride.CostOf(paidSeats), uc.penaltyPercent)
}

// paidPassengers returns, in roster order, the passengers holding a
// succeeded capture on the ride. A passenger whose booking is still
// capturing, or whose capture failed, has paid nothing and is skipped.
func (uc *rideUC) paidPassengers(ctx context.Context, ride *models.Ride) ([]string, error) {
	rideID := ride.ID.String()
	paid := make([]string, 0, len(ride.Passengers))
	for _, passengerID := range ride.Passengers {
		_, err := uc.ledger.FindCapture(ctx, rideID, passengerID)
		switch {
		case err == nil:
			paid = append(paid, passengerID)
		case errors.Is(err, models.ErrRecordNotFound):
			logger.InfoCtx(ctx, "Passenger has not paid, no refund due", logger.RideID(rideID), logger.PassengerID(passengerID))
		default:
			return nil, fmt.Errorf("failed to look up capture for %s: %w", passengerID, err)
		}
	}
	return paid, nil
}

// settleFee brings the owner's net fee on the ride to target and returns
// it. Every top-up or return gets its own key, numbered by the fee records
// already settled, so a repeated call with the same target moves no money.
func (uc *rideUC) settleFee(ctx context.Context, ride *models.Ride, ownerID string, target int64) (int64, error) {
	rideID := ride.ID.String()
	records, err := uc.ledger.ListByRide(ctx, rideID)
	if err != nil {
		return 0, fmt.Errorf("failed to load fee records: %w", err)
	}

	var charged int64
	var seq int
	for _, r := range records {
		if r.PayerID != ownerID || r.Status != models.PaymentStatusSucceeded {
			continue
		}
		switch r.Kind {
		case models.PaymentKindCapture:
			charged += r.Amount
			seq++
		case models.PaymentKindRefund:
			charged -= r.Amount
			seq++
		}
	}

	switch delta := target - charged; {
	case delta > 0:
		record, err := uc.ledger.Charge(ctx, rideID, ownerID, delta, feeKey(rideID, seq))
		if err != nil {
			return 0, err
		}
		logger.InfoCtx(ctx, "Owner fee charged",
			logger.RideID(rideID),
			logger.String("record_id", record.ID.String()),
			logger.Cents("fee", record.Amount))
	case delta < 0:
		record, err := uc.ledger.Refund(ctx, rideID, ownerID, -delta, feeKey(rideID, seq)+":return")
		if err != nil {
			return 0, err
		}
		logger.InfoCtx(ctx, "Owner fee returned",
			logger.RideID(rideID),
			logger.String("record_id", record.ID.String()),
			logger.Cents("returned", record.Amount))
	}
	return target, nil
}

// refundAll refunds the paying passengers concurrently and waits for all of
// them. Any failure comes back as *models.PartialRefundError.
func (uc *rideUC) refundAll(ctx context.Context, ride *models.Ride, paid []string) ([]models.RefundLine, error) {
	rideID := ride.ID.String()

	var (
		mu     sync.Mutex
		done   = make(map[string]models.RefundLine, len(paid))
		failed = make(map[string]error)
	)

	var g errgroup.Group
	g.SetLimit(uc.refundConcurrency)
	for _, passengerID := range paid {
		passengerID := passengerID
		g.Go(func() error {
			record, err := uc.ledger.Refund(ctx, rideID, passengerID, ride.CostPerSeat, refundKey(rideID, passengerID))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[passengerID] = err
				return nil
			}
			done[passengerID] = models.RefundLine{PassengerID: passengerID, Amount: record.Amount, RecordID: record.ID}
			return nil
		})
	}
	_ = g.Wait()

	lines := make([]models.RefundLine, 0, len(done))
	refunded := make([]string, 0, len(done))
	for _, passengerID := range paid {
		if line, ok := done[passengerID]; ok {
			lines = append(lines, line)
			refunded = append(refunded, passengerID)
			uc.markRefunded(ctx, rideID, passengerID)
		}
	}

	if len(failed) > 0 {
		perr := &models.PartialRefundError{RideID: rideID, Refunded: refunded, Failed: failed}
		logger.WarnCtx(ctx, "Ride refunds incomplete",
			logger.RideID(rideID),
			logger.Strings("refunded", refunded),
			logger.Strings("failed", perr.FailedPassengers()))
		return nil, perr
	}
	return lines, nil
}

func (uc *rideUC) markRefunded(ctx context.Context, rideID, passengerID string) {
	capture, err := uc.ledger.FindCapture(ctx, rideID, passengerID)
	if err != nil {
		if !errors.Is(err, models.ErrRecordNotFound) {
			logger.WarnCtx(ctx, "Failed to look up capture for refund", logger.RideID(rideID), logger.PassengerID(passengerID), logger.Err(err))
		}
		return
	}
	if capture.Settlement == models.SettlementRefunded {
		return
	}
	if err := uc.ledger.MarkSettlement(ctx, capture.ID, models.SettlementRefunded); err != nil {
		logger.WarnCtx(ctx, "Failed to mark capture refunded", logger.RideID(rideID), logger.PassengerID(passengerID), logger.Err(err))
	}
}

func (uc *rideUC) finishDeletion(ctx context.Context, ride *models.Ride, ownerID string, receipt *models.DeletionReceipt) error {
	deleted, err := uc.registry.DeleteRide(ctx, ride.ID.String(), ownerID)
	if err != nil {
		return err
	}
	receipt.State = deleted.State

	if uc.chat != nil {
		if err := uc.chat.Retire(ctx, ride.ID.String()); err != nil {
			logger.WarnCtx(ctx, "Failed to retire chat room", logger.RideID(ride.ID.String()), logger.Err(err))
		}
	}
	return nil
}

// feeKey is fee:{ride} for the first fee record and fee:{ride}:{n} after
func feeKey(rideID string, seq int) string {
	if seq == 0 {
		return "fee:" + rideID
	}
	return fmt.Sprintf("fee:%s:%d", rideID, seq)
}

func refundKey(rideID, passengerID string) string {
	return fmt.Sprintf("refund:%s:%s", rideID, passengerID)
}
