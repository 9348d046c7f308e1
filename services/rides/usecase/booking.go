package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// BookRide authorizes, reserves a seat, then captures. A lost seat race voids
// the hold; a failed capture releases the seat and voids the hold.
func (uc *rideUC) BookRide(ctx context.Context, rideID, passengerID, passengerName string) (*models.BookingConfirmation, error) {
	ride, err := uc.registry.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkBookable(ride, passengerID); err != nil {
		return nil, err
	}

	// keys are per attempt so a rebooking never replays an earlier capture
	key := fmt.Sprintf("book:%s:%s:%s", rideID, passengerID, uuid.NewString())
	fields := []logger.Field{logger.RideID(rideID), logger.PassengerID(passengerID)}

	auth, err := uc.ledger.Authorize(ctx, rideID, passengerID, ride.CostPerSeat, key+":auth")
	if err != nil {
		logger.WarnCtx(ctx, "Booking authorization failed", append(fields, logger.Err(err))...)
		return nil, err
	}

	token, err := uc.registry.ReserveSeat(ctx, rideID, passengerID)
	if err != nil {
		logger.InfoCtx(ctx, "Seat reservation lost, voiding authorization",
			append(fields, logger.String("record_id", auth.ID.String()), logger.Err(err))...)
		uc.voidHold(ctx, auth, key)
		return nil, err
	}

	capture, err := uc.ledger.Capture(ctx, auth, key)
	if err != nil {
		logger.WarnCtx(ctx, "Booking capture failed, releasing seat",
			append(fields, logger.String("record_id", auth.ID.String()), logger.Err(err))...)
		if _, relErr := uc.registry.ReleaseSeat(context.WithoutCancel(ctx), rideID, passengerID); relErr != nil {
			logger.ErrorCtx(ctx, "Failed to release seat after capture failure", append(fields, logger.Err(relErr))...)
		}
		uc.voidHold(ctx, auth, key)
		return nil, err
	}

	current, err := uc.registry.GetRide(ctx, rideID)
	if err != nil {
		current = ride
	}
	if !current.IsActive() {
		// the owner deleted the ride while the capture was in flight
		return nil, uc.refundLateCapture(ctx, current, capture)
	}

	logger.InfoCtx(ctx, "Ride booked",
		append(fields,
			logger.Int("seat", token.Seat),
			logger.String("record_id", capture.ID.String()),
			logger.Cents("amount", capture.Amount))...)

	uc.notify(ride.OwnerID, rideID, bookedMessage(displayName(passengerName, passengerID), ride))
	uc.joinChat(ctx, ride, passengerID)

	return &models.BookingConfirmation{
		Ride:            current,
		PassengerID:     passengerID,
		Seat:            token.Seat,
		Amount:          capture.Amount,
		PaymentRecordID: capture.ID,
	}, nil
}

// checkBookable rejects requests that would fail at the registry anyway,
// before any money moves
func (uc *rideUC) checkBookable(ride *models.Ride, passengerID string) error {
	if ride.OwnerID == passengerID {
		return fmt.Errorf("%w: you cannot book your own ride", models.ErrRideUnavailable)
	}
	if ride.HasPassenger(passengerID) {
		return models.ErrAlreadyBooked
	}
	switch ride.State {
	case models.RideStateOpen:
	case models.RideStateFull:
		return models.ErrRideFull
	default:
		return fmt.Errorf("%w: ride is %s", models.ErrRideUnavailable, ride.State)
	}
	if ride.HasDeparted(uc.now()) {
		return fmt.Errorf("%w: ride has already departed", models.ErrRideUnavailable)
	}
	return nil
}

// refundLateCapture returns a capture that succeeded after the ride was
// frozen. It shares the deletion's refund key, so the passenger is refunded
// once whichever side gets there first.
func (uc *rideUC) refundLateCapture(ctx context.Context, ride *models.Ride, capture *models.PaymentRecord) error {
	rideID := ride.ID.String()
	passengerID := capture.PayerID
	fields := []logger.Field{logger.RideID(rideID), logger.PassengerID(passengerID), logger.String("record_id", capture.ID.String())}

	writeCtx := context.WithoutCancel(ctx)
	if _, err := uc.ledger.Refund(writeCtx, rideID, passengerID, capture.Amount, refundKey(rideID, passengerID)); err != nil {
		logger.ErrorCtx(ctx, "Failed to refund capture on a deleted ride", append(fields, logger.Err(err))...)
		return fmt.Errorf("ride was deleted during booking and the refund failed: %w", err)
	}
	uc.markRefunded(writeCtx, rideID, passengerID)

	logger.WarnCtx(ctx, "Ride deleted during booking, capture refunded", append(fields, logger.String("state", string(ride.State)))...)
	return fmt.Errorf("%w: ride was %s during booking, payment refunded", models.ErrRideUnavailable, ride.State)
}

// voidHold releases an authorization even when the request was cancelled
func (uc *rideUC) voidHold(ctx context.Context, auth *models.PaymentRecord, key string) {
	if err := uc.ledger.Void(context.WithoutCancel(ctx), auth, key+":void"); err != nil {
		logger.ErrorCtx(ctx, "Failed to void authorization",
			logger.RideID(auth.RideID),
			logger.PassengerID(auth.PayerID),
			logger.String("record_id", auth.ID.String()),
			logger.Err(err))
	}
}

func (uc *rideUC) joinChat(ctx context.Context, ride *models.Ride, userID string) {
	if uc.chat == nil {
		return
	}
	if err := uc.chat.EnsureRoom(ctx, ride); err != nil {
		logger.WarnCtx(ctx, "Failed to ensure chat room", logger.RideID(ride.ID.String()), logger.Err(err))
		return
	}
	if err := uc.chat.Join(ctx, ride.ID.String(), userID); err != nil {
		logger.WarnCtx(ctx, "Failed to join chat room", logger.RideID(ride.ID.String()), logger.UserID(userID), logger.Err(err))
	}
}
