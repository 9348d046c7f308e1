package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors. Callers wrap them with context via fmt.Errorf("%w: ...").
var (
	ErrValidation           = errors.New("validation failed")
	ErrAuthorization        = errors.New("not authorized")
	ErrRideNotFound         = errors.New("ride not found")
	ErrRideUnavailable      = errors.New("ride is unavailable")
	ErrRideFull             = errors.New("ride is full")
	ErrAlreadyBooked        = errors.New("passenger already booked this ride")
	ErrRosterChanged        = errors.New("ride roster changed")
	ErrPayment              = errors.New("payment failed")
	ErrPaymentTimeout       = errors.New("payment gateway timed out")
	ErrPartialRefund        = errors.New("some refunds failed")
	ErrRecordFinalized      = errors.New("payment record already finalized")
	ErrRecordNotFound       = errors.New("payment record not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrChatRoomNotFound     = errors.New("chat room not found")
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrDuplicateVehicle     = errors.New("vehicle already registered")
)

// PartialRefundError reports a ride deletion where at least one passenger
// refund did not go through. The ride stays Cancelled until a retry
// completes the remaining refunds.
type PartialRefundError struct {
	RideID   string
	Refunded []string
	Failed   map[string]error
}

func (e *PartialRefundError) Error() string {
	return fmt.Sprintf("%s: ride %s, %d refunded, failed for [%s]",
		ErrPartialRefund.Error(), e.RideID, len(e.Refunded), strings.Join(e.FailedPassengers(), ", "))
}

// Is lets errors.Is(err, ErrPartialRefund) match.
func (e *PartialRefundError) Is(target error) bool {
	return target == ErrPartialRefund
}

// FailedPassengers returns the sorted ids whose refund must be retried.
func (e *PartialRefundError) FailedPassengers() []string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
