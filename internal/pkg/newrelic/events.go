package newrelic

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// PaymentEventType is the custom event recorded for every settled gateway call
const PaymentEventType = "RoadBuddyPayment"

// PaymentEventAttributes flattens a completed payment record for APM
func PaymentEventAttributes(record *models.PaymentRecord) map[string]interface{} {
	attrs := map[string]interface{}{
		"ride_id":      record.RideID,
		"payer_id":     record.PayerID,
		"kind":         string(record.Kind),
		"status":       string(record.Status),
		"amount_cents": record.Amount,
		"currency":     record.Currency,
	}
	if record.FailureReason != "" {
		attrs["failure_reason"] = record.FailureReason
	}
	return attrs
}

// RecordPaymentEvent reports a money movement against the application that
// owns the transaction in ctx. Without a transaction it does nothing.
func RecordPaymentEvent(ctx context.Context, record *models.PaymentRecord) {
	txn := FromContext(ctx)
	if txn == nil || record == nil {
		return
	}
	app := txn.Application()
	if app == nil {
		return
	}
	app.RecordCustomEvent(PaymentEventType, PaymentEventAttributes(record))
}
