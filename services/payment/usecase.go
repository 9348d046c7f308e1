package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// LedgerUC wraps every gateway call in a payment record. Failures come back
// as models.ErrPayment or models.ErrPaymentTimeout.
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roadbuddy/services/payment LedgerUC
type LedgerUC interface {
	Authorize(ctx context.Context, rideID, payerID string, amount int64, idempotencyKey string) (*models.PaymentRecord, error)
	Capture(ctx context.Context, auth *models.PaymentRecord, idempotencyKey string) (*models.PaymentRecord, error)
	Void(ctx context.Context, auth *models.PaymentRecord, idempotencyKey string) error
	// Charge authorizes and captures in one step. A repeated key returns the
	// earlier capture.
	Charge(ctx context.Context, rideID, payerID string, amount int64, idempotencyKey string) (*models.PaymentRecord, error)
	// Refund returns the earlier record when the key already succeeded
	Refund(ctx context.Context, rideID, payerID string, amount int64, idempotencyKey string) (*models.PaymentRecord, error)
	MarkSettlement(ctx context.Context, recordID uuid.UUID, outcome models.SettlementOutcome) error
	FindCapture(ctx context.Context, rideID, payerID string) (*models.PaymentRecord, error)
	ListByRide(ctx context.Context, rideID string) ([]*models.PaymentRecord, error)
}
