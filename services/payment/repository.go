package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// PaymentRepo stores payment records
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roadbuddy/services/payment PaymentRepo
type PaymentRepo interface {
	CreateRecord(ctx context.Context, record *models.PaymentRecord) error
	// CompleteRecord moves a pending record to a terminal status; any other
	// starting status yields models.ErrRecordFinalized
	CompleteRecord(ctx context.Context, id uuid.UUID, status models.PaymentStatus, intentID, failureReason string) (*models.PaymentRecord, error)
	SetSettlement(ctx context.Context, id uuid.UUID, outcome models.SettlementOutcome) error
	// FindLatestByKey returns the newest record for an idempotency key
	FindLatestByKey(ctx context.Context, idempotencyKey string) (*models.PaymentRecord, error)
	// FindCapture returns the payer's succeeded capture for a ride
	FindCapture(ctx context.Context, rideID, payerID string) (*models.PaymentRecord, error)
	ListByRide(ctx context.Context, rideID string) ([]*models.PaymentRecord, error)
}
