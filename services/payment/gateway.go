package payment

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// SettlementGW is the payment processor. Every call carries an idempotency
// key; repeating a call with the same key must not move money twice.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/roadbuddy/services/payment SettlementGW
type SettlementGW interface {
	// Authorize places a hold on the payer; Reference is the intent id
	Authorize(ctx context.Context, payerID string, amount int64, idempotencyKey string) (*models.GatewayResult, error)
	Capture(ctx context.Context, intentID string, idempotencyKey string) (*models.GatewayResult, error)
	Refund(ctx context.Context, payerID string, amount int64, idempotencyKey string) (*models.GatewayResult, error)
	Void(ctx context.Context, intentID string, idempotencyKey string) (*models.GatewayResult, error)
}
