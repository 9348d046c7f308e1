package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentKind is the money movement a record tracks
type PaymentKind string

const (
	PaymentKindAuthorization PaymentKind = "authorization"
	PaymentKindCapture       PaymentKind = "capture"
	PaymentKindRefund        PaymentKind = "refund"
)

// PaymentStatus is Pending until the gateway answers, then terminal
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// IsTerminal reports whether the status can no longer change
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSucceeded || s == PaymentStatusFailed
}

// SettlementOutcome annotates how a passenger payment was finally settled.
// It never alters Status.
type SettlementOutcome string

const (
	SettlementNone     SettlementOutcome = ""
	SettlementVoided   SettlementOutcome = "voided"
	SettlementNoRefund SettlementOutcome = "no_refund"
	SettlementRefunded SettlementOutcome = "refunded"
)

// PaymentRecord tracks one money movement against the settlement gateway
type PaymentRecord struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	RideID         string            `json:"ride_id" db:"ride_id"`
	PayerID        string            `json:"payer_id" db:"payer_id"`
	Amount         int64             `json:"amount_cents" db:"amount"`
	Currency       string            `json:"currency" db:"currency"`
	Kind           PaymentKind       `json:"kind" db:"kind"`
	Status         PaymentStatus     `json:"status" db:"status"`
	IntentID       string            `json:"intent_id,omitempty" db:"intent_id"`
	IdempotencyKey string            `json:"idempotency_key" db:"idempotency_key"`
	Settlement     SettlementOutcome `json:"settlement,omitempty" db:"settlement"`
	FailureReason  string            `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}

// GatewayResult is what the settlement gateway reports for a call
type GatewayResult struct {
	Reference string `json:"id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
}
