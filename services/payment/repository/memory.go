package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// MemoryPaymentRepo keeps records in process. It enforces the same one live
// record per idempotency key rule as the Postgres index.
type MemoryPaymentRepo struct {
	mu      sync.RWMutex
	records []*models.PaymentRecord
	byID    map[uuid.UUID]*models.PaymentRecord
}

func NewMemoryPaymentRepository() *MemoryPaymentRepo {
	return &MemoryPaymentRepo{byID: make(map[uuid.UUID]*models.PaymentRecord)}
}

func (r *MemoryPaymentRepo) CreateRecord(ctx context.Context, record *models.PaymentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.IdempotencyKey == record.IdempotencyKey && existing.Status != models.PaymentStatusFailed {
			return fmt.Errorf("%w: payment %s already in progress", models.ErrPayment, record.IdempotencyKey)
		}
	}

	now := time.Now().UTC()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Status == "" {
		record.Status = models.PaymentStatusPending
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	stored := *record
	r.records = append(r.records, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *MemoryPaymentRepo) CompleteRecord(ctx context.Context, id uuid.UUID, status models.PaymentStatus, intentID, failureReason string) (*models.PaymentRecord, error) {
	if !status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s is not a terminal status", models.ErrValidation, status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrRecordNotFound, id)
	}
	if record.Status != models.PaymentStatusPending {
		return nil, fmt.Errorf("%w: %s", models.ErrRecordFinalized, id)
	}

	record.Status = status
	if intentID != "" {
		record.IntentID = intentID
	}
	record.FailureReason = failureReason
	record.UpdatedAt = time.Now().UTC()

	out := *record
	return &out, nil
}

func (r *MemoryPaymentRepo) SetSettlement(ctx context.Context, id uuid.UUID, outcome models.SettlementOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrRecordNotFound, id)
	}
	record.Settlement = outcome
	record.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryPaymentRepo) FindLatestByKey(ctx context.Context, idempotencyKey string) (*models.PaymentRecord, error) {
	return r.findLast(func(rec *models.PaymentRecord) bool {
		return rec.IdempotencyKey == idempotencyKey
	})
}

func (r *MemoryPaymentRepo) FindCapture(ctx context.Context, rideID, payerID string) (*models.PaymentRecord, error) {
	return r.findLast(func(rec *models.PaymentRecord) bool {
		return rec.RideID == rideID && rec.PayerID == payerID &&
			rec.Kind == models.PaymentKindCapture && rec.Status == models.PaymentStatusSucceeded
	})
}

func (r *MemoryPaymentRepo) ListByRide(ctx context.Context, rideID string) ([]*models.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.PaymentRecord
	for _, rec := range r.records {
		if rec.RideID == rideID {
			c := *rec
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *MemoryPaymentRepo) findLast(match func(*models.PaymentRecord) bool) (*models.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.records) - 1; i >= 0; i-- {
		if match(r.records[i]) {
			c := *r.records[i]
			return &c, nil
		}
	}
	return nil, models.ErrRecordNotFound
}
