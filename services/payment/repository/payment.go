package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/roadbuddy/internal/pkg/database"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

const recordColumns = `id, ride_id, payer_id, amount, currency, kind, status, intent_id,
	idempotency_key, settlement, failure_reason, created_at, updated_at`

// PaymentRepo stores payment records in Postgres. A partial unique index on
// idempotency_key over pending and succeeded rows keeps one live record per key.
type PaymentRepo struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) CreateRecord(ctx context.Context, record *models.PaymentRecord) error {
	now := time.Now().UTC()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Status == "" {
		record.Status = models.PaymentStatusPending
	}
	record.CreatedAt = now
	record.UpdatedAt = now

	query := `
		INSERT INTO payment_records (
			id, ride_id, payer_id, amount, currency, kind, status, intent_id,
			idempotency_key, settlement, failure_reason, created_at, updated_at
		) VALUES (
			:id, :ride_id, :payer_id, :amount, :currency, :kind, :status, :intent_id,
			:idempotency_key, :settlement, :failure_reason, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s already in progress", models.ErrPayment, record.IdempotencyKey)
		}
		return fmt.Errorf("failed to insert payment record: %w", err)
	}
	return nil
}

func (r *PaymentRepo) CompleteRecord(ctx context.Context, id uuid.UUID, status models.PaymentStatus, intentID, failureReason string) (*models.PaymentRecord, error) {
	if !status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s is not a terminal status", models.ErrValidation, status)
	}

	query := `
		UPDATE payment_records
		SET status = $1,
			intent_id = CASE WHEN $2 = '' THEN intent_id ELSE $2 END,
			failure_reason = $3,
			updated_at = $4
		WHERE id = $5 AND status = 'pending'
		RETURNING ` + recordColumns

	var record models.PaymentRecord
	err := r.db.GetContext(ctx, &record, query, status, intentID, failureReason, time.Now().UTC(), id)
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to complete payment record: %w", err)
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM payment_records WHERE id = $1)`, id); err != nil {
		return nil, fmt.Errorf("failed to check payment record: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", models.ErrRecordNotFound, id)
	}
	return nil, fmt.Errorf("%w: %s", models.ErrRecordFinalized, id)
}

func (r *PaymentRepo) SetSettlement(ctx context.Context, id uuid.UUID, outcome models.SettlementOutcome) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payment_records SET settlement = $1, updated_at = $2 WHERE id = $3`,
		outcome, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update settlement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", models.ErrRecordNotFound, id)
	}
	return nil
}

func (r *PaymentRepo) FindLatestByKey(ctx context.Context, idempotencyKey string) (*models.PaymentRecord, error) {
	query := `SELECT ` + recordColumns + `
		FROM payment_records
		WHERE idempotency_key = $1
		ORDER BY created_at DESC
		LIMIT 1`
	return r.getOne(ctx, query, idempotencyKey)
}

func (r *PaymentRepo) FindCapture(ctx context.Context, rideID, payerID string) (*models.PaymentRecord, error) {
	query := `SELECT ` + recordColumns + `
		FROM payment_records
		WHERE ride_id = $1 AND payer_id = $2 AND kind = $3 AND status = $4
		ORDER BY created_at DESC
		LIMIT 1`
	return r.getOne(ctx, query, rideID, payerID, models.PaymentKindCapture, models.PaymentStatusSucceeded)
}

func (r *PaymentRepo) ListByRide(ctx context.Context, rideID string) ([]*models.PaymentRecord, error) {
	query := `SELECT ` + recordColumns + `
		FROM payment_records
		WHERE ride_id = $1
		ORDER BY created_at ASC`

	var records []*models.PaymentRecord
	if err := r.db.SelectContext(ctx, &records, query, rideID); err != nil {
		return nil, fmt.Errorf("failed to list payment records: %w", err)
	}
	return records, nil
}

func (r *PaymentRepo) getOne(ctx context.Context, query string, args ...interface{}) (*models.PaymentRecord, error) {
	var record models.PaymentRecord
	if err := r.db.GetContext(ctx, &record, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get payment record: %w", err)
	}
	return &record, nil
}
