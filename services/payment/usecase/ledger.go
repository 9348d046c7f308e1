package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
	"github.com/piresc/roadbuddy/services/payment"
)

const defaultGatewayTimeout = 5 * time.Second

// ledgerUC implements payment.LedgerUC
type ledgerUC struct {
	cfg      *models.Config
	repo     payment.PaymentRepo
	gw       payment.SettlementGW
	timeout  time.Duration
	currency string
}

// NewLedgerUC creates the ledger that records every gateway call
func NewLedgerUC(
	cfg *models.Config,
	repo payment.PaymentRepo,
	gw payment.SettlementGW,
) (payment.LedgerUC, error) {
	if repo == nil || gw == nil {
		return nil, errors.New("payment repository and gateway are required")
	}
	if cfg == nil {
		cfg = &models.Config{}
	}

	timeout := time.Duration(cfg.Payment.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultGatewayTimeout
	}
	currency := cfg.Payment.Currency
	if currency == "" {
		currency = "usd"
	}

	return &ledgerUC{
		cfg:      cfg,
		repo:     repo,
		gw:       gw,
		timeout:  timeout,
		currency: currency,
	}, nil
}

type gatewayCall func(ctx context.Context, record *models.PaymentRecord) (*models.GatewayResult, error)

func (uc *ledgerUC) Authorize(ctx context.Context, rideID, payerID string, amount int64, idempotencyKey string) (*models.PaymentRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}
	record := &models.PaymentRecord{
		RideID:         rideID,
		PayerID:        payerID,
		Amount:         amount,
		Kind:           models.PaymentKindAuthorization,
		IdempotencyKey: idempotencyKey,
	}
	return uc.execute(ctx, record, func(ctx context.Context, r *models.PaymentRecord) (*models.GatewayResult, error) {
		return uc.gw.Authorize(ctx, r.PayerID, r.Amount, r.IdempotencyKey)
	})
}

func (uc *ledgerUC) Capture(ctx context.Context, auth *models.PaymentRecord, idempotencyKey string) (*models.PaymentRecord, error) {
	if err := checkAuthorization(auth); err != nil {
		return nil, err
	}
	if auth.Settlement == models.SettlementVoided {
		return nil, fmt.Errorf("%w: authorization %s was voided", models.ErrPayment, auth.ID)
	}

	record := &models.PaymentRecord{
		RideID:         auth.RideID,
		PayerID:        auth.PayerID,
		Amount:         auth.Amount,
		Kind:           models.PaymentKindCapture,
		IntentID:       auth.IntentID,
		IdempotencyKey: idempotencyKey,
	}
	return uc.execute(ctx, record, func(ctx context.Context, r *models.PaymentRecord) (*models.GatewayResult, error) {
		return uc.gw.Capture(ctx, auth.IntentID, r.IdempotencyKey)
	})
}

// Void releases the hold behind auth and annotates it voided. Voiding twice
// is a no-op.
func (uc *ledgerUC) Void(ctx context.Context, auth *models.PaymentRecord, idempotencyKey string) error {
	if err := checkAuthorization(auth); err != nil {
		return err
	}
	if auth.Settlement == models.SettlementVoided {
		return nil
	}

	err := nrpkg.WithSegment(ctx, "Ledger/void", func() error {
		callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		defer cancel()

		if _, err := uc.gw.Void(callCtx, auth.IntentID, idempotencyKey); err != nil {
			return uc.gatewayError(callCtx, "void", idempotencyKey, err)
		}
		return nil
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to void authorization",
			logger.RideID(auth.RideID),
			logger.String("payer_id", auth.PayerID),
			logger.String("record_id", auth.ID.String()),
			logger.Err(err))
		return err
	}

	if err := uc.repo.SetSettlement(context.WithoutCancel(ctx), auth.ID, models.SettlementVoided); err != nil {
		return fmt.Errorf("failed to mark authorization voided: %w", err)
	}
	auth.Settlement = models.SettlementVoided

	logger.InfoCtx(ctx, "Authorization voided",
		logger.RideID(auth.RideID),
		logger.String("payer_id", auth.PayerID),
		logger.String("record_id", auth.ID.String()))
	return nil
}

// Charge reuses a succeeded authorization under the same key, so a retry
// after a failed capture does not place a second hold.
func (uc *ledgerUC) Charge(ctx context.Context, rideID, payerID string, amount int64, idempotencyKey string) (*models.PaymentRecord, error) {
	existing, err := uc.findByKey(ctx, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.PaymentStatusSucceeded {
		return existing, nil
	}

	auth, err := uc.Authorize(ctx, rideID, payerID, amount, idempotencyKey+":auth")
	if err != nil {
		return nil, err
	}
	return uc.Capture(ctx, auth, idempotencyKey)
}

func (uc *ledgerUC) Refund(ctx context.Context, rideID, payerID string, amount int64, idempotencyKey string) (*models.PaymentRecord, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}
	record := &models.PaymentRecord{
		RideID:         rideID,
		PayerID:        payerID,
		Amount:         amount,
		Kind:           models.PaymentKindRefund,
		IdempotencyKey: idempotencyKey,
	}
	return uc.execute(ctx, record, func(ctx context.Context, r *models.PaymentRecord) (*models.GatewayResult, error) {
		return uc.gw.Refund(ctx, r.PayerID, r.Amount, r.IdempotencyKey)
	})
}

func (uc *ledgerUC) MarkSettlement(ctx context.Context, recordID uuid.UUID, outcome models.SettlementOutcome) error {
	if err := uc.repo.SetSettlement(ctx, recordID, outcome); err != nil {
		return fmt.Errorf("failed to mark settlement %q: %w", outcome, err)
	}
	return nil
}

func (uc *ledgerUC) FindCapture(ctx context.Context, rideID, payerID string) (*models.PaymentRecord, error) {
	return uc.repo.FindCapture(ctx, rideID, payerID)
}

func (uc *ledgerUC) ListByRide(ctx context.Context, rideID string) ([]*models.PaymentRecord, error) {
	return uc.repo.ListByRide(ctx, rideID)
}

// execute finds the live record for the key or creates a pending one, calls
// the gateway under the configured deadline and completes the record with
// the outcome. A succeeded record is returned without calling the gateway.
func (uc *ledgerUC) execute(ctx context.Context, tmpl *models.PaymentRecord, call gatewayCall) (*models.PaymentRecord, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "Ledger/"+string(tmpl.Kind), func() (*models.PaymentRecord, error) {
		record, err := uc.prepare(ctx, tmpl)
		if err != nil {
			return nil, err
		}
		if record.Status == models.PaymentStatusSucceeded {
			logger.Debug("Payment already settled for key",
				logger.IdempotencyKey(record.IdempotencyKey),
				logger.String("record_id", record.ID.String()))
			return record, nil
		}

		callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
		defer cancel()
		res, callErr := call(callCtx, record)

		// the outcome is written even when the caller has gone away
		writeCtx := context.WithoutCancel(ctx)

		if callErr != nil {
			outErr := uc.gatewayError(callCtx, string(record.Kind), record.IdempotencyKey, callErr)
			reason := callErr.Error()
			if errors.Is(outErr, models.ErrPaymentTimeout) {
				reason = "timeout"
			}
			failed, err := uc.repo.CompleteRecord(writeCtx, record.ID, models.PaymentStatusFailed, "", reason)
			if err != nil {
				logger.ErrorCtx(ctx, "Failed to mark payment record failed",
					logger.String("record_id", record.ID.String()),
					logger.Err(err))
			} else {
				nrpkg.RecordPaymentEvent(ctx, failed)
			}
			logger.WarnCtx(ctx, "Payment gateway call failed",
				logger.RideID(record.RideID),
				logger.String("payer_id", record.PayerID),
				logger.String("kind", string(record.Kind)),
				logger.String("record_id", record.ID.String()),
				logger.Cents("amount", record.Amount),
				logger.Err(callErr))
			return nil, outErr
		}

		completed, err := uc.repo.CompleteRecord(writeCtx, record.ID, models.PaymentStatusSucceeded, res.Reference, "")
		if errors.Is(err, models.ErrRecordFinalized) {
			// a concurrent resume of the same key got there first
			if latest, findErr := uc.findByKey(writeCtx, record.IdempotencyKey); findErr == nil && latest != nil && latest.Status == models.PaymentStatusSucceeded {
				return latest, nil
			}
		}
		if err != nil {
			logger.ErrorCtx(ctx, "Payment succeeded but record could not be completed",
				logger.String("record_id", record.ID.String()),
				logger.IdempotencyKey(record.IdempotencyKey),
				logger.Err(err))
			return nil, fmt.Errorf("failed to complete payment record %s: %w", record.ID, err)
		}

		nrpkg.RecordPaymentEvent(ctx, completed)
		logger.InfoCtx(ctx, "Payment gateway call succeeded",
			logger.RideID(completed.RideID),
			logger.String("payer_id", completed.PayerID),
			logger.String("kind", string(completed.Kind)),
			logger.String("record_id", completed.ID.String()),
			logger.Cents("amount", completed.Amount))
		return completed, nil
	})
}

// prepare returns the record to act on: an earlier succeeded or pending
// record for the key, or a freshly created pending one
func (uc *ledgerUC) prepare(ctx context.Context, tmpl *models.PaymentRecord) (*models.PaymentRecord, error) {
	existing, err := uc.findByKey(ctx, tmpl.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != models.PaymentStatusFailed {
		if existing.Kind != tmpl.Kind || existing.Amount != tmpl.Amount || existing.PayerID != tmpl.PayerID {
			return nil, fmt.Errorf("%w: idempotency key %s reused for a different payment", models.ErrValidation, tmpl.IdempotencyKey)
		}
		return existing, nil
	}

	record := *tmpl
	record.ID = uuid.Nil
	record.Status = models.PaymentStatusPending
	if record.Currency == "" {
		record.Currency = uc.currency
	}
	if err := uc.repo.CreateRecord(ctx, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (uc *ledgerUC) findByKey(ctx context.Context, key string) (*models.PaymentRecord, error) {
	record, err := uc.repo.FindLatestByKey(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up payment %s: %w", key, err)
	}
	return record, nil
}

func (uc *ledgerUC) gatewayError(callCtx context.Context, op, key string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s after %s", models.ErrPaymentTimeout, op, key, uc.timeout)
	}
	return fmt.Errorf("%w: %s %s: %v", models.ErrPayment, op, key, err)
}

func checkAuthorization(auth *models.PaymentRecord) error {
	if auth == nil || auth.Kind != models.PaymentKindAuthorization {
		return fmt.Errorf("%w: not an authorization record", models.ErrValidation)
	}
	if auth.Status != models.PaymentStatusSucceeded || auth.IntentID == "" {
		return fmt.Errorf("%w: authorization %s is %s", models.ErrPayment, auth.ID, auth.Status)
	}
	return nil
}
