package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	httpclient "github.com/piresc/roadbuddy/internal/pkg/http"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
)

// ProcessorGW talks to the card processor's REST API. Every request carries
// the caller's idempotency key, so the retries done by the client are safe.
type ProcessorGW struct {
	client   *httpclient.EnhancedClient
	baseURL  string
	currency string
	log      *logger.ZapLogger
}

type authorizeRequest struct {
	PayerID  string `json:"payer_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type refundRequest struct {
	PayerID  string `json:"payer_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func NewProcessorGW(cfg models.PaymentConfig, log *logger.ZapLogger) *ProcessorGW {
	if log == nil {
		log = logger.NewNopLogger()
	}
	timeout := time.Duration(cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := httpclient.NewEnhancedClient(log, timeout,
		httpclient.WithHeader("Authorization", "Bearer "+cfg.SecretKey))
	return NewProcessorGWWithClient(client, cfg, log)
}

// NewProcessorGWWithClient lets callers supply their own retry and breaker setup
func NewProcessorGWWithClient(client *httpclient.EnhancedClient, cfg models.PaymentConfig, log *logger.ZapLogger) *ProcessorGW {
	if log == nil {
		log = logger.NewNopLogger()
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}
	return &ProcessorGW{
		client:   client,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		currency: currency,
		log:      log,
	}
}

func (g *ProcessorGW) Authorize(ctx context.Context, payerID string, amount int64, idempotencyKey string) (*models.GatewayResult, error) {
	body := authorizeRequest{PayerID: payerID, Amount: amount, Currency: g.currency}
	return g.post(ctx, "authorize", "/v1/authorizations", idempotencyKey, body)
}

func (g *ProcessorGW) Capture(ctx context.Context, intentID string, idempotencyKey string) (*models.GatewayResult, error) {
	return g.post(ctx, "capture", fmt.Sprintf("/v1/authorizations/%s/capture", intentID), idempotencyKey, nil)
}

func (g *ProcessorGW) Void(ctx context.Context, intentID string, idempotencyKey string) (*models.GatewayResult, error) {
	return g.post(ctx, "void", fmt.Sprintf("/v1/authorizations/%s/void", intentID), idempotencyKey, nil)
}

func (g *ProcessorGW) Refund(ctx context.Context, payerID string, amount int64, idempotencyKey string) (*models.GatewayResult, error) {
	body := refundRequest{PayerID: payerID, Amount: amount, Currency: g.currency}
	return g.post(ctx, "refund", "/v1/refunds", idempotencyKey, body)
}

func (g *ProcessorGW) post(ctx context.Context, op, path, idempotencyKey string, body interface{}) (*models.GatewayResult, error) {
	url := g.baseURL + path
	headers := map[string]string{"Idempotency-Key": idempotencyKey}

	var result models.GatewayResult
	err := nrpkg.WithSegment(ctx, "Processor/"+op, func() error {
		return g.client.DoJSON(ctx, http.MethodPost, url, headers, body, &result)
	})
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && !httpErr.IsServerError() {
			g.log.Warn("Processor declined request",
				logger.String("op", op),
				logger.IdempotencyKey(idempotencyKey),
				logger.Int("status", httpErr.StatusCode))
			return nil, fmt.Errorf("%w: %s", ErrDeclined, httpErr.Message)
		}
		return nil, fmt.Errorf("processor %s failed: %w", op, err)
	}

	if strings.EqualFold(result.Status, "failed") || strings.EqualFold(result.Status, "declined") {
		return nil, fmt.Errorf("%w: %s %s", ErrDeclined, op, result.Status)
	}
	return &result, nil
}
