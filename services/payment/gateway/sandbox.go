package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// ErrDeclined is a definitive refusal from the processor
var ErrDeclined = errors.New("payment declined")

// Operation names used for failure injection and call counting
const (
	OpAuthorize = "authorize"
	OpCapture   = "capture"
	OpRefund    = "refund"
	OpVoid      = "void"
)

type intentState string

const (
	intentAuthorized intentState = "authorized"
	intentCaptured   intentState = "captured"
	intentVoided     intentState = "voided"
)

type intent struct {
	payerID string
	amount  int64
	state   intentState
}

type failure struct {
	op      string
	payerID string
	err     error
}

// SandboxGW is an in-process processor for local runs and tests. Results
// are replayed per idempotency key; injected failures are not remembered,
// so a retry after ClearFailures goes through.
type SandboxGW struct {
	mu       sync.Mutex
	latency  time.Duration
	replies  map[string]*models.GatewayResult
	intents  map[string]*intent
	failures []failure
	calls    map[string]int
	refunds  map[string]int64
}

type SandboxOption func(*SandboxGW)

// WithLatency delays every call, honouring context cancellation
func WithLatency(d time.Duration) SandboxOption {
	return func(s *SandboxGW) { s.latency = d }
}

func NewSandboxGW(opts ...SandboxOption) *SandboxGW {
	s := &SandboxGW{
		replies: make(map[string]*models.GatewayResult),
		intents: make(map[string]*intent),
		calls:   make(map[string]int),
		refunds: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailOn makes op fail with err. An empty payerID matches every payer; for
// capture and void the payer is the one that owns the intent.
func (s *SandboxGW) FailOn(op, payerID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{op: op, payerID: payerID, err: err})
}

func (s *SandboxGW) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = nil
}

// SetLatency changes the delay applied to later calls
func (s *SandboxGW) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// Calls returns how many times op reached the processor, replays included
func (s *SandboxGW) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Refunded returns the total refunded to payerID
func (s *SandboxGW) Refunded(payerID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refunds[payerID]
}

// IntentState returns "authorized", "captured", "voided" or "" if unknown
func (s *SandboxGW) IntentState(intentID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in, ok := s.intents[intentID]; ok {
		return string(in.state)
	}
	return ""
}

func (s *SandboxGW) Authorize(ctx context.Context, payerID string, amount int64, idempotencyKey string) (*models.GatewayResult, error) {
	return s.call(ctx, OpAuthorize, idempotencyKey, func() (string, *models.GatewayResult, error) {
		if amount <= 0 {
			return payerID, nil, fmt.Errorf("%w: amount must be positive", ErrDeclined)
		}
		id := "pi_" + uuid.NewString()
		s.intents[id] = &intent{payerID: payerID, amount: amount, state: intentAuthorized}
		return payerID, &models.GatewayResult{Reference: id, Status: string(intentAuthorized), Amount: amount}, nil
	})
}

func (s *SandboxGW) Capture(ctx context.Context, intentID string, idempotencyKey string) (*models.GatewayResult, error) {
	return s.call(ctx, OpCapture, idempotencyKey, func() (string, *models.GatewayResult, error) {
		in, ok := s.intents[intentID]
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown intent %s", ErrDeclined, intentID)
		}
		if in.state != intentAuthorized {
			return in.payerID, nil, fmt.Errorf("%w: intent %s is %s", ErrDeclined, intentID, in.state)
		}
		return in.payerID, &models.GatewayResult{Reference: intentID, Status: string(intentCaptured), Amount: in.amount}, nil
	}, func(res *models.GatewayResult) {
		s.intents[intentID].state = intentCaptured
	})
}

func (s *SandboxGW) Void(ctx context.Context, intentID string, idempotencyKey string) (*models.GatewayResult, error) {
	return s.call(ctx, OpVoid, idempotencyKey, func() (string, *models.GatewayResult, error) {
		in, ok := s.intents[intentID]
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown intent %s", ErrDeclined, intentID)
		}
		if in.state == intentCaptured {
			return in.payerID, nil, fmt.Errorf("%w: intent %s already captured", ErrDeclined, intentID)
		}
		return in.payerID, &models.GatewayResult{Reference: intentID, Status: string(intentVoided), Amount: in.amount}, nil
	}, func(res *models.GatewayResult) {
		s.intents[intentID].state = intentVoided
	})
}

func (s *SandboxGW) Refund(ctx context.Context, payerID string, amount int64, idempotencyKey string) (*models.GatewayResult, error) {
	return s.call(ctx, OpRefund, idempotencyKey, func() (string, *models.GatewayResult, error) {
		if amount <= 0 {
			return payerID, nil, fmt.Errorf("%w: amount must be positive", ErrDeclined)
		}
		return payerID, &models.GatewayResult{Reference: "re_" + uuid.NewString(), Status: "succeeded", Amount: amount}, nil
	}, func(res *models.GatewayResult) {
		s.refunds[payerID] += amount
	})
}

// call replays a stored reply for the key, otherwise runs op and applies
// its effects only when no injected failure matches
func (s *SandboxGW) call(ctx context.Context, op, key string, run func() (string, *models.GatewayResult, error), effects ...func(*models.GatewayResult)) (*models.GatewayResult, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls[op]++
	replayKey := op + ":" + key
	if res, ok := s.replies[replayKey]; ok {
		copied := *res
		return &copied, nil
	}

	payerID, res, err := run()
	if err != nil {
		logger.Debug("Sandbox processor declined", logger.String("op", op), logger.Err(err))
		return nil, err
	}
	if err := s.injected(op, payerID); err != nil {
		return nil, err
	}

	for _, apply := range effects {
		apply(res)
	}
	s.replies[replayKey] = res

	copied := *res
	return &copied, nil
}

func (s *SandboxGW) injected(op, payerID string) error {
	for _, f := range s.failures {
		if f.op == op && (f.payerID == "" || f.payerID == payerID) {
			return f.err
		}
	}
	return nil
}

func (s *SandboxGW) wait(ctx context.Context) error {
	s.mu.Lock()
	latency := s.latency
	s.mu.Unlock()

	if latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
