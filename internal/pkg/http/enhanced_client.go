package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/piresc/roadbuddy/internal/pkg/circuitbreaker"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
	"github.com/piresc/roadbuddy/internal/pkg/retry"
)

// DefaultTimeout applies when NewEnhancedClient gets a zero timeout
const DefaultTimeout = 30 * time.Second

// HTTPError is a non-2xx response
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsServerError is true for 5xx responses
func (e *HTTPError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// EnhancedClient wraps http.Client with retries per request and a circuit
// breaker per upstream host. Only transport errors and 5xx responses are
// retried or counted against the breaker.
type EnhancedClient struct {
	client         *http.Client
	retrier        *retry.Retrier
	circuitManager *circuitbreaker.Manager
	logger         *logger.ZapLogger
	headers        map[string]string
}

// Option customises an EnhancedClient
type Option func(*EnhancedClient)

// WithRetryConfig replaces the default retry policy
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *EnhancedClient) {
		cfg.RetryableFunc = isRetryable
		c.retrier = retry.New(cfg, c.logger)
	}
}

// WithHeader sets a header on every request
func WithHeader(key, value string) Option {
	return func(c *EnhancedClient) {
		c.headers[key] = value
	}
}

func NewEnhancedClient(log *logger.ZapLogger, timeout time.Duration, opts ...Option) *EnhancedClient {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = isRetryable

	c := &EnhancedClient{
		client:  &http.Client{Timeout: timeout},
		retrier: retry.New(retryCfg, log),
		circuitManager: circuitbreaker.NewManagerWithDefaults(log, func(name string) circuitbreaker.Config {
			cfg := circuitbreaker.DefaultConfig(name)
			cfg.IsFailure = isUpstreamFailure
			return cfg
		}),
		logger:  log,
		headers: map[string]string{"Accept": "application/json"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req once through the breaker and retrier. The request body is
// not replayed, so only use Do for requests without a body.
func (c *EnhancedClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	return c.do(ctx, req.URL.Host, func(ctx context.Context) (*http.Request, error) {
		return req.Clone(ctx), nil
	})
}

// DoJSON marshals body, sends it with the given extra headers and decodes a
// 2xx response into out. Non-2xx responses come back as *HTTPError.
func (c *EnhancedClient) DoJSON(ctx context.Context, method, url string, headers map[string]string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	build := func(ctx context.Context) (*http.Request, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	}

	first, err := build(ctx)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, first.URL.Host, build)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &HTTPError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *EnhancedClient) do(ctx context.Context, host string, build func(context.Context) (*http.Request, error)) (*http.Response, error) {
	if host == "" {
		host = "unknown"
	}

	var resp *http.Response
	err := c.circuitManager.Execute(ctx, host, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			req, err := build(ctx)
			if err != nil {
				return retry.Permanent(err)
			}
			for k, v := range c.headers {
				if req.Header.Get(k) == "" {
					req.Header.Set(k, v)
				}
			}

			r, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
				return c.client.Do(req)
			})
			if err != nil {
				return err
			}

			if r.StatusCode >= http.StatusInternalServerError {
				msg := readMessage(r.Body)
				r.Body.Close()
				return &HTTPError{StatusCode: r.StatusCode, Message: msg}
			}

			resp = r
			return nil
		})
	})
	if err != nil {
		c.logger.Warn("HTTP request failed",
			logger.String("host", host),
			logger.Err(err))
		return nil, err
	}
	return resp, nil
}

// GetCircuitBreakerStats returns per-host breaker statistics
func (c *EnhancedClient) GetCircuitBreakerStats() map[string]circuitbreaker.Stats {
	return c.circuitManager.GetStats()
}

func isRetryable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.IsServerError()
	}
	return retry.IsRetryable(err)
}

func isUpstreamFailure(err error) bool {
	if err == nil {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.IsServerError()
	}
	return !errors.Is(err, context.Canceled)
}

// readMessage extracts {"error": "..."} or {"message": "..."} from a body,
// falling back to the raw text
func readMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "empty response"
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
