package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/piresc/roadbuddy/internal/pkg/circuitbreaker"
	"github.com/piresc/roadbuddy/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() Option {
	return WithRetryConfig(retry.Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   2 * time.Millisecond,
		Multiplier: 2,
	})
}

func TestDoJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1000), body["amount"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_1","status":"succeeded"}`))
	}))
	defer server.Close()

	client := NewEnhancedClient(nil, time.Second, WithHeader("Authorization", "Bearer sk_test"))

	var out struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	err := client.DoJSON(context.Background(), http.MethodPost, server.URL+"/v1/authorizations",
		map[string]string{"Idempotency-Key": "key-1"}, map[string]int64{"amount": 1000}, &out)

	require.NoError(t, err)
	assert.Equal(t, "pi_1", out.ID)
	assert.Equal(t, "succeeded", out.Status)
}

func TestDoJSON_RetriesServerErrorsAndReplaysBody(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ride-1", body["ride_id"])

		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewEnhancedClient(nil, time.Second, fastRetry())
	err := client.DoJSON(context.Background(), http.MethodPost, server.URL, nil, map[string]string{"ride_id": "ride-1"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDoJSON_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":"card declined"}`))
	}))
	defer server.Close()

	client := NewEnhancedClient(nil, time.Second, fastRetry())
	err := client.DoJSON(context.Background(), http.MethodPost, server.URL, nil, nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusPaymentRequired, httpErr.StatusCode)
	assert.Equal(t, "card declined", httpErr.Message)
	assert.False(t, httpErr.IsServerError())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	for _, stats := range client.GetCircuitBreakerStats() {
		assert.Equal(t, uint32(0), stats.TotalFailures)
	}
}

func TestDoJSON_CircuitOpensOnRepeatedServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewEnhancedClient(nil, time.Second, WithRetryConfig(retry.Config{MaxRetries: 0}))

	var lastErr error
	for i := 0; i < 6; i++ {
		lastErr = client.DoJSON(context.Background(), http.MethodGet, server.URL, nil, nil, nil)
	}

	assert.ErrorIs(t, lastErr, circuitbreaker.ErrCircuitBreakerOpen)
}

func TestDo_GetRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewEnhancedClient(nil, 0)
	req, err := http.NewRequest(http.MethodGet, server.URL+"/health", nil)
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoJSON_MarshalError(t *testing.T) {
	client := NewEnhancedClient(nil, time.Second)
	err := client.DoJSON(context.Background(), http.MethodPost, "http://localhost", nil, make(chan int), nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal request body")
}
