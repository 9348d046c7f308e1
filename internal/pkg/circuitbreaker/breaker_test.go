package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream unavailable")

func failing(ctx context.Context) error { return errUpstream }
func passing(ctx context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cfg := DefaultConfig("processor")
	cfg.FailureThreshold = 2
	cb := New(cfg, nil)

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errUpstream)
	assert.Equal(t, StateClosed, cb.State())
	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cfg := DefaultConfig("processor")
	cfg.FailureThreshold = 1
	cfg.Timeout = time.Minute

	var transitions []State
	cfg.OnStateChange = func(name string, from, to State) { transitions = append(transitions, to) }

	cb := New(cfg, nil)
	now := time.Now()
	cb.now = func() time.Time { return now }

	_ = cb.Execute(context.Background(), failing)
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Minute)
	assert.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cfg := DefaultConfig("processor")
	cfg.FailureThreshold = 1
	cb := New(cfg, nil)
	now := time.Now()
	cb.now = func() time.Time { return now }

	_ = cb.Execute(context.Background(), failing)
	now = now.Add(cfg.Timeout + time.Second)

	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errUpstream)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	declined := errors.New("declined")
	cfg := DefaultConfig("processor")
	cfg.FailureThreshold = 1
	cfg.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, declined) }
	cb := New(cfg, nil)

	assert.ErrorIs(t, cb.Execute(context.Background(), func(ctx context.Context) error { return declined }), declined)
	assert.Equal(t, StateClosed, cb.State())
}

func TestManager_ReusesBreakerPerName(t *testing.T) {
	m := NewManager(nil)

	assert.NoError(t, m.Execute(context.Background(), "a", passing))
	assert.ErrorIs(t, m.Execute(context.Background(), "a", failing), errUpstream)
	assert.NoError(t, m.Execute(context.Background(), "b", passing))

	first, ok := m.Get("a")
	assert.True(t, ok)
	assert.Same(t, first, m.GetOrCreate("a", DefaultConfig("a")))

	stats := m.GetStats()
	assert.Len(t, stats, 2)
	assert.Equal(t, "CLOSED", stats["a"].State)
	assert.Equal(t, uint32(1), stats["a"].TotalFailures)
	assert.Equal(t, uint32(2), stats["a"].Requests)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "HALF_OPEN", StateHalfOpen.String())
	assert.Equal(t, "UNKNOWN", State(9).String())
}
