package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxGW_AuthorizeCapture(t *testing.T) {
	gw := NewSandboxGW()
	ctx := context.Background()

	auth, err := gw.Authorize(ctx, "p1", 1000, "k:auth")
	require.NoError(t, err)
	assert.Equal(t, "authorized", gw.IntentState(auth.Reference))

	capture, err := gw.Capture(ctx, auth.Reference, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), capture.Amount)
	assert.Equal(t, "captured", gw.IntentState(auth.Reference))

	_, err = gw.Void(ctx, auth.Reference, "k:void")
	assert.True(t, errors.Is(err, ErrDeclined))
}

func TestSandboxGW_ReplaysByKey(t *testing.T) {
	gw := NewSandboxGW()
	ctx := context.Background()

	first, err := gw.Refund(ctx, "p1", 1000, "refund:r:p1")
	require.NoError(t, err)
	second, err := gw.Refund(ctx, "p1", 1000, "refund:r:p1")
	require.NoError(t, err)

	assert.Equal(t, first.Reference, second.Reference)
	assert.Equal(t, int64(1000), gw.Refunded("p1"))
	assert.Equal(t, 2, gw.Calls(OpRefund))
}

func TestSandboxGW_InjectedFailureNotReplayed(t *testing.T) {
	gw := NewSandboxGW()
	ctx := context.Background()
	gw.FailOn(OpRefund, "p2", ErrDeclined)

	_, err := gw.Refund(ctx, "p1", 1000, "refund:r:p1")
	require.NoError(t, err)

	_, err = gw.Refund(ctx, "p2", 1000, "refund:r:p2")
	assert.True(t, errors.Is(err, ErrDeclined))
	assert.Equal(t, int64(0), gw.Refunded("p2"))

	gw.ClearFailures()
	_, err = gw.Refund(ctx, "p2", 1000, "refund:r:p2")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), gw.Refunded("p2"))
}

func TestSandboxGW_VoidAfterVoid(t *testing.T) {
	gw := NewSandboxGW()
	ctx := context.Background()

	auth, err := gw.Authorize(ctx, "p1", 1000, "k:auth")
	require.NoError(t, err)
	_, err = gw.Void(ctx, auth.Reference, "k:void")
	require.NoError(t, err)

	_, err = gw.Capture(ctx, auth.Reference, "k")
	assert.True(t, errors.Is(err, ErrDeclined))
	assert.Equal(t, "voided", gw.IntentState(auth.Reference))
}

func TestSandboxGW_LatencyHonoursContext(t *testing.T) {
	gw := NewSandboxGW(WithLatency(time.Second))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gw.Authorize(ctx, "p1", 1000, "k:auth")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 0, gw.Calls(OpAuthorize))
}

func TestSandboxGW_RejectsNonPositiveAmount(t *testing.T) {
	gw := NewSandboxGW()

	_, err := gw.Authorize(context.Background(), "p1", 0, "k:auth")
	assert.True(t, errors.Is(err, ErrDeclined))
}
