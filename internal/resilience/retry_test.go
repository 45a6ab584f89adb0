package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestDoVal_SucceedsFirstTry(t *testing.T) {
	calls := 0
	out, err := DoVal(context.Background(), fastRetry(), func(context.Context) (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, out)
	assert.Equal(t, 1, calls)
}

func TestDoVal_RetriesTransientThenSucceeds(t *testing.T) {
	calls := 0
	out, err := DoVal(context.Background(), fastRetry(), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", NewTransientError(eris.New("overloaded"), 529)
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 3, calls)
}

func TestDoVal_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	_, err := DoVal(context.Background(), fastRetry(), func(context.Context) (int, error) {
		calls++
		return 0, NewTransientError(eris.New("still down"), 503)
	})
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoVal_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	_, err := DoVal(context.Background(), fastRetry(), func(context.Context) (int, error) {
		calls++
		return 0, eris.New("bad request")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoVal_ContextCancellationStopsRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := DoVal(ctx, fastRetry(), func(context.Context) (int, error) {
		calls++
		cancel()
		return 0, NewTransientError(eris.New("transient"), 503)
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(eris.New("validation failed")))
	assert.True(t, IsTransient(NewTransientError(eris.New("x"), 500)))
	assert.True(t, IsTransient(eris.New("read tcp: connection reset by peer")))
	assert.True(t, IsTransient(eris.New("429 rate limit exceeded")))
	assert.True(t, IsTransient(eris.New("dial tcp: i/o timeout")))
}

func TestComputeBackoff_CapsAtMax(t *testing.T) {
	cfg := applyDefaults(RetryConfig{
		InitialBackoff: time.Second,
		MaxBackoff:     2 * time.Second,
		Multiplier:     10,
		JitterFraction: -1, // normalized to no jitter
	})
	assert.Equal(t, time.Second, computeBackoff(0, cfg))
	assert.Equal(t, 2*time.Second, computeBackoff(1, cfg))
	assert.Equal(t, 2*time.Second, computeBackoff(5, cfg))
}
