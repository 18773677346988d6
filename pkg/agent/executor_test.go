package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	failures int
	calls    int
}

func (a *scriptedAgent) Run(ctx context.Context, task string, tools *ToolSet) (*Result, error) {
	a.calls++
	if a.calls <= a.failures {
		return nil, errors.New("transient failure")
	}
	return &Result{
		Text:  "done",
		Usage: map[string]interface{}{"input_token_count": 10, "output_token_count": 5},
	}, nil
}

type blockingAgent struct {
	started chan struct{}
}

func (a *blockingAgent) Run(ctx context.Context, task string, tools *ToolSet) (*Result, error) {
	close(a.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestExecuteSucceedsFirstAttempt(t *testing.T) {
	e := NewExecutor(2, time.Millisecond, 10*time.Millisecond)
	a := &scriptedAgent{}

	result, err := e.Execute(context.Background(), a, "task", nil)
	require.NoError(t, err)
	assert.Equal(t, "done", result.Text)
	assert.Equal(t, 1, a.calls)
}

func TestExecuteRetriesTransientFailures(t *testing.T) {
	e := NewExecutor(2, time.Millisecond, 10*time.Millisecond)
	a := &scriptedAgent{failures: 2}

	result, err := e.Execute(context.Background(), a, "task", nil)
	require.NoError(t, err)
	assert.Equal(t, "done", result.Text)
	assert.Equal(t, 3, a.calls)
}

func TestExecuteExhaustsRetries(t *testing.T) {
	e := NewExecutor(2, time.Millisecond, 10*time.Millisecond)
	a := &scriptedAgent{failures: 10}

	_, err := e.Execute(context.Background(), a, "task", nil)
	require.Error(t, err)
	// 1 attempt + 2 retries.
	assert.Equal(t, 3, a.calls)
}

func TestExecuteDoublesRetryDelay(t *testing.T) {
	e := NewExecutor(2, 20*time.Millisecond, time.Second)
	a := &scriptedAgent{failures: 10}

	start := time.Now()
	_, err := e.Execute(context.Background(), a, "task", nil)
	elapsed := time.Since(start)

	require.Error(t, err)
	// Delays are deterministic: 20ms before the second attempt, 40ms before
	// the third.
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestExecuteAbortsOnCancellation(t *testing.T) {
	e := NewExecutor(5, time.Millisecond, 10*time.Millisecond)
	a := &blockingAgent{started: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-a.started
		cancel()
	}()

	_, err := e.Execute(ctx, a, "task", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
