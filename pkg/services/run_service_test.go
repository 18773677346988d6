package services

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/ent/enttest"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/store"
)

func newRunService(t *testing.T) (*RunService, *store.Store, *events.Manager) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	s := store.New(client, 0)
	m := events.NewManager(50, nil)
	return NewRunService(s, m), s, m
}

func TestNormalizeUsage(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want TokenUsage
	}{
		{
			name: "canonical keys",
			raw:  map[string]interface{}{"input_tokens": 100, "output_tokens": 40},
			want: TokenUsage{InputTokens: 100, OutputTokens: 40, TotalTokens: 140},
		},
		{
			name: "provider count keys",
			raw:  map[string]interface{}{"input_token_count": 7, "output_token_count": 3},
			want: TokenUsage{InputTokens: 7, OutputTokens: 3, TotalTokens: 10},
		},
		{
			name: "json decoded floats",
			raw:  map[string]interface{}{"input_tokens": float64(12), "output_tokens": float64(8)},
			want: TokenUsage{InputTokens: 12, OutputTokens: 8, TotalTokens: 20},
		},
		{
			name: "reported total ignored",
			raw:  map[string]interface{}{"input_tokens": 5, "output_tokens": 5, "total_tokens": 9000},
			want: TokenUsage{InputTokens: 5, OutputTokens: 5, TotalTokens: 10},
		},
		{
			name: "empty",
			raw:  map[string]interface{}{},
			want: TokenUsage{},
		},
		{
			name: "nil",
			raw:  nil,
			want: TokenUsage{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUsage(tt.raw))
		})
	}
}

func TestStageStartAndComplete(t *testing.T) {
	svc, _, m := newRunService(t)
	ctx := context.Background()
	sub := m.Subscribe()
	defer m.Unsubscribe(sub.ID)

	runID, err := svc.RecordStageStart(ctx, agentrun.StageFetch, "link-1", map[string]interface{}{"url": "https://example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	start := <-sub.C
	assert.Equal(t, events.EventTypeAgentRunStart, start.Type)
	assert.Equal(t, "fetch", start.Data["stage"])

	err = svc.RecordStageComplete(ctx, runID, true,
		map[string]interface{}{"content": "fetched"},
		map[string]interface{}{"input_token_count": 30, "output_token_count": 12})
	require.NoError(t, err)

	complete := <-sub.C
	assert.Equal(t, events.EventTypeAgentRunComplete, complete.Type)
	assert.Equal(t, "completed", complete.Data["status"])
	assert.Equal(t, 42, complete.Data["total_tokens"])

	run, err := svc.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)
	assert.Equal(t, 30, run.InputTokens)
	assert.Equal(t, 12, run.OutputTokens)
	assert.Equal(t, 42, run.TotalTokens)
}

func TestStageStartRequiresTrigger(t *testing.T) {
	svc, _, _ := newRunService(t)

	_, err := svc.RecordStageStart(context.Background(), agentrun.StageFetch, "", nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompleteUnknownRun(t *testing.T) {
	svc, _, _ := newRunService(t)

	err := svc.RecordStageComplete(context.Background(), "missing", true, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecoverOrphanedRuns(t *testing.T) {
	svc, _, _ := newRunService(t)
	ctx := context.Background()

	orphan, err := svc.RecordStageStart(ctx, agentrun.StageOrchestrator, "link-1", nil)
	require.NoError(t, err)

	finished, err := svc.RecordStageStart(ctx, agentrun.StageFetch, "link-1", nil)
	require.NoError(t, err)
	require.NoError(t, svc.RecordStageComplete(ctx, finished, true, nil,
		map[string]interface{}{"input_tokens": 10, "output_tokens": 5}))

	n, err := svc.RecoverOrphanedRuns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	run, err := svc.GetRun(ctx, orphan)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, run.Status)
	assert.Equal(t, "Recovered after process restart", run.Output["error"])

	// Completed runs keep their outcome.
	run, err = svc.GetRun(ctx, finished)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)

	// Second pass finds nothing.
	n, err = svc.RecoverOrphanedRuns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAggregateTokenUsage(t *testing.T) {
	svc, _, _ := newRunService(t)
	ctx := context.Background()

	for _, usage := range []map[string]interface{}{
		{"input_tokens": 100, "output_tokens": 50},
		{"input_token_count": 20, "output_token_count": 10},
	} {
		runID, err := svc.RecordStageStart(ctx, agentrun.StageReview, "link-9", nil)
		require.NoError(t, err)
		require.NoError(t, svc.RecordStageComplete(ctx, runID, true, nil, usage))
	}
	// A run for a different trigger must not count.
	other, err := svc.RecordStageStart(ctx, agentrun.StageReview, "link-other", nil)
	require.NoError(t, err)
	require.NoError(t, svc.RecordStageComplete(ctx, other, true, nil,
		map[string]interface{}{"input_tokens": 999, "output_tokens": 999}))

	u, err := svc.AggregateTokenUsage(ctx, "link-9")
	require.NoError(t, err)
	assert.Equal(t, TokenUsage{InputTokens: 120, OutputTokens: 60, TotalTokens: 180}, u)
}

func TestRunQueries(t *testing.T) {
	svc, _, _ := newRunService(t)
	ctx := context.Background()

	ok, err := svc.RecordStageStart(ctx, agentrun.StageDraft, "link-1", nil)
	require.NoError(t, err)
	require.NoError(t, svc.RecordStageComplete(ctx, ok, true, nil, nil))

	bad, err := svc.RecordStageStart(ctx, agentrun.StageEdit, "link-1", nil)
	require.NoError(t, err)
	require.NoError(t, svc.RecordStageComplete(ctx, bad, false,
		map[string]interface{}{"error": "Orchestrator failed"}, nil))

	failures, err := svc.ListRecentFailures(ctx, 10)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, agentrun.StageEdit, failures[0].Stage)

	byStage, err := svc.ListRecentByStage(ctx, agentrun.StageDraft, 10)
	require.NoError(t, err)
	require.Len(t, byStage, 1)

	all, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err := svc.CountByStatus(ctx, agentrun.StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
