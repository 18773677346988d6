package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/store"
)

// TokenUsage is normalized token accounting for one agent run.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// NormalizeUsage converts a raw usage payload into TokenUsage. Providers
// disagree on key names ("input_token_count" vs "input_tokens"); both
// spellings are accepted and the total is always recomputed as input plus
// output, ignoring any total the provider reported.
func NormalizeUsage(raw map[string]interface{}) TokenUsage {
	u := TokenUsage{
		InputTokens:  intField(raw, "input_tokens", "input_token_count"),
		OutputTokens: intField(raw, "output_tokens", "output_token_count"),
	}
	u.TotalTokens = u.InputTokens + u.OutputTokens
	return u
}

// intField returns the first present key as an int. JSON decoding yields
// float64 for numbers; raw in-process maps may carry int.
func intField(raw map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// RunService is the agent-run ledger: every stage execution gets exactly one
// record, opened before the agent starts and closed with its outcome.
type RunService struct {
	store  *store.Store
	events *events.Manager
}

// NewRunService creates a RunService.
func NewRunService(s *store.Store, m *events.Manager) *RunService {
	return &RunService{store: s, events: m}
}

// RecordStageStart opens a ledger entry for a stage execution and publishes
// the start event. Returns the run id used to close the entry later.
func (s *RunService) RecordStageStart(ctx context.Context, stage agentrun.Stage, triggerID string, input map[string]interface{}) (string, error) {
	if triggerID == "" {
		return "", NewValidationError("trigger_id", "must not be empty")
	}

	runID := uuid.New().String()
	_, err := s.store.CreateAgentRun(ctx, runID, stage, triggerID, input)
	if err != nil {
		// The partial unique index allows one running run per trigger and
		// stage; a constraint violation means that run already exists.
		if ent.IsConstraintError(err) {
			return "", fmt.Errorf("running %s run for trigger %s: %w", stage, triggerID, ErrAlreadyExists)
		}
		return "", fmt.Errorf("failed to record stage start: %w", err)
	}

	slog.Info("Agent run started", "run_id", runID, "stage", stage, "trigger_id", triggerID)
	s.events.Publish(events.AgentRunStart(runID, string(stage), triggerID))
	return runID, nil
}

// RecordStageComplete closes a ledger entry with its outcome, normalized
// token usage, and publishes the completion event.
func (s *RunService) RecordStageComplete(ctx context.Context, runID string, success bool, output map[string]interface{}, rawUsage map[string]interface{}) error {
	run, err := s.store.GetAgentRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}

	status := agentrun.StatusCompleted
	if !success {
		status = agentrun.StatusFailed
	}
	usage := NormalizeUsage(rawUsage)

	updated, err := s.store.CompleteAgentRun(ctx, runID, status, output, usage.InputTokens, usage.OutputTokens, usage.TotalTokens)
	if err != nil {
		return fmt.Errorf("failed to record stage completion: %w", err)
	}

	slog.Info("Agent run finished",
		"run_id", runID, "stage", updated.Stage, "status", status,
		"total_tokens", usage.TotalTokens)
	s.events.Publish(events.AgentRunComplete(runID, string(updated.Stage), updated.TriggerID, string(status), usage.TotalTokens))
	return nil
}

// RecoverOrphanedRuns fails every run still marked running. Called once at
// startup, before the change-feed processor begins: a run in the running
// state at that point belonged to a process that died mid-stage. Idempotent;
// returns the number of runs recovered.
func (s *RunService) RecoverOrphanedRuns(ctx context.Context) (int, error) {
	output := map[string]interface{}{"error": "Recovered after process restart"}
	ids, err := s.store.FailRunningRuns(ctx, output)
	if err != nil {
		return 0, fmt.Errorf("failed to recover orphaned runs: %w", err)
	}
	for _, id := range ids {
		slog.Warn("Recovered orphaned agent run", "run_id", id)
	}
	if len(ids) > 0 {
		slog.Info("Orphaned run recovery complete", "recovered", len(ids))
	}
	return len(ids), nil
}

// AggregateTokenUsage sums token usage across all runs for a trigger.
func (s *RunService) AggregateTokenUsage(ctx context.Context, triggerID string) (TokenUsage, error) {
	runs, err := s.store.ListRunsByTrigger(ctx, triggerID)
	if err != nil {
		return TokenUsage{}, fmt.Errorf("failed to list runs: %w", err)
	}
	var u TokenUsage
	for _, r := range runs {
		u.InputTokens += r.InputTokens
		u.OutputTokens += r.OutputTokens
		u.TotalTokens += r.TotalTokens
	}
	return u, nil
}

// GetRun returns one run by id.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.AgentRun, error) {
	run, err := s.store.GetAgentRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	return run, nil
}

// ListRunsByTrigger returns all runs for a trigger document, oldest first.
func (s *RunService) ListRunsByTrigger(ctx context.Context, triggerID string) ([]*ent.AgentRun, error) {
	return s.store.ListRunsByTrigger(ctx, triggerID)
}

// ListRecent returns the newest runs across all stages.
func (s *RunService) ListRecent(ctx context.Context, limit int) ([]*ent.AgentRun, error) {
	return s.store.ListRecentRuns(ctx, "", "", limit)
}

// ListRecentByStage returns the newest runs for one stage.
func (s *RunService) ListRecentByStage(ctx context.Context, stage agentrun.Stage, limit int) ([]*ent.AgentRun, error) {
	return s.store.ListRecentRuns(ctx, stage, "", limit)
}

// ListRecentFailures returns the newest failed runs.
func (s *RunService) ListRecentFailures(ctx context.Context, limit int) ([]*ent.AgentRun, error) {
	return s.store.ListRecentRuns(ctx, "", agentrun.StatusFailed, limit)
}

// CountByStatus returns the number of runs in a status.
func (s *RunService) CountByStatus(ctx context.Context, status agentrun.Status) (int, error) {
	return s.store.CountRunsByStatus(ctx, status)
}
