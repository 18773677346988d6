package store

import (
	"context"
	"time"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/agentrun"
)

// CreateAgentRun opens a ledger entry in the running state.
func (s *Store) CreateAgentRun(ctx context.Context, id string, stage agentrun.Stage, triggerID string, input map[string]interface{}) (*ent.AgentRun, error) {
	defer s.observe("agent_runs.create", time.Now())

	r, err := s.client.AgentRun.Create().
		SetID(id).
		SetStage(stage).
		SetTriggerID(triggerID).
		SetInput(input).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, &TransportError{Op: "agent_runs.create", Err: err}
	}
	return r, nil
}

// GetAgentRun returns the run by id, or nil when absent.
func (s *Store) GetAgentRun(ctx context.Context, id string) (*ent.AgentRun, error) {
	defer s.observe("agent_runs.get", time.Now())

	r, err := s.client.AgentRun.Query().
		Where(agentrun.IDEQ(id), agentrun.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &TransportError{Op: "agent_runs.get", Err: err}
	}
	return r, nil
}

// CompleteAgentRun closes a run with its terminal status, output, and token
// counts.
func (s *Store) CompleteAgentRun(ctx context.Context, id string, status agentrun.Status, output map[string]interface{}, inputTokens, outputTokens, totalTokens int) (*ent.AgentRun, error) {
	defer s.observe("agent_runs.complete", time.Now())

	r, err := s.client.AgentRun.UpdateOneID(id).
		SetStatus(status).
		SetOutput(output).
		SetInputTokens(inputTokens).
		SetOutputTokens(outputTokens).
		SetTotalTokens(totalTokens).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, &TransportError{Op: "agent_runs.complete", Err: err}
	}
	return r, nil
}

// FailRunningRuns transitions every running run to failed with the given
// output. Returns the ids it touched. Used by startup orphan recovery.
func (s *Store) FailRunningRuns(ctx context.Context, output map[string]interface{}) ([]string, error) {
	defer s.observe("agent_runs.fail_running", time.Now())

	var ids []string
	err := s.withTx(ctx, func(tx *ent.Tx) error {
		running, err := tx.AgentRun.Query().
			Where(agentrun.StatusEQ(agentrun.StatusRunning), agentrun.DeletedAtIsNil()).
			All(ctx)
		if err != nil {
			return &TransportError{Op: "agent_runs.fail_running", Err: err}
		}
		now := time.Now()
		for _, r := range running {
			err := tx.AgentRun.UpdateOneID(r.ID).
				SetStatus(agentrun.StatusFailed).
				SetOutput(output).
				SetCompletedAt(now).
				Exec(ctx)
			if err != nil {
				return &TransportError{Op: "agent_runs.fail_running", Err: err}
			}
			ids = append(ids, r.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ListRunsByTrigger returns all runs for a trigger document, oldest first.
func (s *Store) ListRunsByTrigger(ctx context.Context, triggerID string) ([]*ent.AgentRun, error) {
	defer s.observe("agent_runs.list_by_trigger", time.Now())

	runs, err := s.client.AgentRun.Query().
		Where(agentrun.TriggerIDEQ(triggerID), agentrun.DeletedAtIsNil()).
		Order(ent.Asc(agentrun.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "agent_runs.list_by_trigger", Err: err}
	}
	return runs, nil
}

// ListRecentRuns returns the newest runs, optionally filtered by stage or
// status. A zero value skips that filter.
func (s *Store) ListRecentRuns(ctx context.Context, stage agentrun.Stage, status agentrun.Status, limit int) ([]*ent.AgentRun, error) {
	defer s.observe("agent_runs.list_recent", time.Now())

	q := s.client.AgentRun.Query().Where(agentrun.DeletedAtIsNil())
	if stage != "" {
		q = q.Where(agentrun.StageEQ(stage))
	}
	if status != "" {
		q = q.Where(agentrun.StatusEQ(status))
	}
	runs, err := q.Order(ent.Desc(agentrun.FieldStartedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, &TransportError{Op: "agent_runs.list_recent", Err: err}
	}
	return runs, nil
}

// CountRunsByStatus returns the number of runs in a status.
func (s *Store) CountRunsByStatus(ctx context.Context, status agentrun.Status) (int, error) {
	defer s.observe("agent_runs.count_by_status", time.Now())

	n, err := s.client.AgentRun.Query().
		Where(agentrun.StatusEQ(status), agentrun.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return 0, &TransportError{Op: "agent_runs.count_by_status", Err: err}
	}
	return n, nil
}
