package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/ent/link"
	"github.com/ljtill/curate/pkg/agent"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
)

// Orchestrator maps incoming document changes to agent runs: it claims the
// document, opens a ledger entry, hands the agent a task and tools, and
// finalizes state and events regardless of how the run ends.
type Orchestrator struct {
	store     *store.Store
	runs      *services.RunService
	events    *events.Manager
	executor  *agent.Executor
	agent     agent.Agent
	publisher agent.EditionPublisher
	ctrl      *Controller
}

// NewOrchestrator wires the orchestrator's collaborators.
func NewOrchestrator(s *store.Store, runs *services.RunService, m *events.Manager, executor *agent.Executor, a agent.Agent, publisher agent.EditionPublisher, ctrl *Controller) *Orchestrator {
	return &Orchestrator{
		store:     s,
		runs:      runs,
		events:    m,
		executor:  executor,
		agent:     a,
		publisher: publisher,
		ctrl:      ctrl,
	}
}

// HandleLinkChange processes one link change from the feed. Stale or
// duplicate events return without side effects.
func (o *Orchestrator) HandleLinkChange(ctx context.Context, doc map[string]interface{}) error {
	linkID, _ := doc["id"].(string)
	status, _ := doc["status"].(string)
	url, _ := doc["url"].(string)
	editionID, _ := doc["edition_id"].(string)
	if linkID == "" {
		return fmt.Errorf("link change without id")
	}
	if deleted, _ := doc["deleted"].(bool); deleted {
		return nil
	}

	release, ok := o.ctrl.ClaimLink(ctx, o.store, linkID, status)
	if !ok {
		slog.Debug("Skipping link change", "link_id", linkID, "event_status", status)
		return nil
	}
	defer release()

	runID, err := o.runs.RecordStageStart(ctx, agentrun.StageOrchestrator, linkID, map[string]interface{}{
		"url":        url,
		"edition_id": editionID,
		"status":     status,
	})
	if err != nil {
		return fmt.Errorf("failed to open orchestrator run: %w", err)
	}

	tools := agent.NewToolSet(o.store, o.runs, o.publisher, o.emitLinkUpdate, linkID, nil)
	tools.ExpectDraft = true
	task := agent.LinkTask(linkID, url, status, editionID)
	result, runErr := o.executor.Execute(ctx, o.agent, task, tools)

	o.finalizeRun(ctx, runID, result, runErr)

	// The agent may have died before advancing the link past the initial
	// stage; a link stuck in submitted would otherwise re-trigger forever.
	l, err := o.store.GetLink(ctx, linkID)
	if err == nil && l != nil && l.Status == link.StatusSubmitted {
		if _, err := o.store.SetLinkStatus(ctx, linkID, link.StatusFailed); err != nil {
			slog.Error("Failed to fail stuck link", "link_id", linkID, "error", err)
		}
	}

	o.emitLinkUpdate(ctx, linkID)
	return runErr
}

// HandleFeedbackChange processes one feedback change. Resolved feedback is
// ignored; edits on the same edition are serialized by the edition mutex.
func (o *Orchestrator) HandleFeedbackChange(ctx context.Context, doc map[string]interface{}) error {
	feedbackID, _ := doc["id"].(string)
	editionID, _ := doc["edition_id"].(string)
	section, _ := doc["section"].(string)
	comment, _ := doc["comment"].(string)
	if feedbackID == "" || editionID == "" {
		return fmt.Errorf("feedback change without id or edition_id")
	}
	if resolved, _ := doc["resolved"].(bool); resolved {
		return nil
	}
	learn := true
	if v, ok := doc["learn_from_feedback"].(bool); ok {
		learn = v
	}

	lock := o.ctrl.EditionLock(editionID)
	lock.Lock()
	defer lock.Unlock()

	runID, err := o.runs.RecordStageStart(ctx, agentrun.StageOrchestrator, feedbackID, map[string]interface{}{
		"edition_id": editionID,
		"section":    section,
		"comment":    comment,
	})
	if err != nil {
		return fmt.Errorf("failed to open orchestrator run: %w", err)
	}

	editCtx := &agent.EditContext{
		FeedbackID:        feedbackID,
		Section:           section,
		Comment:           comment,
		SkipMemoryCapture: !learn,
	}
	tools := agent.NewToolSet(o.store, o.runs, o.publisher, nil, feedbackID, editCtx)
	task := agent.EditTask(editionID, section, comment, learn)
	result, runErr := o.executor.Execute(ctx, o.agent, task, tools)

	o.finalizeRun(ctx, runID, result, runErr)
	return runErr
}

// HandlePublish runs the publish stage for an edition. Publish is terminal,
// so it is not serialized against feedback edits.
func (o *Orchestrator) HandlePublish(ctx context.Context, editionID string) error {
	if editionID == "" {
		return fmt.Errorf("publish without edition_id")
	}

	runID, err := o.runs.RecordStageStart(ctx, agentrun.StageOrchestrator, editionID, map[string]interface{}{
		"edition_id": editionID,
		"command":    "publish",
	})
	if err != nil {
		return fmt.Errorf("failed to open orchestrator run: %w", err)
	}

	tools := agent.NewToolSet(o.store, o.runs, o.publisher, nil, editionID, nil)
	task := agent.PublishTask(editionID)
	result, runErr := o.executor.Execute(ctx, o.agent, task, tools)

	o.finalizeRun(ctx, runID, result, runErr)
	return runErr
}

// finalizeRun closes the orchestrator ledger entry. Success stores the
// agent's text and usage; failure after retries stores the fixed error.
func (o *Orchestrator) finalizeRun(ctx context.Context, runID string, result *agent.Result, runErr error) {
	var output map[string]interface{}
	var usage map[string]interface{}
	success := runErr == nil && result != nil
	if success {
		output = map[string]interface{}{"content": result.Text}
		usage = result.Usage
	} else {
		output = map[string]interface{}{"error": "Orchestrator failed"}
	}
	if err := o.runs.RecordStageComplete(ctx, runID, success, output, usage); err != nil {
		slog.Error("Failed to finalize orchestrator run", "run_id", runID, "error", err)
	}
}

// emitLinkUpdate renders the link's current table row and publishes it for
// connected clients to swap in place.
func (o *Orchestrator) emitLinkUpdate(ctx context.Context, linkID string) {
	l, err := o.store.GetLink(ctx, linkID)
	if err != nil || l == nil {
		return
	}
	runs, err := o.runs.ListRunsByTrigger(ctx, linkID)
	if err != nil {
		runs = nil
	}
	html, err := renderLinkRow(l, len(runs))
	if err != nil {
		slog.Error("Failed to render link row", "link_id", linkID, "error", err)
		return
	}
	o.events.Publish(events.LinkUpdate(l.ID, string(l.Status), html))
}
