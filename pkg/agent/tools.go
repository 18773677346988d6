package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/ent/edition"
	"github.com/ljtill/curate/ent/link"
	"github.com/ljtill/curate/ent/revision"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
)

// EditContext carries feedback metadata for an edit-oriented run. Constructed
// per run; no task-local storage. SkipMemoryCapture tells the agent not to
// persist the conversation for future prompt enrichment.
type EditContext struct {
	FeedbackID        string
	Section           string
	Comment           string
	SkipMemoryCapture bool
}

// EditionPublisher renders and uploads a published edition. Implemented by
// pkg/publish.
type EditionPublisher interface {
	PublishEdition(ctx context.Context, editionID string) error
}

// ToolHandler executes one tool call. The returned string is JSON handed back
// to the agent verbatim.
type ToolHandler func(ctx context.Context, input map[string]interface{}) (string, error)

// Tool is one entry in the dispatch table: a name, a description and input
// schema for the LLM, and the handler behind it.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]interface{}
	handler     ToolHandler
}

// ToolSet is the per-run dispatch table the agent drives the pipeline
// through. Each run gets a fresh ToolSet scoped to its trigger; edit runs
// additionally carry an EditContext.
type ToolSet struct {
	store     *store.Store
	runs      *services.RunService
	publisher EditionPublisher

	// refreshLink re-emits the link-update event for a link. Set by the
	// orchestrator; nil for runs without a link trigger.
	refreshLink func(ctx context.Context, linkID string)

	// TriggerID is the document id that started this run (link or feedback).
	TriggerID string

	// Edit is non-nil for feedback-driven edit runs.
	Edit *EditContext

	// ExpectDraft marks runs that should end with save_draft. The LLM
	// client uses it for the corrective follow-up policy.
	ExpectDraft bool

	tools map[string]*Tool
	order []string

	draftSaved   bool
	markedFailed bool
}

// NewToolSet builds the dispatch table for one run.
func NewToolSet(s *store.Store, runs *services.RunService, publisher EditionPublisher, refreshLink func(ctx context.Context, linkID string), triggerID string, edit *EditContext) *ToolSet {
	ts := &ToolSet{
		store:       s,
		runs:        runs,
		publisher:   publisher,
		refreshLink: refreshLink,
		TriggerID:   triggerID,
		Edit:        edit,
		tools:       make(map[string]*Tool),
	}
	ts.register(&Tool{
		Name:        "get_link",
		Description: "Fetch the current state of a link by id.",
		InputSchema: objectSchema(map[string]string{"link_id": "The link id."}, "link_id"),
		handler:     ts.getLink,
	})
	ts.register(&Tool{
		Name:        "save_content",
		Description: "Store fetched page content for a link and advance it to fetching.",
		InputSchema: objectSchema(map[string]string{
			"link_id": "The link id.",
			"content": "The fetched page content, plain text or markdown.",
			"title":   "The page title, if discovered.",
		}, "link_id", "content"),
		handler: ts.saveContent,
	})
	ts.register(&Tool{
		Name:        "save_review",
		Description: "Store the editorial review for a link and advance it to reviewed.",
		InputSchema: objectSchema(map[string]string{
			"link_id": "The link id.",
			"review":  "The review text.",
		}, "link_id", "review"),
		handler: ts.saveReview,
	})
	ts.register(&Tool{
		Name:        "save_draft",
		Description: "Write a drafted section into the edition, attach the link, and advance it to drafted.",
		InputSchema: objectSchema(map[string]string{
			"link_id":    "The link id being drafted.",
			"edition_id": "The edition receiving the section.",
			"section":    "The section key within the edition content.",
			"content":    "The drafted section content.",
			"summary":    "A one-line summary of the draft.",
		}, "link_id", "edition_id", "section", "content"),
		handler: ts.saveDraft,
	})
	ts.register(&Tool{
		Name:        "save_edit",
		Description: "Apply an edit to an edition section and snapshot a revision.",
		InputSchema: objectSchema(map[string]string{
			"edition_id": "The edition being edited.",
			"section":    "The section key within the edition content.",
			"content":    "The edited section content.",
			"summary":    "A one-line summary of the edit.",
		}, "edition_id", "section", "content"),
		handler: ts.saveEdit,
	})
	ts.register(&Tool{
		Name:        "mark_failed",
		Description: "Mark a link as failed when a stage cannot complete.",
		InputSchema: objectSchema(map[string]string{
			"link_id": "The link id.",
			"reason":  "Why the link failed.",
		}, "link_id"),
		handler: ts.markFailed,
	})
	ts.register(&Tool{
		Name:        "record_stage_start",
		Description: "Open a ledger entry before running a pipeline stage. Returns the run_id.",
		InputSchema: objectSchema(map[string]string{
			"stage":      "One of fetch, review, draft, edit, publish.",
			"trigger_id": "The document id that triggered the stage.",
		}, "stage", "trigger_id"),
		handler: ts.recordStageStart,
	})
	ts.register(&Tool{
		Name:        "record_stage_complete",
		Description: "Close a ledger entry after a pipeline stage finishes.",
		InputSchema: objectSchema(map[string]string{
			"run_id": "The run id returned by record_stage_start.",
			"status": "completed or failed.",
			"error":  "The failure reason when status is failed.",
			"usage":  "Token usage for the stage as an object.",
		}, "run_id", "status"),
		handler: ts.recordStageComplete,
	})
	ts.register(&Tool{
		Name:        "publish_edition",
		Description: "Render the edition to HTML, upload it, and mark it published.",
		InputSchema: objectSchema(map[string]string{"edition_id": "The edition id."}, "edition_id"),
		handler:     ts.publishEdition,
	})
	return ts
}

func (ts *ToolSet) register(t *Tool) {
	ts.tools[t.Name] = t
	ts.order = append(ts.order, t.Name)
}

// Definitions returns the tools in registration order, for conversion to the
// provider's tool declarations.
func (ts *ToolSet) Definitions() []*Tool {
	defs := make([]*Tool, 0, len(ts.order))
	for _, name := range ts.order {
		defs = append(defs, ts.tools[name])
	}
	return defs
}

// DraftSaved reports whether save_draft succeeded during this run. The LLM
// client uses it for the draft corrective follow-up.
func (ts *ToolSet) DraftSaved() bool { return ts.draftSaved }

// MarkedFailed reports whether the agent gave up on the link via mark_failed.
func (ts *ToolSet) MarkedFailed() bool { return ts.markedFailed }

// Dispatch runs one tool call. Errors of any kind come back as
// {"error": "..."} JSON so the agent can correct itself; nothing propagates.
func (ts *ToolSet) Dispatch(ctx context.Context, name string, rawInput json.RawMessage) string {
	tool, ok := ts.tools[name]
	if !ok {
		return jsonError(fmt.Sprintf("unknown tool: %s", name))
	}

	input := map[string]interface{}{}
	if len(rawInput) > 0 {
		if err := json.Unmarshal(rawInput, &input); err != nil {
			return jsonError(fmt.Sprintf("invalid tool input: %v", err))
		}
	}

	result, err := tool.handler(ctx, input)
	if err != nil {
		slog.Warn("Tool call failed", "tool", name, "trigger_id", ts.TriggerID, "error", err)
		return jsonError(err.Error())
	}
	return result
}

func (ts *ToolSet) getLink(ctx context.Context, input map[string]interface{}) (string, error) {
	linkID, err := strField(input, "link_id")
	if err != nil {
		return "", err
	}
	l, err := ts.store.GetLink(ctx, linkID)
	if err != nil {
		return "", err
	}
	if l == nil {
		return "", fmt.Errorf("link %s not found", linkID)
	}
	doc := map[string]interface{}{
		"id":     l.ID,
		"url":    l.URL,
		"status": string(l.Status),
	}
	if l.Title != nil {
		doc["title"] = *l.Title
	}
	if l.Content != nil {
		doc["content"] = *l.Content
	}
	if l.Review != nil {
		doc["review"] = *l.Review
	}
	if l.EditionID != nil {
		doc["edition_id"] = *l.EditionID
	}
	return jsonMarshal(doc), nil
}

func (ts *ToolSet) saveContent(ctx context.Context, input map[string]interface{}) (string, error) {
	linkID, err := strField(input, "link_id")
	if err != nil {
		return "", err
	}
	content, err := strField(input, "content")
	if err != nil {
		return "", err
	}
	l, err := ts.store.GetLink(ctx, linkID)
	if err != nil {
		return "", err
	}
	if l == nil {
		return "", fmt.Errorf("link %s not found", linkID)
	}
	l.Content = &content
	if title, ok := input["title"].(string); ok && title != "" {
		l.Title = &title
	}
	l.Status = link.StatusFetching
	if _, err := ts.store.UpdateLink(ctx, l); err != nil {
		return "", err
	}
	return jsonMarshal(map[string]interface{}{"link_id": linkID, "status": "fetching"}), nil
}

func (ts *ToolSet) saveReview(ctx context.Context, input map[string]interface{}) (string, error) {
	linkID, err := strField(input, "link_id")
	if err != nil {
		return "", err
	}
	review, err := strField(input, "review")
	if err != nil {
		return "", err
	}
	l, err := ts.store.GetLink(ctx, linkID)
	if err != nil {
		return "", err
	}
	if l == nil {
		return "", fmt.Errorf("link %s not found", linkID)
	}
	l.Review = &review
	l.Status = link.StatusReviewed
	if _, err := ts.store.UpdateLink(ctx, l); err != nil {
		return "", err
	}
	return jsonMarshal(map[string]interface{}{"link_id": linkID, "status": "reviewed"}), nil
}

func (ts *ToolSet) saveDraft(ctx context.Context, input map[string]interface{}) (string, error) {
	linkID, err := strField(input, "link_id")
	if err != nil {
		return "", err
	}
	editionID, err := strField(input, "edition_id")
	if err != nil {
		return "", err
	}
	section, err := strField(input, "section")
	if err != nil {
		return "", err
	}
	content, err := strField(input, "content")
	if err != nil {
		return "", err
	}
	summary, _ := input["summary"].(string)

	e, err := ts.store.GetEdition(ctx, editionID)
	if err != nil {
		return "", err
	}
	if e == nil {
		return "", fmt.Errorf("edition %s not found", editionID)
	}
	l, err := ts.store.GetLink(ctx, linkID)
	if err != nil {
		return "", err
	}
	if l == nil {
		return "", fmt.Errorf("link %s not found", linkID)
	}

	if e.Content == nil {
		e.Content = map[string]interface{}{}
	}
	e.Content[section] = content
	if !contains(e.LinkIds, linkID) {
		e.LinkIds = append(e.LinkIds, linkID)
	}
	e.Status = edition.StatusDrafting
	if _, err := ts.store.UpdateEdition(ctx, e); err != nil {
		return "", err
	}

	rev, err := ts.store.CreateRevision(ctx, newID(), editionID, linkID, revision.SourceDraft, e.Content, summary)
	if err != nil {
		return "", err
	}

	l.EditionID = &editionID
	l.Status = link.StatusDrafted
	if _, err := ts.store.UpdateLink(ctx, l); err != nil {
		return "", err
	}

	ts.draftSaved = true
	return jsonMarshal(map[string]interface{}{
		"link_id":    linkID,
		"edition_id": editionID,
		"revision":   rev.Sequence,
		"status":     "drafted",
	}), nil
}

func (ts *ToolSet) saveEdit(ctx context.Context, input map[string]interface{}) (string, error) {
	editionID, err := strField(input, "edition_id")
	if err != nil {
		return "", err
	}
	section, err := strField(input, "section")
	if err != nil {
		return "", err
	}
	content, err := strField(input, "content")
	if err != nil {
		return "", err
	}
	summary, _ := input["summary"].(string)

	e, err := ts.store.GetEdition(ctx, editionID)
	if err != nil {
		return "", err
	}
	if e == nil {
		return "", fmt.Errorf("edition %s not found", editionID)
	}
	if e.Content == nil {
		e.Content = map[string]interface{}{}
	}
	e.Content[section] = content
	e.Status = edition.StatusInReview
	if _, err := ts.store.UpdateEdition(ctx, e); err != nil {
		return "", err
	}

	rev, err := ts.store.CreateRevision(ctx, newID(), editionID, ts.TriggerID, revision.SourceEdit, e.Content, summary)
	if err != nil {
		return "", err
	}

	// An edit-oriented run consumes its feedback.
	if ts.Edit != nil && ts.Edit.FeedbackID != "" {
		if _, err := ts.store.ResolveFeedback(ctx, ts.Edit.FeedbackID); err != nil {
			return "", err
		}
	}

	return jsonMarshal(map[string]interface{}{
		"edition_id": editionID,
		"revision":   rev.Sequence,
	}), nil
}

func (ts *ToolSet) markFailed(ctx context.Context, input map[string]interface{}) (string, error) {
	linkID, err := strField(input, "link_id")
	if err != nil {
		return "", err
	}
	if _, err := ts.store.SetLinkStatus(ctx, linkID, link.StatusFailed); err != nil {
		return "", err
	}
	ts.markedFailed = true
	if reason, ok := input["reason"].(string); ok && reason != "" {
		slog.Info("Link marked failed", "link_id", linkID, "reason", reason)
	}
	return jsonMarshal(map[string]interface{}{"link_id": linkID, "status": "failed"}), nil
}

func (ts *ToolSet) recordStageStart(ctx context.Context, input map[string]interface{}) (string, error) {
	stageName, err := strField(input, "stage")
	if err != nil {
		return "", err
	}
	triggerID, err := strField(input, "trigger_id")
	if err != nil {
		return "", err
	}
	stage := agentrun.Stage(stageName)
	if err := agentrun.StageValidator(stage); err != nil {
		return "", fmt.Errorf("invalid stage: %s", stageName)
	}
	runID, err := ts.runs.RecordStageStart(ctx, stage, triggerID, map[string]interface{}{"stage": stageName})
	if err != nil {
		return "", err
	}
	return jsonMarshal(map[string]interface{}{"run_id": runID}), nil
}

func (ts *ToolSet) recordStageComplete(ctx context.Context, input map[string]interface{}) (string, error) {
	runID, err := strField(input, "run_id")
	if err != nil {
		return "", err
	}
	status, err := strField(input, "status")
	if err != nil {
		return "", err
	}
	if status != "completed" && status != "failed" {
		return "", fmt.Errorf("invalid status: %s", status)
	}

	output := map[string]interface{}{}
	if errMsg, ok := input["error"].(string); ok && errMsg != "" {
		output["error"] = errMsg
	}
	usage, _ := input["usage"].(map[string]interface{})

	if err := ts.runs.RecordStageComplete(ctx, runID, status == "completed", output, usage); err != nil {
		return "", err
	}

	// Stage completion refreshes the link row in connected clients.
	if ts.refreshLink != nil {
		ts.refreshLink(ctx, ts.TriggerID)
	}
	return jsonMarshal(map[string]interface{}{"run_id": runID, "status": status}), nil
}

func (ts *ToolSet) publishEdition(ctx context.Context, input map[string]interface{}) (string, error) {
	editionID, err := strField(input, "edition_id")
	if err != nil {
		return "", err
	}
	if ts.publisher == nil {
		return "", fmt.Errorf("publishing is not configured")
	}
	if err := ts.publisher.PublishEdition(ctx, editionID); err != nil {
		return "", err
	}
	return jsonMarshal(map[string]interface{}{"edition_id": editionID, "status": "published"}), nil
}

func newID() string { return uuid.New().String() }

func strField(input map[string]interface{}, key string) (string, error) {
	v, ok := input[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func jsonError(msg string) string {
	return jsonMarshal(map[string]interface{}{"error": msg})
}

func jsonMarshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return `{"error":"failed to encode tool result"}`
	}
	return string(data)
}

// objectSchema builds a JSON schema object with string properties.
func objectSchema(props map[string]string, required ...string) map[string]interface{} {
	properties := map[string]interface{}{}
	for name, desc := range props {
		if name == "usage" {
			properties[name] = map[string]interface{}{"type": "object", "description": desc}
			continue
		}
		properties[name] = map[string]interface{}{"type": "string", "description": desc}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
