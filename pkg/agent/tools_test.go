package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/ent/enttest"
	"github.com/ljtill/curate/ent/link"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
)

type fakePublisher struct {
	published []string
	err       error
}

func (p *fakePublisher) PublishEdition(ctx context.Context, editionID string) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, editionID)
	return nil
}

func newToolFixture(t *testing.T) (*store.Store, *services.RunService, *events.Manager) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	s := store.New(client, 0)
	m := events.NewManager(50, nil)
	return s, services.NewRunService(s, m), m
}

func dispatch(t *testing.T, ts *ToolSet, tool string, input map[string]interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	out := ts.Dispatch(context.Background(), tool, raw)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "tool result must be JSON: %s", out)
	return result
}

func TestDispatchUnknownTool(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	ts := NewToolSet(s, runs, nil, nil, "link-1", nil)

	result := dispatch(t, ts, "explode", nil)
	assert.Contains(t, result["error"], "unknown tool")
}

func TestDispatchMalformedInput(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	ts := NewToolSet(s, runs, nil, nil, "link-1", nil)

	out := ts.Dispatch(context.Background(), "get_link", json.RawMessage(`{"link_id": `))
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Contains(t, result["error"], "invalid tool input")
}

func TestDispatchMissingRequiredField(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	ts := NewToolSet(s, runs, nil, nil, "link-1", nil)

	result := dispatch(t, ts, "save_review", map[string]interface{}{"link_id": "link-1"})
	assert.Contains(t, result["error"], "review is required")
}

func TestGetLinkRoundTrip(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	_, err := s.CreateLink(context.Background(), "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)
	ts := NewToolSet(s, runs, nil, nil, "link-1", nil)

	result := dispatch(t, ts, "get_link", map[string]interface{}{"link_id": "link-1"})
	assert.Equal(t, "https://example.com", result["url"])
	assert.Equal(t, "submitted", result["status"])

	missing := dispatch(t, ts, "get_link", map[string]interface{}{"link_id": "nope"})
	assert.Contains(t, missing["error"], "not found")
}

func TestFetchAndReviewTools(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	ctx := context.Background()
	_, err := s.CreateLink(ctx, "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)
	ts := NewToolSet(s, runs, nil, nil, "link-1", nil)

	dispatch(t, ts, "save_content", map[string]interface{}{
		"link_id": "link-1", "content": "page body", "title": "A Page",
	})
	l, err := s.GetLink(ctx, "link-1")
	require.NoError(t, err)
	assert.Equal(t, link.StatusFetching, l.Status)
	require.NotNil(t, l.Content)
	assert.Equal(t, "page body", *l.Content)
	require.NotNil(t, l.Title)
	assert.Equal(t, "A Page", *l.Title)

	dispatch(t, ts, "save_review", map[string]interface{}{
		"link_id": "link-1", "review": "worth including",
	})
	l, err = s.GetLink(ctx, "link-1")
	require.NoError(t, err)
	assert.Equal(t, link.StatusReviewed, l.Status)
}

func TestSaveDraft(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	ctx := context.Background()
	_, err := s.CreateLink(ctx, "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)
	_, err = s.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)
	ts := NewToolSet(s, runs, nil, nil, "link-1", nil)
	require.False(t, ts.DraftSaved())

	result := dispatch(t, ts, "save_draft", map[string]interface{}{
		"link_id": "link-1", "edition_id": "ed-1",
		"section": "tools", "content": "drafted copy", "summary": "first pass",
	})
	assert.Equal(t, float64(1), result["revision"])
	assert.True(t, ts.DraftSaved())

	e, err := s.GetEdition(ctx, "ed-1")
	require.NoError(t, err)
	assert.Equal(t, "drafted copy", e.Content["tools"])
	assert.Equal(t, []string{"link-1"}, e.LinkIds)

	l, err := s.GetLink(ctx, "link-1")
	require.NoError(t, err)
	assert.Equal(t, link.StatusDrafted, l.Status)
	require.NotNil(t, l.EditionID)
	assert.Equal(t, "ed-1", *l.EditionID)

	// Drafting again must not duplicate the link id.
	dispatch(t, ts, "save_draft", map[string]interface{}{
		"link_id": "link-1", "edition_id": "ed-1",
		"section": "tools", "content": "second pass",
	})
	e, err = s.GetEdition(ctx, "ed-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"link-1"}, e.LinkIds)
}

func TestSaveEditResolvesFeedback(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	ctx := context.Background()
	_, err := s.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)
	_, err = s.CreateFeedback(ctx, "fb-1", "ed-1", "intro", "tighten this", true)
	require.NoError(t, err)

	ts := NewToolSet(s, runs, nil, nil, "fb-1", &EditContext{
		FeedbackID: "fb-1", Section: "intro", Comment: "tighten this",
	})
	result := dispatch(t, ts, "save_edit", map[string]interface{}{
		"edition_id": "ed-1", "section": "intro", "content": "tighter copy",
	})
	assert.Equal(t, float64(1), result["revision"])

	fb, err := s.GetFeedback(ctx, "fb-1")
	require.NoError(t, err)
	assert.True(t, fb.Resolved)

	e, err := s.GetEdition(ctx, "ed-1")
	require.NoError(t, err)
	assert.Equal(t, "tighter copy", e.Content["intro"])
}

func TestStageRecordingTools(t *testing.T) {
	s, runs, m := newToolFixture(t)
	ctx := context.Background()
	_, err := s.CreateLink(ctx, "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)

	var refreshed []string
	refresh := func(ctx context.Context, linkID string) { refreshed = append(refreshed, linkID) }
	ts := NewToolSet(s, runs, nil, refresh, "link-1", nil)
	sub := m.Subscribe()
	defer m.Unsubscribe(sub.ID)

	start := dispatch(t, ts, "record_stage_start", map[string]interface{}{
		"stage": "fetch", "trigger_id": "link-1",
	})
	runID, ok := start["run_id"].(string)
	require.True(t, ok)

	evt := <-sub.C
	assert.Equal(t, events.EventTypeAgentRunStart, evt.Type)

	dispatch(t, ts, "record_stage_complete", map[string]interface{}{
		"run_id": runID, "status": "completed",
		"usage": map[string]interface{}{"input_token_count": 20, "output_token_count": 10},
	})
	evt = <-sub.C
	assert.Equal(t, events.EventTypeAgentRunComplete, evt.Type)
	assert.Equal(t, []string{"link-1"}, refreshed)

	run, err := runs.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)
	assert.Equal(t, 30, run.TotalTokens)

	bad := dispatch(t, ts, "record_stage_start", map[string]interface{}{
		"stage": "detonate", "trigger_id": "link-1",
	})
	assert.Contains(t, bad["error"], "invalid stage")
}

func TestMarkFailed(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	ctx := context.Background()
	_, err := s.CreateLink(ctx, "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)
	ts := NewToolSet(s, runs, nil, nil, "link-1", nil)

	dispatch(t, ts, "mark_failed", map[string]interface{}{"link_id": "link-1", "reason": "paywalled"})

	l, err := s.GetLink(ctx, "link-1")
	require.NoError(t, err)
	assert.Equal(t, link.StatusFailed, l.Status)
}

func TestPublishEditionTool(t *testing.T) {
	s, runs, _ := newToolFixture(t)
	pub := &fakePublisher{}
	ts := NewToolSet(s, runs, pub, nil, "ed-1", nil)

	dispatch(t, ts, "publish_edition", map[string]interface{}{"edition_id": "ed-1"})
	assert.Equal(t, []string{"ed-1"}, pub.published)

	pub.err = errors.New("upload failed")
	result := dispatch(t, ts, "publish_edition", map[string]interface{}{"edition_id": "ed-1"})
	assert.Contains(t, result["error"], "upload failed")
}

func TestEditTaskOmitsCommentWhenLearningDisabled(t *testing.T) {
	withComment := EditTask("ed-1", "intro", "this is confidential context", true)
	assert.Contains(t, withComment, "this is confidential context")

	withoutComment := EditTask("ed-1", "intro", "this is confidential context", false)
	assert.NotContains(t, withoutComment, "this is confidential context")
	assert.Contains(t, withoutComment, "ed-1")
}
