package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/ent/enttest"
	"github.com/ljtill/curate/ent/link"
	"github.com/ljtill/curate/pkg/agent"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
)

// scriptedAgent runs an arbitrary function as the black-box agent.
type scriptedAgent struct {
	run func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error)
}

func (a *scriptedAgent) Run(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
	return a.run(ctx, task, tools)
}

type fixture struct {
	store *store.Store
	runs  *services.RunService
	mgr   *events.Manager
	ctrl  *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	s := store.New(client, 0)
	m := events.NewManager(100, nil)
	return &fixture{
		store: s,
		runs:  services.NewRunService(s, m),
		mgr:   m,
		ctrl:  NewController(25),
	}
}

func (f *fixture) orchestrator(a agent.Agent) *Orchestrator {
	executor := agent.NewExecutor(2, time.Millisecond, 10*time.Millisecond)
	return NewOrchestrator(f.store, f.runs, f.mgr, executor, a, nil, f.ctrl)
}

func toolCall(t *testing.T, tools *agent.ToolSet, name string, input map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(input)
	require.NoError(t, err)
	out := tools.Dispatch(context.Background(), name, raw)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.NotContains(t, result, "error", "tool %s failed: %s", name, out)
}

func linkDoc(id, status string) map[string]interface{} {
	return map[string]interface{}{"id": id, "url": "https://example.com/" + id, "status": status}
}

func TestFreshSubmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.CreateLink(ctx, "link-1", "https://example.com/link-1", nil, nil)
	require.NoError(t, err)
	_, err = f.store.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)

	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		toolCall(t, tools, "save_content", map[string]interface{}{
			"link_id": "link-1", "content": "page body",
		})
		toolCall(t, tools, "save_review", map[string]interface{}{
			"link_id": "link-1", "review": "worth it",
		})
		toolCall(t, tools, "save_draft", map[string]interface{}{
			"link_id": "link-1", "edition_id": "ed-1",
			"section": "tools", "content": "drafted copy",
		})
		return &agent.Result{
			Text:  "advanced link-1 to drafted",
			Usage: map[string]interface{}{"input_token_count": 100, "output_token_count": 50},
		}, nil
	}}
	o := f.orchestrator(a)
	sub := f.mgr.Subscribe()
	defer f.mgr.Unsubscribe(sub.ID)

	require.NoError(t, o.HandleLinkChange(ctx, linkDoc("link-1", "submitted")))

	start := <-sub.C
	assert.Equal(t, events.EventTypeAgentRunStart, start.Type)
	assert.Equal(t, "orchestrator", start.Data["stage"])
	assert.Equal(t, "link-1", start.Data["trigger_id"])

	complete := <-sub.C
	assert.Equal(t, events.EventTypeAgentRunComplete, complete.Type)
	assert.Equal(t, "completed", complete.Data["status"])

	update := <-sub.C
	assert.Equal(t, events.EventTypeLinkUpdate, update.Type)
	assert.Contains(t, update.Data["html"], "link-1")
	assert.Equal(t, "drafted", update.Data["status"])

	l, err := f.store.GetLink(ctx, "link-1")
	require.NoError(t, err)
	assert.Equal(t, link.StatusDrafted, l.Status)
	assert.Equal(t, 0, f.ctrl.claimCount())
}

func TestReplayedEventIsIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l, err := f.store.CreateLink(ctx, "link-1", "https://example.com/link-1", nil, nil)
	require.NoError(t, err)
	l.Status = link.StatusDrafted
	_, err = f.store.UpdateLink(ctx, l)
	require.NoError(t, err)

	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		t.Fatal("agent must not run for a stale event")
		return nil, nil
	}}
	o := f.orchestrator(a)
	sub := f.mgr.Subscribe()
	defer f.mgr.Unsubscribe(sub.ID)

	require.NoError(t, o.HandleLinkChange(ctx, linkDoc("link-1", "submitted")))

	runs, err := f.runs.ListRunsByTrigger(ctx, "link-1")
	require.NoError(t, err)
	assert.Empty(t, runs)
	select {
	case evt := <-sub.C:
		t.Fatalf("no events expected, got %s", evt.Type)
	default:
	}
}

func TestOrchestratorFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.CreateLink(ctx, "link-1", "https://example.com/link-1", nil, nil)
	require.NoError(t, err)

	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		return nil, errors.New("model overloaded")
	}}
	o := f.orchestrator(a)

	err = o.HandleLinkChange(ctx, linkDoc("link-1", "submitted"))
	require.Error(t, err)

	runs, err := f.runs.ListRunsByTrigger(ctx, "link-1")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, agentrun.StatusFailed, runs[0].Status)
	assert.Equal(t, "Orchestrator failed", runs[0].Output["error"])

	// The link never advanced past submitted, so the fix-up fails it.
	l, err := f.store.GetLink(ctx, "link-1")
	require.NoError(t, err)
	assert.Equal(t, link.StatusFailed, l.Status)
}

func TestClaimBlocksConcurrentHandlers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.CreateLink(ctx, "link-1", "https://example.com/link-1", nil, nil)
	require.NoError(t, err)

	release, ok := f.ctrl.ClaimLink(ctx, f.store, "link-1", "submitted")
	require.True(t, ok)

	_, ok = f.ctrl.ClaimLink(ctx, f.store, "link-1", "submitted")
	assert.False(t, ok)

	release()
	release2, ok := f.ctrl.ClaimLink(ctx, f.store, "link-1", "submitted")
	assert.True(t, ok)
	release2()
}

func TestClaimRejectsNonSubmittedEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.CreateLink(ctx, "link-1", "https://example.com/link-1", nil, nil)
	require.NoError(t, err)

	for _, status := range []string{"fetching", "reviewed", "drafted", "failed"} {
		_, ok := f.ctrl.ClaimLink(ctx, f.store, "link-1", status)
		assert.False(t, ok, "event status %s must not claim", status)
	}

	_, ok := f.ctrl.ClaimLink(ctx, f.store, "missing", "submitted")
	assert.False(t, ok, "missing link must not claim")
	assert.Equal(t, 0, f.ctrl.claimCount())
}

func TestFeedbackEditsAreSerializedPerEdition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)

	var active, maxActive int32
	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		n := atomic.AddInt32(&active, 1)
		for {
			old := atomic.LoadInt32(&maxActive)
			if n <= old || atomic.CompareAndSwapInt32(&maxActive, old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return &agent.Result{Text: "edited"}, nil
	}}
	o := f.orchestrator(a)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("fb-%d", i)
		_, err := f.store.CreateFeedback(ctx, id, "ed-1", "intro", "comment", true)
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = o.HandleFeedbackChange(ctx, map[string]interface{}{
				"id": id, "edition_id": "ed-1", "section": "intro", "comment": "comment",
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive, "edits on one edition must run serially")
}

func TestResolvedFeedbackIsIgnored(t *testing.T) {
	f := newFixture(t)
	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		t.Fatal("agent must not run for resolved feedback")
		return nil, nil
	}}
	o := f.orchestrator(a)

	require.NoError(t, o.HandleFeedbackChange(context.Background(), map[string]interface{}{
		"id": "fb-1", "edition_id": "ed-1", "section": "intro",
		"comment": "done already", "resolved": true,
	}))
}

func TestLearnOffFeedback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.store.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)
	_, err = f.store.CreateFeedback(ctx, "fb-1", "ed-1", "intro", "secret comment", false)
	require.NoError(t, err)

	var observed *agent.EditContext
	var observedTask string
	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		observed = tools.Edit
		observedTask = task
		return &agent.Result{Text: "edited"}, nil
	}}
	o := f.orchestrator(a)

	require.NoError(t, o.HandleFeedbackChange(ctx, map[string]interface{}{
		"id": "fb-1", "edition_id": "ed-1", "section": "intro",
		"comment": "secret comment", "learn_from_feedback": false,
	}))

	require.NotNil(t, observed)
	assert.True(t, observed.SkipMemoryCapture)
	assert.NotContains(t, observedTask, "secret comment")
}

func TestHandlePublish(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var publishedTask string
	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		publishedTask = task
		return &agent.Result{Text: "published"}, nil
	}}
	o := f.orchestrator(a)

	require.NoError(t, o.HandlePublish(ctx, "ed-1"))
	assert.Contains(t, publishedTask, "ed-1")

	runs, err := f.runs.ListRunsByTrigger(ctx, "ed-1")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, agentrun.StatusCompleted, runs[0].Status)
}

func TestHandlerSemaphoreBound(t *testing.T) {
	ctrl := NewController(3)
	ctx := context.Background()

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, ctrl.AcquireSlot(ctx))
			defer ctrl.ReleaseSlot()
			n := atomic.AddInt32(&active, 1)
			for {
				old := atomic.LoadInt32(&maxActive)
				if n <= old || atomic.CompareAndSwapInt32(&maxActive, old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, maxActive, int32(3))
}

func TestBackoffDelay(t *testing.T) {
	base := time.Second
	max := 30 * time.Second
	assert.Equal(t, 2*time.Second, backoffDelay(base, 1, max))
	assert.Equal(t, 4*time.Second, backoffDelay(base, 2, max))
	assert.Equal(t, 16*time.Second, backoffDelay(base, 4, max))
	assert.Equal(t, max, backoffDelay(base, 5, max))
	assert.Equal(t, max, backoffDelay(base, 50, max))
}

func TestProcessorEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	handled := make(chan string, 10)
	a := &scriptedAgent{run: func(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
		toolCall(t, tools, "mark_failed", map[string]interface{}{
			"link_id": tools.TriggerID, "reason": "no fetcher in test",
		})
		handled <- tools.TriggerID
		return &agent.Result{Text: "done"}, nil
	}}
	o := f.orchestrator(a)
	p := NewProcessor(f.store, o, f.ctrl, 100, 5*time.Millisecond, time.Second)

	require.NoError(t, p.Start(ctx))
	defer p.Stop()

	_, err := f.store.CreateLink(ctx, "link-1", "https://example.com/link-1", nil, nil)
	require.NoError(t, err)

	select {
	case id := <-handled:
		assert.Equal(t, "link-1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("processor never dispatched the change")
	}

	// The persisted token must reflect progress past the first change.
	require.Eventually(t, func() bool {
		token, err := f.store.LoadCheckpoint(ctx, store.ContainerLinks)
		return err == nil && token != ""
	}, 2*time.Second, 10*time.Millisecond)
}
