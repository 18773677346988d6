package api

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljtill/curate/ent"
	"github.com/ljtill/curate/ent/enttest"
	"github.com/ljtill/curate/ent/revision"
	"github.com/ljtill/curate/pkg/agent"
	"github.com/ljtill/curate/pkg/database"
	"github.com/ljtill/curate/pkg/events"
	"github.com/ljtill/curate/pkg/pipeline"
	"github.com/ljtill/curate/pkg/services"
	"github.com/ljtill/curate/pkg/store"
)

type stubAgent struct{}

func (stubAgent) Run(ctx context.Context, task string, tools *agent.ToolSet) (*agent.Result, error) {
	return &agent.Result{Text: "ok"}, nil
}

type testServer struct {
	engine *gin.Engine
	store  *store.Store
	runs   *services.RunService
	mgr    *events.Manager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_fk=1"
	client := enttest.Open(t, "sqlite3", dsn)
	rawDB, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		rawDB.Close()
		client.Close()
	})

	s := store.New(client, 0)
	m := events.NewManager(100, nil)
	runs := services.NewRunService(s, m)
	ctrl := pipeline.NewController(25)
	executor := agent.NewExecutor(0, time.Millisecond, 10*time.Millisecond)
	orch := pipeline.NewOrchestrator(s, runs, m, executor, stubAgent{}, nil, ctrl)

	srv := NewServer(database.NewClientFromEnt(client, rawDB), s, runs, m, orch, 20*time.Millisecond)
	engine := gin.New()
	srv.Routes(engine)
	return &testServer{engine: engine, store: s, runs: runs, mgr: m}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestLinkCRUD(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/links", CreateLinkRequest{URL: "https://example.com", Title: "A Post"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created ent.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "https://example.com", created.URL)

	w = ts.do(t, http.MethodGet, "/api/links", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var links []ent.Link
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &links))
	require.Len(t, links, 1)

	w = ts.do(t, http.MethodGet, "/api/links/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/links/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/links/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateLinkValidation(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/api/links", map[string]string{"title": "no url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditionEndpoints(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/editions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var e ent.Edition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))

	w = ts.do(t, http.MethodGet, "/api/editions/"+e.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), e.ID)

	w = ts.do(t, http.MethodPost, "/api/editions/"+e.ID+"/publish", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = ts.do(t, http.MethodPost, "/api/editions/missing/publish", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRevertEditionEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	_, err := ts.store.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)
	_, err = ts.store.CreateRevision(ctx, "rev-1", "ed-1", "link-1",
		revision.SourceDraft, map[string]interface{}{"intro": "v1"}, "initial draft")
	require.NoError(t, err)

	w := ts.do(t, http.MethodPost, "/api/editions/ed-1/revert", RevertEditionRequest{Sequence: 1})
	require.Equal(t, http.StatusOK, w.Code)
	var r ent.Revision
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r))
	assert.Equal(t, revision.SourceRevert, r.Source)
	assert.Equal(t, 2, r.Sequence)

	w = ts.do(t, http.MethodPost, "/api/editions/ed-1/revert", RevertEditionRequest{Sequence: 42})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeedbackEndpoint(t *testing.T) {
	ts := newTestServer(t)
	learn := false
	w := ts.do(t, http.MethodPost, "/api/feedback", CreateFeedbackRequest{
		EditionID: "ed-1", Section: "intro", Comment: "tighten", LearnFromFeedback: &learn,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var f ent.Feedback
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.False(t, f.LearnFromFeedback)
	assert.False(t, f.Resolved)
}

func TestRunEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	runID, err := ts.runs.RecordStageStart(ctx, "fetch", "link-1", nil)
	require.NoError(t, err)
	require.NoError(t, ts.runs.RecordStageComplete(ctx, runID, false,
		map[string]interface{}{"error": "boom"},
		map[string]interface{}{"input_tokens": 10, "output_tokens": 2}))

	w := ts.do(t, http.MethodGet, "/api/runs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fetch")

	w = ts.do(t, http.MethodGet, "/api/runs?stage=fetch", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/runs?stage=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/runs/failures", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "boom")

	w = ts.do(t, http.MethodGet, "/api/runs/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats["failed"])

	w = ts.do(t, http.MethodGet, "/api/runs/trigger/link-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_tokens":12`)
}

func TestStreamEventsDeliversAndDisconnects(t *testing.T) {
	ts := newTestServer(t)
	httpSrv := httptest.NewServer(ts.engine)
	defer httpSrv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpSrv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream"))

	// Wait for the subscriber to register before publishing.
	require.Eventually(t, func() bool {
		return ts.mgr.SubscriberCount() == 1
	}, time.Second, 5*time.Millisecond)

	ts.mgr.Publish(events.LinkUpdate("link-1", "drafted", "<tr></tr>"))

	scanner := bufio.NewScanner(resp.Body)
	var sawEvent bool
	deadline := time.After(2 * time.Second)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "event:") && strings.Contains(line, events.EventTypeLinkUpdate) {
				sawEvent = true
				return
			}
		}
	}()
	select {
	case <-done:
	case <-deadline:
	}
	cancel()
	assert.True(t, sawEvent, "expected a link-update SSE event")
}
