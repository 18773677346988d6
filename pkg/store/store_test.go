package store

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljtill/curate/ent/agentrun"
	"github.com/ljtill/curate/ent/enttest"
	"github.com/ljtill/curate/ent/link"
	"github.com/ljtill/curate/ent/revision"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return New(client, 0)
}

func strPtr(s string) *string { return &s }

func TestCreateLinkAppendsChangeRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l, err := s.CreateLink(ctx, "link-1", "https://example.com/post", strPtr("A Post"), nil)
	require.NoError(t, err)
	assert.Equal(t, link.StatusSubmitted, l.Status)

	changes, token, err := s.ReadChangeFeed(ctx, ContainerLinks, "", 10)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.NotEmpty(t, token)
	assert.Equal(t, "link-1", changes[0].DocID)
	assert.Equal(t, UnattachedPartition, changes[0].PartitionKey)
	assert.Equal(t, "submitted", changes[0].Doc["status"])
}

func TestChangeFeedPagingAndTokens(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"link-a", "link-b", "link-c"} {
		_, err := s.CreateLink(ctx, id, "https://example.com/"+id, nil, nil)
		require.NoError(t, err)
	}

	page1, token1, err := s.ReadChangeFeed(ctx, ContainerLinks, "", 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "link-a", page1[0].DocID)
	assert.Equal(t, "link-b", page1[1].DocID)

	page2, token2, err := s.ReadChangeFeed(ctx, ContainerLinks, token1, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "link-c", page2[0].DocID)

	// Empty page returns the caller's token unchanged.
	page3, token3, err := s.ReadChangeFeed(ctx, ContainerLinks, token2, 2)
	require.NoError(t, err)
	assert.Empty(t, page3)
	assert.Equal(t, token2, token3)
}

func TestChangeFeedIsolatedByContainer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateLink(ctx, "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)
	_, err = s.CreateFeedback(ctx, "fb-1", "ed-1", "intro", "too long", true)
	require.NoError(t, err)

	linkChanges, _, err := s.ReadChangeFeed(ctx, ContainerLinks, "", 10)
	require.NoError(t, err)
	require.Len(t, linkChanges, 1)

	fbChanges, _, err := s.ReadChangeFeed(ctx, ContainerFeedback, "", 10)
	require.NoError(t, err)
	require.Len(t, fbChanges, 1)
	assert.Equal(t, "fb-1", fbChanges[0].DocID)
	assert.Equal(t, "ed-1", fbChanges[0].PartitionKey)
}

func TestUpdateLinkAppendsNewChangeRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	l, err := s.CreateLink(ctx, "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)

	l.Status = link.StatusFetching
	l.EditionID = strPtr("ed-1")
	_, err = s.UpdateLink(ctx, l)
	require.NoError(t, err)

	changes, _, err := s.ReadChangeFeed(ctx, ContainerLinks, "", 10)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, "fetching", changes[1].Doc["status"])
	assert.Equal(t, "ed-1", changes[1].PartitionKey)
}

func TestSoftDeleteHidesLink(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateLink(ctx, "link-1", "https://example.com", nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.SoftDeleteLink(ctx, "link-1"))

	got, err := s.GetLink(ctx, "link-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	links, err := s.ListLinks(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, links)

	// The tombstone write is still feed-visible.
	changes, _, err := s.ReadChangeFeed(ctx, ContainerLinks, "", 10)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, true, changes[1].Doc["deleted"])
}

func TestGetMissingLinkReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetLink(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheckpointRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	token, err := s.LoadCheckpoint(ctx, ContainerLinks)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.SaveCheckpoint(ctx, ContainerLinks, "42"))
	require.NoError(t, s.SaveCheckpoint(ctx, ContainerLinks, "99"))

	token, err = s.LoadCheckpoint(ctx, ContainerLinks)
	require.NoError(t, err)
	assert.Equal(t, "99", token)

	// Containers keep independent tokens.
	other, err := s.LoadCheckpoint(ctx, ContainerFeedback)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRevisionSequencing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r1, err := s.CreateRevision(ctx, "rev-1", "ed-1", "link-1", revision.SourceDraft, map[string]interface{}{"intro": "v1"}, "initial draft")
	require.NoError(t, err)
	assert.Equal(t, 1, r1.Sequence)

	r2, err := s.CreateRevision(ctx, "rev-2", "ed-1", "fb-1", revision.SourceEdit, map[string]interface{}{"intro": "v2"}, "applied feedback")
	require.NoError(t, err)
	assert.Equal(t, 2, r2.Sequence)

	// Sequences are per edition.
	r3, err := s.CreateRevision(ctx, "rev-3", "ed-2", "link-2", revision.SourceDraft, map[string]interface{}{}, "initial draft")
	require.NoError(t, err)
	assert.Equal(t, 1, r3.Sequence)

	revs, err := s.ListRevisions(ctx, "ed-1", 10)
	require.NoError(t, err)
	require.Len(t, revs, 2)
	assert.Equal(t, "rev-2", revs[0].ID)
}

func TestRevertEdition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	e, err := s.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)

	_, err = s.CreateRevision(ctx, "rev-1", "ed-1", "link-1", revision.SourceDraft, map[string]interface{}{"intro": "v1"}, "initial draft")
	require.NoError(t, err)
	_, err = s.CreateRevision(ctx, "rev-2", "ed-1", "fb-1", revision.SourceEdit, map[string]interface{}{"intro": "v2"}, "applied feedback")
	require.NoError(t, err)

	e.Content = map[string]interface{}{"intro": "v2"}
	_, err = s.UpdateEdition(ctx, e)
	require.NoError(t, err)

	r, err := s.RevertEdition(ctx, "rev-3", "ed-1", 1)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 3, r.Sequence)
	assert.Equal(t, revision.SourceRevert, r.Source)
	assert.Equal(t, "rev-1", r.TriggerID)

	got, err := s.GetEdition(ctx, "ed-1")
	require.NoError(t, err)
	assert.Equal(t, "v1", got.Content["intro"])

	// Unknown sequence reverts nothing.
	r, err = s.RevertEdition(ctx, "rev-4", "ed-1", 99)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestResolveFeedback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateFeedback(ctx, "fb-1", "ed-1", "intro", "tighten this", true)
	require.NoError(t, err)

	pending, err := s.ListUnresolvedFeedback(ctx, "ed-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	f, err := s.ResolveFeedback(ctx, "fb-1")
	require.NoError(t, err)
	assert.True(t, f.Resolved)

	pending, err = s.ListUnresolvedFeedback(ctx, "ed-1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestFailRunningRuns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateAgentRun(ctx, "run-1", agentrun.StageOrchestrator, "link-1", nil)
	require.NoError(t, err)
	_, err = s.CreateAgentRun(ctx, "run-2", agentrun.StageFetch, "link-1", nil)
	require.NoError(t, err)
	_, err = s.CompleteAgentRun(ctx, "run-2", agentrun.StatusCompleted, map[string]interface{}{"ok": true}, 10, 5, 15)
	require.NoError(t, err)

	output := map[string]interface{}{"error": "Recovered after process restart"}
	ids, err := s.FailRunningRuns(ctx, output)
	require.NoError(t, err)
	assert.Equal(t, []string{"run-1"}, ids)

	r1, err := s.GetAgentRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusFailed, r1.Status)
	assert.Equal(t, "Recovered after process restart", r1.Output["error"])
	assert.NotNil(t, r1.CompletedAt)

	// A second pass touches nothing.
	ids, err = s.FailRunningRuns(ctx, output)
	require.NoError(t, err)
	assert.Empty(t, ids)

	r2, err := s.GetAgentRun(ctx, "run-2")
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusCompleted, r2.Status)
	assert.Equal(t, 15, r2.TotalTokens)
}

func TestSlowOperationThresholdDisabledByDefault(t *testing.T) {
	s := newTestStore(t)
	// A zero threshold must not panic or warn; just exercise the path.
	s.observe("links.get", time.Now().Add(-time.Second))
}
