package publish

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljtill/curate/ent/edition"
	"github.com/ljtill/curate/ent/enttest"
	"github.com/ljtill/curate/pkg/store"
)

type fakeUploader struct {
	blobs map[string][]byte
	types map[string]string
	fail  map[string]error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{
		blobs: make(map[string][]byte),
		types: make(map[string]string),
		fail:  make(map[string]error),
	}
}

func (u *fakeUploader) Upload(ctx context.Context, blobName string, body []byte, contentType string) error {
	if err := u.fail[blobName]; err != nil {
		return err
	}
	u.blobs[blobName] = body
	u.types[blobName] = contentType
	return nil
}

func newPublishStore(t *testing.T) *store.Store {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return store.New(client, 0)
}

func TestPublishEdition(t *testing.T) {
	s := newPublishStore(t)
	ctx := context.Background()

	e, err := s.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)
	e.Content = map[string]interface{}{"intro": "welcome", "tools": "a roundup"}
	e.LinkIds = []string{"link-1"}
	_, err = s.UpdateEdition(ctx, e)
	require.NoError(t, err)

	title := "A Post"
	edID := "ed-1"
	_, err = s.CreateLink(ctx, "link-1", "https://example.com/post", &title, &edID)
	require.NoError(t, err)

	up := newFakeUploader()
	p := NewPublisher(s, up)
	require.NoError(t, p.PublishEdition(ctx, "ed-1"))

	page := string(up.blobs["editions/ed-1.html"])
	assert.Contains(t, page, "welcome")
	assert.Contains(t, page, "a roundup")
	assert.Contains(t, page, "A Post")
	assert.Equal(t, contentTypeHTML, up.types["editions/ed-1.html"])

	index := string(up.blobs["index.html"])
	assert.Contains(t, index, "editions/ed-1.html")

	got, err := s.GetEdition(ctx, "ed-1")
	require.NoError(t, err)
	assert.Equal(t, edition.StatusPublished, got.Status)
	assert.NotNil(t, got.PublishedAt)
}

func TestPublishMissingEdition(t *testing.T) {
	s := newPublishStore(t)
	p := NewPublisher(s, newFakeUploader())

	err := p.PublishEdition(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPublishUploadFailure(t *testing.T) {
	s := newPublishStore(t)
	ctx := context.Background()
	_, err := s.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)

	up := newFakeUploader()
	up.fail["editions/ed-1.html"] = errors.New("bucket unavailable")
	p := NewPublisher(s, up)

	err = p.PublishEdition(ctx, "ed-1")
	require.Error(t, err)

	// A failed page upload must not mark the edition published.
	got, err := s.GetEdition(ctx, "ed-1")
	require.NoError(t, err)
	assert.Equal(t, edition.StatusCreated, got.Status)
}

func TestIndexFailureIsSwallowed(t *testing.T) {
	s := newPublishStore(t)
	ctx := context.Background()
	_, err := s.CreateEdition(ctx, "ed-1")
	require.NoError(t, err)

	up := newFakeUploader()
	up.fail["index.html"] = errors.New("bucket unavailable")
	p := NewPublisher(s, up)

	require.NoError(t, p.PublishEdition(ctx, "ed-1"))

	got, err := s.GetEdition(ctx, "ed-1")
	require.NoError(t, err)
	assert.Equal(t, edition.StatusPublished, got.Status)
}

func TestRenderEditionEscapesContent(t *testing.T) {
	s := newPublishStore(t)
	ed, err := s.CreateEdition(context.Background(), "ed-render")
	require.NoError(t, err)
	ed.Content = map[string]interface{}{"intro": "<script>alert(1)</script>"}

	page, err := RenderEdition(ed, nil)
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script>alert(1)</script>")
	assert.Contains(t, string(page), "&lt;script&gt;")
}
