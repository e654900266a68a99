// tests/integration/main_test.go
package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"libery/internal/catalog"
	"libery/internal/clients"
	"libery/internal/form"
	"libery/internal/store"
	"libery/internal/stubapi"
)

// countingHandler wraps the stub backend and counts every request it
// receives, so tests can assert that a flow made no network calls.
type countingHandler struct {
	mu   sync.Mutex
	n    int
	next http.Handler
}

func (h *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.n++
	h.mu.Unlock()
	h.next.ServeHTTP(w, r)
}

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.n
}

type testEnv struct {
	backend  *stubapi.Server
	counter  *countingHandler
	client   *clients.CatalogClient
	store    *store.Store
	shutdown func()
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	backend := stubapi.New()
	counter := &countingHandler{next: backend.Handler()}
	srv := httptest.NewServer(counter)

	client := clients.NewCatalogClient(srv.URL, clients.Endpoints{
		Items:    "/items",
		Books:    "/books",
		Comics:   "/comics",
		Journals: "/journals",
	}, zap.NewNop())

	return &testEnv{
		backend:  backend,
		counter:  counter,
		client:   client,
		store:    store.New(client, zap.NewNop()),
		shutdown: srv.Close,
	}
}

func TestBookRoundTrip(t *testing.T) {
	env := setup(t)
	defer env.shutdown()
	ctx := context.Background()

	created, err := env.client.Create(ctx, catalog.KindBook, catalog.Item{
		ItemType:    catalog.KindBook,
		Title:       "Dune",
		Author:      "Frank Herbert",
		Category:    "Science Fiction",
		PublishYear: 1965,
		ISBN:        "9780441013593",
		Edition:     "1st",
		PageCount:   412,
		Language:    "English",
		Genre:       "Science Fiction",
		Status:      catalog.StatusAvailable,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID, "backend assigns the ID")

	require.NoError(t, env.store.Refresh(ctx))

	items := env.store.Items()
	require.Len(t, items, 1)
	got := items[0]
	assert.Equal(t, created.ID, got.Key())
	assert.Equal(t, catalog.KindBook, got.ItemType)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Frank Herbert", got.Author)
	assert.Equal(t, catalog.StatusAvailable, got.Status)
	assert.Equal(t, 412, got.PageCount)
}

func TestFormCreateAppliesDefaults(t *testing.T) {
	env := setup(t)
	defer env.shutdown()
	ctx := context.Background()

	ctrl := form.NewCreate(env.client, catalog.KindBook, form.NavigateOnSuccess)
	for name, value := range map[string]string{
		"title":       "Dune",
		"author":      "Frank Herbert",
		"category":    "Science Fiction",
		"publishYear": "1965",
		"isbn":        "9780441013593",
		"edition":     "1st",
		"pageCount":   "412",
		"language":    "English",
		"genre":       "Science Fiction",
	} {
		ctrl.SetField(name, value)
	}

	created, err := ctrl.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, form.StateSucceeded, ctrl.State())
	assert.Equal(t, catalog.StatusAvailable, created.Status)
	assert.Equal(t, catalog.PlaceholderCover, created.CoverImage)

	require.NoError(t, env.store.Refresh(ctx))
	require.Len(t, env.store.Items(), 1)
}

func TestInvalidFormMakesNoRequest(t *testing.T) {
	env := setup(t)
	defer env.shutdown()

	ctrl := form.NewCreate(env.client, catalog.KindBook, form.NavigateOnSuccess)
	ctrl.SetField("title", "Dune")
	ctrl.SetField("author", "Frank Herbert")
	// isbn and the other required fields are left blank.

	_, err := ctrl.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
	assert.Equal(t, form.StateEditing, ctrl.State())
	assert.Equal(t, 0, env.counter.count(), "validation failures must not reach the backend")
}

func TestJournalDeleteFlow(t *testing.T) {
	env := setup(t)
	defer env.shutdown()
	ctx := context.Background()

	env.backend.Seed([]catalog.Item{
		{ItemType: catalog.KindBook, Title: "Dune", Author: "Frank Herbert", Category: "SciFi"},
		{ItemType: catalog.KindJournal, Title: "Nature", Author: "Springer", Category: "Science", Volume: "613", Issue: "7944"},
	})

	require.NoError(t, env.store.Refresh(ctx))
	require.Len(t, env.store.Items(), 2)

	var journalID catalog.ItemID
	for _, it := range env.store.Items() {
		if it.ItemType == catalog.KindJournal {
			journalID = it.Key()
		}
	}
	require.NotEmpty(t, journalID)

	requestsBefore := env.counter.count()
	require.NoError(t, env.client.Remove(ctx, catalog.KindJournal, journalID))
	require.True(t, env.store.ApplyDelete(journalID))

	// One DELETE and nothing else: the store drops the item locally
	// instead of re-fetching.
	assert.Equal(t, requestsBefore+1, env.counter.count())
	items := env.store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Dune", items[0].Title)

	// The backend agrees it is gone.
	_, err := env.client.Get(ctx, catalog.KindJournal, journalID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item not found")
}

func TestJournalGetUnwrapsEnvelope(t *testing.T) {
	env := setup(t)
	defer env.shutdown()
	ctx := context.Background()

	created, err := env.client.Create(ctx, catalog.KindJournal, catalog.Item{
		ItemType:             catalog.KindJournal,
		Title:                "Nature",
		Author:               "Springer",
		Category:             "Science",
		Volume:               "613",
		Issue:                "7944",
		PublicationFrequency: "WEEKLY",
	})
	require.NoError(t, err)

	got, err := env.client.Get(ctx, catalog.KindJournal, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nature", got.Title)
	assert.Equal(t, "WEEKLY", got.PublicationFrequency)
}

func TestUpdateRoundTrip(t *testing.T) {
	env := setup(t)
	defer env.shutdown()
	ctx := context.Background()

	created, err := env.client.Create(ctx, catalog.KindComic, catalog.Item{
		ItemType:     catalog.KindComic,
		Title:        "Bone",
		Author:       "Jeff Smith",
		Category:     "Graphic Novel",
		ISBN:         "9781888963144",
		Series:       "Bone",
		VolumeNumber: 1,
		Illustrator:  "Jeff Smith",
		ColorType:    "BLACK_AND_WHITE",
		TargetAge:    "ALL_AGES",
	})
	require.NoError(t, err)

	ctrl := form.NewUpdate(env.client, catalog.KindComic, created.ID)
	ctrl.Fill(*created)
	ctrl.SetField("volumeNumber", "2")

	updated, err := ctrl.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.VolumeNumber)
	assert.Equal(t, created.ID, updated.ID, "identifier survives the update")
	assert.Equal(t, catalog.StatusAvailable, updated.Status, "status is preserved, not reset")

	require.NoError(t, env.store.Refresh(ctx))
	items := env.store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].VolumeNumber)
}
