// internal/stubapi/stubapi_test.go
package stubapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libery/internal/catalog"
)

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	h := New().Handler()

	rec := doJSON(t, h, http.MethodPost, "/books/", catalog.Item{Title: "Dune", Author: "Herbert", Category: "SciFi"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created catalog.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, catalog.KindBook, created.ItemType)
	assert.Equal(t, catalog.StatusAvailable, created.Status)
}

func TestListReturnsItemsInInsertionOrder(t *testing.T) {
	srv := New()
	h := srv.Handler()

	for _, title := range []string{"one", "two", "three"} {
		rec := doJSON(t, h, http.MethodPost, "/comics/", catalog.Item{Title: title, Author: "a", Category: "c"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []catalog.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 3)
	assert.Equal(t, "one", items[0].Title)
	assert.Equal(t, "three", items[2].Title)
}

func TestJournalGetIsWrapped(t *testing.T) {
	srv := New()
	srv.Seed([]catalog.Item{{ID: "j1", ItemType: catalog.KindJournal, Title: "Nature", Author: "x", Category: "Science"}})
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodGet, "/journals/j1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var wrapped struct {
		Success bool         `json:"success"`
		Data    catalog.Item `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wrapped))
	assert.True(t, wrapped.Success)
	assert.Equal(t, "Nature", wrapped.Data.Title)
}

func TestBookGetIsBare(t *testing.T) {
	srv := New()
	srv.Seed([]catalog.Item{{ID: "b1", ItemType: catalog.KindBook, Title: "Dune", Author: "x", Category: "SciFi"}})

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/books/b1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var item catalog.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "Dune", item.Title)
}

func TestUpdateKeepsIDAndKind(t *testing.T) {
	srv := New()
	srv.Seed([]catalog.Item{{ID: "c1", ItemType: catalog.KindComic, Title: "Bone", Author: "x", Category: "Comics"}})
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodPut, "/comics/c1", catalog.Item{
		ID:       "attempted-new-id",
		ItemType: catalog.KindBook,
		Title:    "Bone vol 2",
		Author:   "x",
		Category: "Comics",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated catalog.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, catalog.ItemID("c1"), updated.ID)
	assert.Equal(t, catalog.KindComic, updated.ItemType, "kind is immutable")
	assert.Equal(t, "Bone vol 2", updated.Title)
}

func TestDeleteThenMiss(t *testing.T) {
	srv := New()
	srv.Seed([]catalog.Item{{ID: "b1", ItemType: catalog.KindBook, Title: "Dune", Author: "x", Category: "SciFi"}})
	h := srv.Handler()

	rec := doJSON(t, h, http.MethodDelete, "/books/b1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/books/b1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "item not found", payload.Message)
}
