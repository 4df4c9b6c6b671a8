package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookcatalog/internal/activity"
	"bookcatalog/internal/book"
	"bookcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T) (*Container, *activity.Recorder) {
	t.Helper()
	recorder := &activity.Recorder{}
	c := NewContainer(Config{Addr: ":0", MaxBodyBytes: defaultMaxBodyBytes},
		WithActivityLogger(recorder))
	return c, recorder
}

func serve(c *Container, r *http.Request) testutil.RecordResponse {
	w := httptest.NewRecorder()
	c.Router.ServeHTTP(w, r)
	return testutil.RecordHTTPResponse(w)
}

func TestContainer_SeedCatalog(t *testing.T) {
	c, _ := newTestContainer(t)

	resp := serve(c, testutil.NewRequest(http.MethodGet, "/api/books", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var books []book.Book
	require.NoError(t, testutil.DecodeJSON(resp, &books))
	require.Len(t, books, 2)
	assert.Equal(t, book.Book{ID: 1, Title: "1984", Author: "George Orwell"}, books[0])
	assert.Equal(t, book.Book{ID: 2, Title: "To Kill a Mockingbird", Author: "Harper Lee"}, books[1])
}

func TestContainer_AddThenGet(t *testing.T) {
	c, recorder := newTestContainer(t)

	added := book.Book{ID: 3, Title: "Dune", Author: "Frank Herbert"}
	resp := serve(c, testutil.NewRequest(http.MethodPost, "/api/books", added))
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "/api/books/3", resp.Header.Get("Location"))

	var created book.Book
	require.NoError(t, testutil.DecodeJSON(resp, &created))
	assert.Equal(t, added, created)

	resp = serve(c, testutil.NewRequest(http.MethodGet, "/api/books/3", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var got book.Book
	require.NoError(t, testutil.DecodeJSON(resp, &got))
	assert.Equal(t, added, got)

	messages := recorder.Messages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "add book id=3")
	assert.Contains(t, messages[1], "get book id=3")
}

func TestContainer_DeleteThenGet(t *testing.T) {
	c, _ := newTestContainer(t)

	resp := serve(c, testutil.NewRequest(http.MethodDelete, "/api/books/1", nil))
	require.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body)

	resp = serve(c, testutil.NewRequest(http.MethodGet, "/api/books/1", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Empty(t, resp.Body)
}

func TestContainer_GetNeverExisted(t *testing.T) {
	c, _ := newTestContainer(t)

	resp := serve(c, testutil.NewRequest(http.MethodGet, "/api/books/999", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Empty(t, resp.Body)
}

func TestContainer_Healthz(t *testing.T) {
	c, _ := newTestContainer(t)

	resp := serve(c, testutil.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestContainer_RequestIDHeader(t *testing.T) {
	c, _ := newTestContainer(t)

	resp := serve(c, testutil.NewRequest(http.MethodGet, "/api/books", nil))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestContainer_WithRepository(t *testing.T) {
	repo := book.NewMemoryRepository(book.Book{ID: 42, Title: "Custom", Author: "Seed"})
	c := NewContainer(Config{MaxBodyBytes: defaultMaxBodyBytes},
		WithActivityLogger(&activity.Recorder{}),
		WithRepository(repo))

	resp := serve(c, testutil.NewRequest(http.MethodGet, "/api/books/42", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var got book.Book
	require.NoError(t, testutil.DecodeJSON(resp, &got))
	assert.Equal(t, "Custom", got.Title)
}
