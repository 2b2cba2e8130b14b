package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktheindifferent/crawlerd/internal/model"
	"github.com/ktheindifferent/crawlerd/internal/store"
)

type fakeLoop struct{ status string }

func (f fakeLoop) Status() string { return f.status }

func TestHandleStatus(t *testing.T) {
	s := New(store.NewMemoryStore(), fakeLoop{status: "running"})
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "running", body.Loop)
}

func TestHandleGetJob_NotFound(t *testing.T) {
	s := New(store.NewMemoryStore(), fakeLoop{status: "stopped"})
	req := httptest.NewRequest(http.MethodGet, "/jobs/missing", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetJob_Found(t *testing.T) {
	backend := store.NewMemoryStore()
	job := model.NewCrawlJob("https://example.test/")
	require.NoError(t, backend.InsertJob(context.Background(), job))

	s := New(backend, fakeLoop{status: "stopped"})
	req := httptest.NewRequest(http.MethodGet, "/jobs/"+job.OID, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSearch(t *testing.T) {
	backend := store.NewMemoryStore()
	page := model.NewCrawledPage("job", "https://rust-lang.test/rust", []string{"rust"}, nil, 200, true, "", 0)
	require.NoError(t, backend.InsertPage(context.Background(), page))

	s := New(backend, fakeLoop{status: "stopped"})
	req := httptest.NewRequest(http.MethodGet, "/search?q=rust", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var results []searchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, page.URL, results[0].URL)
}
