package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktheindifferent/crawlerd/internal/model"
)

func TestMemoryStore_JobLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	job := model.NewCrawlJob("https://example.test/")
	require.NoError(t, s.InsertJob(ctx, job))

	got, err := s.GetJob(ctx, job.OID)
	require.NoError(t, err)
	assert.Equal(t, model.JobPending, got.Status)

	require.NoError(t, s.UpdateJobStatus(ctx, job.OID, model.JobRunning))
	got, err = s.GetJob(ctx, job.OID)
	require.NoError(t, err)
	assert.Equal(t, model.JobRunning, got.Status)

	_, err = s.GetJob(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_VisitedAndPages(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	job := model.NewCrawlJob("https://example.test/")
	require.NoError(t, s.InsertJob(ctx, job))

	seen, err := s.HasVisited(ctx, "https://example.test/a")
	require.NoError(t, err)
	assert.False(t, seen)

	page := model.NewCrawledPage(job.OID, "https://example.test/a", []string{"alpha", "beta"}, nil, 200, true, "", time.Unix(0, 0).Unix())
	require.NoError(t, s.InsertPage(ctx, page))

	seen, err = s.HasVisited(ctx, "https://example.test/a")
	require.NoError(t, err)
	assert.True(t, seen)

	pages, err := s.AllPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, []string{"alpha", "beta"}, pages[0].Tokens)
}

func TestMemoryStore_VisitedIsCrossJob(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	jobA := model.NewCrawlJob("https://example.test/")
	jobB := model.NewCrawlJob("https://example.test/")
	require.NoError(t, s.InsertJob(ctx, jobA))
	require.NoError(t, s.InsertJob(ctx, jobB))

	page := model.NewCrawledPage(jobA.OID, "https://example.test/shared", []string{"x"}, nil, 200, true, "", time.Unix(0, 0).Unix())
	require.NoError(t, s.InsertPage(ctx, page))

	seen, err := s.HasVisited(ctx, "https://example.test/shared")
	require.NoError(t, err)
	assert.True(t, seen, "a url visited under one job must short-circuit for every other job")
}

func TestMemoryStore_InsertPageUpsertsByURL(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := model.NewCrawledPage("job-a", "https://example.test/a", []string{"old"}, nil, 200, true, "", time.Unix(0, 0).Unix())
	require.NoError(t, s.InsertPage(ctx, first))

	second := model.NewCrawledPage("job-b", "https://example.test/a", []string{"new"}, nil, 200, true, "", time.Unix(100, 0).Unix())
	require.NoError(t, s.InsertPage(ctx, second))

	pages, err := s.AllPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1, "re-crawling a url must replace its row, not add a duplicate")
	assert.Equal(t, []string{"new"}, pages[0].Tokens)

	got, err := s.GetPage(ctx, "https://example.test/a")
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, got.Tokens)
}

func TestCachedStore_CachesJobAndVisited(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryStore()
	cached, err := NewCachedStore(backend, 16)
	require.NoError(t, err)

	job := model.NewCrawlJob("https://example.test/")
	require.NoError(t, cached.InsertJob(ctx, job))

	got, err := cached.GetJob(ctx, job.OID)
	require.NoError(t, err)
	assert.Equal(t, job.OID, got.OID)

	page := model.NewCrawledPage(job.OID, "https://example.test/b", nil, nil, 200, true, "", time.Unix(0, 0).Unix())
	require.NoError(t, cached.InsertPage(ctx, page))

	seen, err := cached.HasVisited(ctx, "https://example.test/b")
	require.NoError(t, err)
	assert.True(t, seen)

	got2, err := cached.GetPage(ctx, "https://example.test/b")
	require.NoError(t, err)
	assert.Equal(t, page.URL, got2.URL)
}
