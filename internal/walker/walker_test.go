package walker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktheindifferent/crawlerd/internal/fetch"
	"github.com/ktheindifferent/crawlerd/internal/store"
)

type fakeFetcher struct {
	pages map[string]fakePage
	calls int
}

type fakePage struct {
	status int
	body   string
}

func (f *fakeFetcher) Fetch(ctx context.Context, rawURL string) (*fetch.Result, error) {
	f.calls++
	p, ok := f.pages[rawURL]
	if !ok {
		return &fetch.Result{StatusCode: 404}, nil
	}
	return &fetch.Result{StatusCode: p.status, Body: []byte(p.body)}, nil
}

func TestCrawl_BFSRespectsDepthBoundAndVisitsOnce(t *testing.T) {
	root := "https://example.test/"
	depth1 := "https://example.test/a"
	depth2 := "https://example.test/b"
	depth3 := "https://example.test/c"

	fetcher := &fakeFetcher{pages: map[string]fakePage{
		root:   {status: 200, body: `<html><body><a href="/a">hop one</a></body></html>`},
		depth1: {status: 200, body: `<html><body><a href="/b">hop two</a></body></html>`},
		depth2: {status: 200, body: `<html><body><a href="/c">hop three</a></body></html>`},
	}}

	s := store.NewMemoryStore()
	w := New(s, fetcher)

	err := w.Crawl(context.Background(), "job1", root)
	require.NoError(t, err)

	pages, err := s.AllPages(context.Background())
	require.NoError(t, err)

	visitedURLs := make(map[string]bool)
	for _, p := range pages {
		visitedURLs[p.URL] = true
	}

	assert.True(t, visitedURLs[root])
	assert.True(t, visitedURLs[depth1])
	assert.True(t, visitedURLs[depth2])
	assert.False(t, visitedURLs[depth3], "depth-3 link must not be enqueued past max_depth")
}

func TestCrawl_ShortCircuitsAlreadyVisitedURL(t *testing.T) {
	ctx := context.Background()
	root := "https://example.test/"

	fetcher := &fakeFetcher{pages: map[string]fakePage{
		root: {status: 200, body: `<html><body>hello world</body></html>`},
	}}

	s := store.NewMemoryStore()
	w := New(s, fetcher)

	require.NoError(t, w.Crawl(ctx, "job1", root))
	pagesAfterFirst, err := s.AllPages(ctx)
	require.NoError(t, err)
	require.Len(t, pagesAfterFirst, 1)

	require.NoError(t, w.Crawl(ctx, "job1", root))
	pagesAfterSecond, err := s.AllPages(ctx)
	require.NoError(t, err)
	assert.Len(t, pagesAfterSecond, 1, "revisiting the same job/url should not insert a second page")
}

func TestCrawl_ShortCircuitsAcrossJobs(t *testing.T) {
	ctx := context.Background()
	root := "https://example.test/"

	fetcher := &fakeFetcher{pages: map[string]fakePage{
		root: {status: 200, body: `<html><body>hello world</body></html>`},
	}}

	s := store.NewMemoryStore()
	w := New(s, fetcher)

	require.NoError(t, w.Crawl(ctx, "job1", root))
	require.NoError(t, w.Crawl(ctx, "job2", root))

	pages, err := s.AllPages(ctx)
	require.NoError(t, err)
	assert.Len(t, pages, 1, "a url already visited under a different job must still short-circuit, performing zero fetches")
	assert.Equal(t, 1, fetcher.calls, "only the first crawl may fetch the url")
}

func TestCrawl_NonOKStatusIsPersistedWithoutTokens(t *testing.T) {
	ctx := context.Background()
	root := "https://example.test/missing"

	fetcher := &fakeFetcher{pages: map[string]fakePage{}}
	s := store.NewMemoryStore()
	w := New(s, fetcher)

	require.NoError(t, w.Crawl(ctx, "job1", root))

	pages, err := s.AllPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 404, pages[0].StatusCode)
	assert.Empty(t, pages[0].Tokens)
}
