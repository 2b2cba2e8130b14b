package store

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ktheindifferent/crawlerd/internal/model"
)

// cachedStore wraps a durable Store with an in-memory write-through LRU
// cache, same two-tier shape as the teacher's Datastore.domainCache (an
// hashicorp/golang-lru cache in front of Cassandra reads) generalized to
// also memoize the url-keyed page lookup C4's BFS hammers on every link it
// considers.
type cachedStore struct {
	backend Store

	jobs  *lru.Cache // oid -> *model.CrawlJob
	pages *lru.Cache // url -> *model.CrawledPage
}

// NewCachedStore wraps backend with an LRU cache sized by capacity entries
// per cache (jobs and pages are tracked independently).
func NewCachedStore(backend Store, capacity int) (Store, error) {
	jobs, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("store: building job cache: %w", err)
	}
	pages, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("store: building page cache: %w", err)
	}
	return &cachedStore{backend: backend, jobs: jobs, pages: pages}, nil
}

func (c *cachedStore) InsertJob(ctx context.Context, job *model.CrawlJob) error {
	if err := c.backend.InsertJob(ctx, job); err != nil {
		return err
	}
	c.jobs.Add(job.OID, job)
	return nil
}

func (c *cachedStore) UpdateJobStatus(ctx context.Context, oid string, status model.JobStatus) error {
	if err := c.backend.UpdateJobStatus(ctx, oid, status); err != nil {
		return err
	}
	c.jobs.Remove(oid)
	return nil
}

func (c *cachedStore) GetJob(ctx context.Context, oid string) (*model.CrawlJob, error) {
	if cached, ok := c.jobs.Get(oid); ok {
		return cached.(*model.CrawlJob), nil
	}
	job, err := c.backend.GetJob(ctx, oid)
	if err != nil {
		return nil, err
	}
	c.jobs.Add(oid, job)
	return job, nil
}

func (c *cachedStore) NextPendingJob(ctx context.Context) (*model.CrawlJob, error) {
	// Scanning for pending work always goes to the durable backend: the
	// cache only memoizes point lookups by OID, which this query does not
	// have ahead of time.
	return c.backend.NextPendingJob(ctx)
}

func (c *cachedStore) HasVisited(ctx context.Context, url string) (bool, error) {
	if _, ok := c.pages.Get(url); ok {
		return true, nil
	}
	return c.backend.HasVisited(ctx, url)
}

func (c *cachedStore) GetPage(ctx context.Context, url string) (*model.CrawledPage, error) {
	if cached, ok := c.pages.Get(url); ok {
		return cached.(*model.CrawledPage), nil
	}
	page, err := c.backend.GetPage(ctx, url)
	if err != nil {
		return nil, err
	}
	c.pages.Add(url, page)
	return page, nil
}

func (c *cachedStore) InsertPage(ctx context.Context, page *model.CrawledPage) error {
	if err := c.backend.InsertPage(ctx, page); err != nil {
		return err
	}
	c.pages.Add(page.URL, page)
	return nil
}

func (c *cachedStore) AllPages(ctx context.Context) ([]*model.CrawledPage, error) {
	// Retrieval scans the durable store directly; the cache exists to
	// short-circuit the BFS's per-link visited check, not to serve bulk
	// reads.
	return c.backend.AllPages(ctx)
}
