package store

import (
	"context"
	"sync"
	"time"

	"github.com/ktheindifferent/crawlerd/internal/model"
)

// memoryStore is a fully in-memory Store, used by package tests in place of
// a live Cassandra cluster (the teacher's own test suite similarly avoids
// requiring a running Cassandra for anything but its cassandra package's
// own integration tests).
type memoryStore struct {
	mu        sync.Mutex
	jobs      map[string]*model.CrawlJob
	jobOrder  []string
	pages     map[string]*model.CrawledPage // url -> page
	pageOrder []string
	visited   map[string]struct{} // url, visited by any job
}

// NewMemoryStore returns a Store with no durable backing, suitable for
// tests and for running crawlerd without a Cassandra cluster configured.
func NewMemoryStore() Store {
	return &memoryStore{
		jobs:    make(map[string]*model.CrawlJob),
		pages:   make(map[string]*model.CrawledPage),
		visited: make(map[string]struct{}),
	}
}

func (m *memoryStore) InsertJob(ctx context.Context, job *model.CrawlJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *job
	m.jobs[job.OID] = &cp
	m.jobOrder = append(m.jobOrder, job.OID)
	return nil
}

func (m *memoryStore) UpdateJobStatus(ctx context.Context, oid string, status model.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[oid]
	if !ok {
		return ErrNotFound
	}
	job.Status = status
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memoryStore) GetJob(ctx context.Context, oid string) (*model.CrawlJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[oid]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (m *memoryStore) NextPendingJob(ctx context.Context) (*model.CrawlJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, oid := range m.jobOrder {
		job, ok := m.jobs[oid]
		if ok && job.Status == model.JobPending {
			cp := *job
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) HasVisited(ctx context.Context, url string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.visited[url]
	return ok, nil
}

func (m *memoryStore) GetPage(ctx context.Context, url string) (*model.CrawledPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	page, ok := m.pages[url]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *page
	return &cp, nil
}

// InsertPage upserts by page.URL, the logical primary key spec.md §3 names:
// re-crawling an already-known url replaces its row instead of
// accumulating a duplicate.
func (m *memoryStore) InsertPage(ctx context.Context, page *model.CrawledPage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *page
	if _, exists := m.pages[page.URL]; !exists {
		m.pageOrder = append(m.pageOrder, page.URL)
	}
	m.pages[page.URL] = &cp
	m.visited[page.URL] = struct{}{}
	return nil
}

func (m *memoryStore) AllPages(ctx context.Context) ([]*model.CrawledPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.CrawledPage, 0, len(m.pageOrder))
	for _, url := range m.pageOrder {
		out = append(out, m.pages[url])
	}
	return out, nil
}
