// Package store implements C1, the two-tier persistence layer: a durable
// Cassandra-backed store behind an in-memory write-through cache, both
// satisfying the same Store interface. Grounded on the teacher's
// cassandra.Datastore (session lifecycle, query shape) and its use of
// github.com/hashicorp/golang-lru for in-process caching.
package store

import (
	"context"
	"errors"

	"github.com/ktheindifferent/crawlerd/internal/model"
)

// ErrNotFound is returned when a lookup finds no matching row.
var ErrNotFound = errors.New("store: not found")

// ErrUnavailable names the condition of the durable backend being
// unreachable. No Store in this package returns it: cassandraStore wraps
// the underlying gocql error instead, so errors.Is(err, ErrUnavailable)
// does not match those failures.
var ErrUnavailable = errors.New("store: backend unavailable")

// Store is the persistence surface C4 (the walker) and C6 (the service
// loop) depend on: job bookkeeping plus the crawled-page records that
// back C7's relevance retrieval.
type Store interface {
	// InsertJob records a newly created crawl job.
	InsertJob(ctx context.Context, job *model.CrawlJob) error

	// UpdateJobStatus transitions a job's status and updated-at timestamp.
	UpdateJobStatus(ctx context.Context, oid string, status model.JobStatus) error

	// GetJob fetches a job by OID. Returns ErrNotFound if absent.
	GetJob(ctx context.Context, oid string) (*model.CrawlJob, error)

	// NextPendingJob returns up to one CrawlJob whose status is
	// model.JobPending, scanned in the store's natural row order, or nil
	// if none exist — the pickup query spec.md §4.6 step 2 names.
	NextPendingJob(ctx context.Context) (*model.CrawlJob, error)

	// HasVisited reports whether url has already been recorded as crawled,
	// by any job — the short-circuit check spec.md §4.4 requires. The
	// check is keyed by url alone: two walkers crawling under different
	// job ids must still see each other's visits to the same URL.
	HasVisited(ctx context.Context, url string) (bool, error)

	// GetPage fetches the page record for url. Returns ErrNotFound if
	// absent. This is the reload side of the round-trip persistence law in
	// spec.md §8: persisting and reloading a page by url yields a
	// structurally equal page.
	GetPage(ctx context.Context, url string) (*model.CrawledPage, error)

	// InsertPage upserts a crawled page's tokens, links, and fetch outcome,
	// keyed by url: spec.md §3 names url as CrawledPage's logical primary
	// key, so re-crawling the same url replaces the prior record rather
	// than accumulating a duplicate.
	InsertPage(ctx context.Context, page *model.CrawledPage) error

	// AllPages returns every crawled page known to the store, for C7's
	// retrieval scan. Implementations may page internally; callers see a
	// single slice.
	AllPages(ctx context.Context) ([]*model.CrawledPage, error)
}
