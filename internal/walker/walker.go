// Package walker implements C4, the bounded-depth BFS that drives one
// crawl from a seed URL: fetch, tokenize, persist, expand. Grounded on the
// teacher's non-recursive fetcher.go task loop for the
// explicit-queue-over-recursion shape, applied to spec.md's simple
// FIFO-with-depth-bound algorithm.
package walker

import (
	"context"
	"fmt"
	"net/url"
	"runtime/debug"
	"time"

	"github.com/ktheindifferent/crawlerd/internal/fetch"
	"github.com/ktheindifferent/crawlerd/internal/logging"
	"github.com/ktheindifferent/crawlerd/internal/model"
	"github.com/ktheindifferent/crawlerd/internal/store"
	"github.com/ktheindifferent/crawlerd/internal/tokenize"
	"github.com/ktheindifferent/crawlerd/internal/urlnorm"
)

// MaxDepth is the BFS depth bound from spec.md §4.4.
const MaxDepth = 2

// Fetcher is the subset of *fetch.Fetcher the walker depends on, split out
// as an interface so tests can substitute a fake fetch, the same
// dependency-injection shape as the teacher's Handler/Datastore interfaces.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*fetch.Result, error)
}

// Walker runs bounded-depth crawls, writing results through Store and
// fetching pages with Fetcher.
type Walker struct {
	Store   store.Store
	Fetcher Fetcher
	log     logging.Logger
}

// New builds a Walker over the given store and fetcher.
func New(s store.Store, f Fetcher) *Walker {
	return &Walker{Store: s, Fetcher: f, log: logging.Default()}
}

type queueItem struct {
	url   string
	depth int
}

// Crawl runs one BFS starting at startURL, recording every visited page
// under jobOID. It returns only on completion or a context cancellation;
// individual fetch/parse failures are recorded as page errors, not
// propagated.
func (w *Walker) Crawl(ctx context.Context, jobOID, startURL string) error {
	visited := make(map[string]struct{})
	queue := []queueItem{{url: startURL, depth: 0}}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := queue[0]
		queue = queue[1:]

		if _, seen := visited[item.url]; seen || item.depth > MaxDepth {
			continue
		}
		visited[item.url] = struct{}{}

		links, err := w.visitOne(ctx, jobOID, item.url)
		if err != nil {
			w.log.Warnf("walker: visiting %s: %v", item.url, err)
			continue
		}

		if item.depth < MaxDepth {
			for _, l := range links {
				if _, seen := visited[l]; !seen {
					queue = append(queue, queueItem{url: l, depth: item.depth + 1})
				}
			}
		}
	}
	return nil
}

// visitOne handles one URL's short-circuit check, fetch, tokenize, and
// persist, returning the page's outbound links for enqueueing.
func (w *Walker) visitOne(ctx context.Context, jobOID, rawURL string) (links []string, err error) {
	seen, err := w.Store.HasVisited(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("checking visited state: %w", err)
	}
	if seen {
		return nil, nil
	}

	pageURL, err := urlnorm.Parse(rawURL)
	if err != nil {
		// Not a resolvable absolute URL; drop silently per spec.md §4.4.
		return nil, nil
	}

	page := w.fetchAndParse(ctx, jobOID, pageURL)
	if page == nil {
		return nil, nil
	}

	if err := w.Store.InsertPage(ctx, page); err != nil {
		return nil, fmt.Errorf("persisting page %s: %w", rawURL, err)
	}
	return page.Links, nil
}

// fetchAndParse performs the C3 fetch/parse pipeline for one page,
// recovering from parser panics per spec.md §4.3's failure semantics
// ("parser panics are caught and logged, yielding an empty-token page").
func (w *Walker) fetchAndParse(ctx context.Context, jobOID string, pageURL *url.URL) (page *model.CrawledPage) {
	result, err := w.Fetcher.Fetch(ctx, pageURL.String())
	if err != nil {
		page = model.NewCrawledPage(jobOID, pageURL.String(), nil, nil, 0, false, err.Error(), time.Now().Unix())
		return page
	}
	if result.Blacklisted {
		page = model.NewCrawledPage(jobOID, pageURL.String(), nil, nil, 0, false, "host resolves to a private address", time.Now().Unix())
		return page
	}
	if result.StatusCode != 200 {
		page = model.NewCrawledPage(jobOID, pageURL.String(), nil, nil, result.StatusCode, true, "", time.Now().Unix())
		return page
	}

	defer func() {
		if r := recover(); r != nil {
			w.log.Errorf("walker: parser panic on %s: %v\n%s", pageURL, r, debug.Stack())
			page = model.NewCrawledPage(jobOID, pageURL.String(), nil, nil, result.StatusCode, true, "", time.Now().Unix())
		}
	}()

	extracted, err := tokenize.Extract(result.Body, pageURL)
	if err != nil {
		return model.NewCrawledPage(jobOID, pageURL.String(), nil, nil, result.StatusCode, true, err.Error(), time.Now().Unix())
	}

	return model.NewCrawledPage(jobOID, pageURL.String(), extracted.Tokens, extracted.Links, result.StatusCode, true, "", time.Now().Unix())
}
